package options

import (
	"github.com/spf13/cobra"
)

// AuthOptions
type AuthOptions struct {
	Email    string
	Password string
	Name     string
	Signup   bool
}

func AddAuthArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Email address to sign in with.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Password. Prompted for when omitted.")
}

func AddSignupArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().BoolVar(&o.Signup, "signup", false,
		"Create a new account instead of signing in.")
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Display name for a new account.")
}
