package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Arjun1106030909119/MindScribe/pkg/commands/options"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in, or create an account with --signup",
		Example: `
mindscribe login -e you@example.com
mindscribe login --signup -e you@example.com -n "Your Name"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			l := login.Login{
				Email:    ao.Email,
				Password: ao.Password,
				Signup:   ao.Signup,
				Name:     ao.Name,
				Service:  svc,
			}
			return l.Do(context.Background())
		},
	}

	options.AddAuthArgs(cmd, ao)
	options.AddSignupArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
