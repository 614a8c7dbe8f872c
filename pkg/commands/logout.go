package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Arjun1106030909119/MindScribe/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "sign out and clear the cached session",
		Example: `
mindscribe logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			l := logout.Logout{Service: svc}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
