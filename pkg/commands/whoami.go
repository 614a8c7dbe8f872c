package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Arjun1106030909119/MindScribe/pkg/commands/options"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/whoami"
)

func addWhoami(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "show the signed-in user",
		Example: `
mindscribe whoami
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			w := whoami.Whoami{ShowID: io.ShowID, Service: svc}
			return w.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
