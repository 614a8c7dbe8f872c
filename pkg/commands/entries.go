package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Arjun1106030909119/MindScribe/pkg/commands/options"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/get"
)

func addEntries(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "list journal entries, or show the month calendar",
		Example: `
mindscribe entries
mindscribe entries --search beach
mindscribe entries --calendar --month 2024-03
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID:   io.ShowID,
				Query:    eo.Search,
				Calendar: eo.Calendar,
				Month:    eo.Month,
				Service:  svc,
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
