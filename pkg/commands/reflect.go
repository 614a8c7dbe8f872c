package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Arjun1106030909119/MindScribe/pkg/commands/options"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/reflect"
)

func addReflect(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "reflect [text]",
		Short: "ask the model to reflect on an entry or on free text",
		Example: `
mindscribe reflect --id 171dff69-f8b9-4dca-9d7a-0f6a3f2a1c55
mindscribe reflect today was long but it ended well
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			if text == "" {
				text = strings.Join(args, " ")
			}
			r := reflect.Reflect{
				Text:    text,
				EntryID: io.ID,
				Service: svc,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to reflect on.")
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
