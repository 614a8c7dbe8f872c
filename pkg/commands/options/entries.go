package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions
type EntryOptions struct {
	Search   string
	Calendar bool
	Month    string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Filter entries by title or content.")
	cmd.Flags().BoolVarP(&o.Calendar, "calendar", "c", false,
		"Show the month calendar instead of the list.")
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		"Month for the calendar as YYYY-MM. Defaults to the current month.")
}
