package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions
type SearchOptions struct {
	Search        string
	CaseSensitive bool
	cmd           *cobra.Command
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only show memos whose title or content contains the text.")
	cmd.Flags().BoolVar(&o.CaseSensitive, "case-sensitive", false,
		"Match the search text exactly instead of ignoring case.")
}

// Get returns the search text when the flag was given.
func (o *SearchOptions) Get() *string {
	if o.cmd == nil || !o.cmd.Flags().Changed("search") {
		return nil
	}
	s := o.Search
	return &s
}
