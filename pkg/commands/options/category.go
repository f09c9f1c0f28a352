// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/memo"
)

// CategoryOptions captures the category a command writes.
type CategoryOptions struct {
	Category string
	cmd      *cobra.Command
}

// AddCategoryArg wires the --category flag on the provided command.
func AddCategoryArg(cmd *cobra.Command, o *CategoryOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		`Specify the category, "" for uncategorized.`)
}

// Get returns the category when the flag was given.
func (o *CategoryOptions) Get() *string {
	if o.cmd == nil || !o.cmd.Flags().Changed("category") {
		return nil
	}
	c := o.Category
	return &c
}

// FilterOptions captures the category filter for listing commands.
type FilterOptions struct {
	Filter string
	cmd    *cobra.Command
}

// AddFilterArg wires the --filter flag on the provided command.
func AddFilterArg(cmd *cobra.Command, o *FilterOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		`Filter by category: "all", "none" or a category name. Defaults to the saved filter.`)
}

// Get returns the filter when the flag was given.
func (o *FilterOptions) Get() *memo.CategoryFilter {
	if o.cmd == nil || !o.cmd.Flags().Changed("filter") {
		return nil
	}
	f := memo.FilterFromFlag(o.Filter)
	return &f
}
