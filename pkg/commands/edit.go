package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/commands/options"
	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/runner/edit"
	"tableflip.dev/memo/pkg/runner/session"
)

func addEdit(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	co := &options.CategoryOptions{}
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, content or category of a memo",
		Example: `
memo edit 1760870400000 --title "groceries for friday"
memo edit 1760870400000 --category ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			r := edit.Edit{
				ID:       id,
				Category: co.Get(),
				JSON:     oo.JSON,
				Out:      cmd.OutOrStdout(),
			}
			if cmd.Flags().Changed("title") {
				r.Title = &title
			}
			if cmd.Flags().Changed("content") {
				r.Content = &content
			}
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r.Session = s
				return r.Do(ctx)
			}))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVar(&content, "content", "", "New content.")
	options.AddCategoryArg(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addPin(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := edit.Pin{Session: s, ID: id, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			}))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Select a memo; show and rm act on the selection by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := edit.Select{Session: s, ID: id}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addFilter(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "filter <all|none|category>",
		Short: "Set the saved category filter",
		Example: `
memo filter work
memo filter none
memo filter all
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return append([]string{"all", "none"}, categoryCompletions(toComplete)...), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := edit.Filter{Session: s, Filter: memo.FilterFromFlag(args[0])}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
