package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/commands/options"
	"tableflip.dev/memo/pkg/prompt"
	"tableflip.dev/memo/pkg/runner/categories"
	"tableflip.dev/memo/pkg/runner/session"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Short:   "Manage categories",
		Aliases: []string{"categories", "cat"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategoryList(cmd)
	addCategoryAdd(cmd)
	addCategoryDelete(cmd)
	addCategoryReorder(cmd)
	addCategoryMove(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List categories with memo counts",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := categories.List{Session: s, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			}))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Declare a category, prompting for the name when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := categories.Add{
				Prompt: &prompt.Terminal{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()},
				Out:    cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				r.Name = args[0]
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r.Session = s
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addCategoryDelete(topLevel *cobra.Command) {
	var target string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category, moving its memos elsewhere",
		Long: `Delete a category. Its memos move to --to, or become uncategorized.
A filter on the deleted category resets to all.`,
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := categories.Delete{Session: s, Name: args[0], Target: target, Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Category receiving the memos.")

	topLevel.AddCommand(cmd)
}

func addCategoryReorder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reorder <from> <to>",
		Short: "Move a declared category to another position",
		Long:  "Move a declared category to another position. Positions are the # column of category list.",
		Example: `
memo category reorder 2 0
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := categories.Reorder{Session: s, From: from, To: to}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addCategoryMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <id> <category>",
		Short: `Put a memo in a category, "" for uncategorized`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := categories.Move{Session: s, ID: id, Category: args[1]}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
