package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/commands/options"
	"tableflip.dev/memo/pkg/runner/add"
	"tableflip.dev/memo/pkg/runner/session"
)

func addNew(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	co := &options.CategoryOptions{}
	var (
		content string
		pin     bool
	)

	cmd := &cobra.Command{
		Use:     "new [title]",
		Short:   "Create a memo",
		Aliases: []string{"add"},
		Long: `Create a memo and select it. Without --category the memo lands in the
category of the active filter.`,
		Example: `
memo new groceries --content "milk, eggs"
memo new standup notes -c work --pin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := add.Add{
					Session:  s,
					Title:    strings.Join(args, " "),
					Content:  content,
					Category: co.Get(),
					Pin:      pin,
					ShowID:   oo.ShowID,
					JSON:     oo.JSON,
					Out:      cmd.OutOrStdout(),
				}
				return r.Do(ctx)
			}))
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Body of the memo.")
	cmd.Flags().BoolVarP(&pin, "pin", "p", false, "Pin the memo.")
	options.AddCategoryArg(cmd, co)
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
