package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/commands/options"
	"tableflip.dev/memo/pkg/runner/get"
	"tableflip.dev/memo/pkg/runner/session"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	fo := &options.FilterOptions{}
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List memos, pinned first then newest",
		Aliases: []string{"get", "ls"},
		Example: `
memo list
memo list --filter work
memo list --filter none --search milk
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := get.Get{
					Session:       s,
					Filter:        fo.Get(),
					Search:        so.Get(),
					CaseSensitive: so.CaseSensitive || s.Config.CaseSensitiveSearch(),
					ShowID:        oo.ShowID,
					JSON:          oo.JSON,
					Out:           cmd.OutOrStdout(),
				}
				return r.Do(ctx)
			}))
		},
	}

	options.AddFilterArg(cmd, fo)
	_ = cmd.RegisterFlagCompletionFunc("filter", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return append([]string{"all", "none"}, categoryCompletions(toComplete)...), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddSearchArgs(cmd, so)
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a memo, the selected one by default",
		Example: `
memo show
memo show 1760870400000
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if len(args) == 1 {
				var err error
				if id, err = options.ParseID(args[0]); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := get.Show{
					Session: s,
					ID:      id,
					JSON:    oo.JSON,
					Out:     cmd.OutOrStdout(),
				}
				return r.Do(ctx)
			}))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
