package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/commands/options"
	"tableflip.dev/memo/pkg/runner/info"
	"tableflip.dev/memo/pkg/runner/session"
)

func addInfo(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about memos and where they are stored.",
		Example: `
memo info
memo info --month 2026-02
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := info.Info{
					Session: s,
					Month:   month,
					Out:     cmd.OutOrStdout(),
				}
				return r.Do(ctx)
			})
		},
	}

	options.AddMonthArg(cmd, mo)

	topLevel.AddCommand(cmd)
}
