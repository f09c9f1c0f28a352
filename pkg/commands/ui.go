package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/runner/session"
	teaui "tableflip.dev/memo/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
memo ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLongSession(cmd, func(ctx context.Context, s *session.Session) error {
				return teaui.Run(ctx, s.Service, s.Coordinator, teaui.Options{
					SettleDelay:   s.Config.SettleDelay(),
					CaseSensitive: s.Config.CaseSensitiveSearch(),
				})
			})
		},
	}

	topLevel.AddCommand(cmd)
}
