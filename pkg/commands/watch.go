package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/logging"
	"tableflip.dev/memo/pkg/runner/watch"
	"tableflip.dev/memo/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a line whenever another process changes the store",
		Example: `
memo watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel(), cfg.LogDevelopment())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			// Watching never writes, so it needs no session.
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{
				Persistence: p,
				Log:         log.Named("watch"),
				Out:         cmd.OutOrStdout(),
			}
			return w.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
