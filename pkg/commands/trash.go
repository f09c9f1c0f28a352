package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memo/pkg/commands/options"
	"tableflip.dev/memo/pkg/runner/session"
	"tableflip.dev/memo/pkg/runner/trash"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm [id...]",
		Short:   "Move memos to the trash, the selected one by default",
		Aliases: []string{"delete"},
		Example: `
memo rm
memo rm 1760870400000 1760870400001
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := options.ParseIDs(args)
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := trash.Delete{Session: s, IDs: ids, Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addTrash(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "trash",
		Short: "List trashed memos, most recently deleted first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := trash.List{Session: s, ShowID: oo.ShowID, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			}))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addRestore(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "restore <id...>",
		Short: "Move trashed memos back to the front of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := options.ParseIDs(args)
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := trash.Restore{Session: s, IDs: ids, Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addPurge(topLevel *cobra.Command) {
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "purge <id...>",
		Short: "Permanently delete trashed memos",
		Long: `Permanently delete trashed memos. Asks for confirmation unless --yes is
given; without a terminal to ask on, nothing is deleted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := options.ParseIDs(args)
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := trash.Purge{Session: s, IDs: ids, Prompt: yo.Prompter(cmd), Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			})
		},
	}

	options.AddConfirmArg(cmd, yo)

	topLevel.AddCommand(cmd)
}

func addEmptyTrash(topLevel *cobra.Command) {
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "empty-trash",
		Short: "Permanently delete every trashed memo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session.Session) error {
				r := trash.Empty{Session: s, Prompt: yo.Prompter(cmd), Out: cmd.OutOrStdout()}
				return r.Do(ctx)
			})
		},
	}

	options.AddConfirmArg(cmd, yo)

	topLevel.AddCommand(cmd)
}
