package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/memo/pkg/logging"
	"tableflip.dev/memo/pkg/runner/session"
	"tableflip.dev/memo/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "memo",
		Short: base.Wrap80("Short notes on the command line, kept in a local store."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addEdit(topLevel)
	addSelect(topLevel)
	addFilter(topLevel)
	addPin(topLevel)
	addRemove(topLevel)
	addTrash(topLevel)
	addRestore(topLevel)
	addPurge(topLevel)
	addEmptyTrash(topLevel)
	addCategory(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// opener builds the session for a command. Tests replace it with an
// in-memory store.
var opener = func() (*session.Session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel(), cfg.LogDevelopment())
	if err != nil {
		return nil, err
	}
	return session.Open(cfg, log)
}

// withSession opens the store, guards it against termination for the
// duration of fn and performs the unload flush afterwards. A termination
// signal exits the process once the store is flushed.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session.Session) error) error {
	return runSession(cmd, false, fn)
}

// withLongSession is withSession for commands that run until interrupted:
// a termination signal cancels the context handed to fn instead.
func withLongSession(cmd *cobra.Command, fn func(ctx context.Context, s *session.Session) error) error {
	return runSession(cmd, true, fn)
}

func runSession(cmd *cobra.Command, cancelOnSignal bool, fn func(ctx context.Context, s *session.Session) error) error {
	cmd.SilenceUsage = true
	s, err := opener()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	onUnload := func() {
		_ = s.Log.Sync()
		os.Exit(130)
	}
	if cancelOnSignal {
		onUnload = cancel
	}
	s.Guard(ctx, onUnload)
	return fn(ctx, s)
}
