// Package info reports where memo state lives and what it holds.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/memo/pkg/printers"
	"tableflip.dev/memo/pkg/runner/session"
	"tableflip.dev/memo/pkg/store"
)

type Info struct {
	Session *session.Session
	// Month, when set, also prints a calendar of memo creation for the
	// month containing it.
	Month *time.Time
	Out   io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show info, no session")
	}
	w := n.Out

	if override := os.Getenv("MEMO_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "MEMO_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "MEMO_CONFIG_PATH env var not set")
	}

	cfg := n.Session.Config
	if file := store.ConfigFile(cfg); file != "" {
		_, _ = fmt.Fprintln(w, "Config file:", file)
	}
	_, _ = fmt.Fprintln(w, "Config.path:", cfg.BasePath())
	_, _ = fmt.Fprintln(w, "Config.settleDelay:", cfg.SettleDelay())

	if p, ok := n.Session.Persistence(); ok {
		_, _ = fmt.Fprintf(w, "Keys:\n")
		keys := p.Keys(ctx)
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, "  %s\n", k)
		}
		if len(keys) == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", "no keys")
		}
	}

	st := n.Session.Service.State()
	_, _ = fmt.Fprintf(w, "Memos: %d\n", len(st.Memos))
	_, _ = fmt.Fprintf(w, "Trash: %d\n", len(st.Trash))
	_, _ = fmt.Fprintf(w, "Categories: %d\n", len(st.Categories()))

	if n.Month != nil {
		_, _ = fmt.Fprintln(w, "")
		pp := printers.PrettyPrint{Out: w}
		pp.Month(*n.Month, st.Memos...)
	}
	return nil
}
