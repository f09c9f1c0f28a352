// Package watch reports changes made to the memo store by other processes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/memo/pkg/persist"
	"tableflip.dev/memo/pkg/store"
)

type Watch struct {
	Persistence store.Persistence
	Log         *zap.Logger
	Out         io.Writer
	Now         func() time.Time
}

// Do prints one line per changed key until ctx is done.
func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := n.Now
	if now == nil {
		now = time.Now
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	log.Debug("watching", zap.String("path", n.Persistence.BasePath()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			ts := now().Format(time.TimeOnly)
			if ev.Type == store.EventStoreInvalidated {
				_, _ = fmt.Fprintf(n.Out, "%s %s\n", ts, ev.Type)
				continue
			}
			_, _ = fmt.Fprintf(n.Out, "%s %s %s%s\n", ts, ev.Type, ev.Key, n.describe(ev.Key, log))
		}
	}
}

func (n *Watch) describe(key string, log *zap.Logger) string {
	switch key {
	case persist.KeyMemos, persist.KeyTrash, persist.KeyCustomCategories:
	default:
		return ""
	}
	raw, ok, err := n.Persistence.Read(key)
	if err != nil {
		log.Warn("read after change failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return " (erased)"
	}
	count, ok := persist.Count(raw)
	if !ok {
		return " (unreadable)"
	}
	return fmt.Sprintf(" (%d)", count)
}
