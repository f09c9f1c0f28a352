// Package persist mirrors memo state into a key-value store. It reacts to
// commits and exit triggers; it never mutates state itself.
package persist

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/store"
)

// ExitReason names the exit trigger behind a Flush.
type ExitReason string

const (
	// ExitUnload is the process or UI going away.
	ExitUnload ExitReason = "unload"
	// ExitHidden is the UI losing its terminal or focus.
	ExitHidden ExitReason = "hidden"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithIndicator attaches a saving indicator marked on every settle write.
func WithIndicator(i *Indicator) Option {
	return func(c *Coordinator) {
		c.indicator = i
	}
}

// Coordinator writes snapshots of app.State to a store.KV.
type Coordinator struct {
	kv        store.KV
	log       *zap.Logger
	indicator *Indicator

	mu   sync.Mutex
	last *app.State
}

// New returns a Coordinator writing to kv.
func New(kv store.KV, opts ...Option) *Coordinator {
	c := &Coordinator{kv: kv, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads every key independently. Missing or malformed values fall back
// to their defaults; Load never fails.
func (c *Coordinator) Load(now func() time.Time) app.State {
	if now == nil {
		now = time.Now
	}
	read := func(key string) (string, bool) {
		v, ok, err := c.kv.Read(key)
		if err != nil {
			c.log.Warn("read failed, using default", zap.String("key", key), zap.Error(err))
			return "", false
		}
		return v, ok
	}
	fallback := func(key string, present, parsed bool) {
		if present && !parsed {
			c.log.Warn("malformed value, using default", zap.String("key", key))
		}
	}

	var st app.State

	raw, ok := read(KeyMemos)
	memos, parsed := decodeMemos(raw, ok, now())
	fallback(KeyMemos, ok && raw != "[]", parsed)
	st.Memos = memos

	raw, ok = read(KeyTrash)
	st.Trash, parsed = decodeTrash(raw, ok)
	fallback(KeyTrash, ok, parsed)
	live := memo.IDsOf(st.Memos)
	kept := st.Trash[:0]
	for _, e := range st.Trash {
		if live.Has(e.ID) {
			c.log.Warn("dropping trash entry shadowed by live memo", zap.Int64("id", e.ID))
			continue
		}
		kept = append(kept, e)
	}
	st.Trash = kept

	raw, ok = read(KeySelectedMemoID)
	st.Selection.MemoID, parsed = decodeSelectedID(raw, ok)
	fallback(KeySelectedMemoID, ok && raw != nullID, parsed)

	raw, ok = read(KeySelectedCategory)
	st.Selection.Category = decodeCategory(raw, ok)

	raw, ok = read(KeyCustomCategories)
	st.CustomCategories, parsed = decodeCustomCategories(raw, ok)
	fallback(KeyCustomCategories, ok, parsed)

	return st
}

// Attach makes c the persistence hook of svc and remembers the current
// state so an exit flush before the first commit still writes something.
func (c *Coordinator) Attach(svc *app.Service) {
	c.remember(svc.State())
	svc.OnCommit(func(st app.State) {
		_ = c.Settle(st)
	})
}

// Settle writes st under every key. Failures are logged and returned; the
// in-memory state stays the source of truth either way.
func (c *Coordinator) Settle(st app.State) error {
	c.remember(st)
	err := c.write(st)
	if err != nil {
		c.log.Warn("settle write failed", zap.Error(err))
		return err
	}
	if c.indicator != nil {
		c.indicator.Mark()
	}
	return nil
}

// Flush re-writes the last settled snapshot. It is the best-effort write on
// an exit trigger: it never panics and never returns an error.
func (c *Coordinator) Flush(reason ExitReason) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("exit flush panicked", zap.String("reason", string(reason)), zap.Any("panic", r))
		}
	}()

	c.mu.Lock()
	last := c.last
	c.mu.Unlock()
	if last == nil {
		return
	}
	if err := c.write(*last); err != nil {
		c.log.Error("exit flush failed", zap.String("reason", string(reason)), zap.Error(err))
		return
	}
	c.log.Debug("exit flush", zap.String("reason", string(reason)))
}

// Saving reports whether a "saving" indicator should be shown.
func (c *Coordinator) Saving() bool {
	return c.indicator != nil && c.indicator.Saving()
}

func (c *Coordinator) remember(st app.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = &st
}

func (c *Coordinator) write(st app.State) error {
	records, err := encode(st)
	if err != nil {
		return fmt.Errorf("persist: encode: %w", err)
	}
	var errs []error
	for _, r := range records {
		if err := c.kv.Write(r.key, r.value); err != nil {
			errs = append(errs, fmt.Errorf("persist: %s: %w", r.key, err))
		}
	}
	return errors.Join(errs...)
}
