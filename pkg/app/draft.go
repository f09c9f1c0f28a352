package app

import (
	"sync"
	"time"

	"tableflip.dev/memo/pkg/memo"
)

// DefaultSettleDelay is how long an edit waits before it is committed.
const DefaultSettleDelay = 400 * time.Millisecond

// Draft coalesces rapid edits of a memo into a single Service.Update. Each
// Edit supersedes the pending one and restarts the settle delay; a superseded
// or cancelled edit never reaches the Service.
type Draft struct {
	svc   *Service
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending *memo.Memo
}

// NewDraft returns a Draft committing to s after delay.
func (s *Service) NewDraft(delay time.Duration) *Draft {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Draft{svc: s, delay: delay}
}

// Edit schedules m to be committed once the settle delay passes without
// another Edit.
func (d *Draft) Edit(m memo.Memo) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.pending = &m
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// Pending returns the edit waiting to be committed.
func (d *Draft) Pending() (memo.Memo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return memo.Memo{}, false
	}
	return *d.pending, true
}

// Flush commits the pending edit right away. It reports whether there was
// one.
func (d *Draft) Flush() bool {
	d.mu.Lock()
	m := d.takeLocked()
	d.mu.Unlock()

	if m == nil {
		return false
	}
	d.svc.Update(*m)
	return true
}

// Cancel drops the pending edit.
func (d *Draft) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.takeLocked()
}

func (d *Draft) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	m := d.takeLocked()
	d.mu.Unlock()

	if m != nil {
		d.svc.Update(*m)
	}
}

// takeLocked clears the pending edit and invalidates any scheduled fire.
func (d *Draft) takeLocked() *memo.Memo {
	d.stopLocked()
	d.gen++
	m := d.pending
	d.pending = nil
	return m
}

func (d *Draft) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
