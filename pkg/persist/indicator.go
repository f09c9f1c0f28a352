package persist

import (
	"sync"
	"time"
)

// Indicator tells a UI whether to show "saving". It stays on for a minimum
// duration after each write and has no bearing on whether data was saved.
type Indicator struct {
	mu    sync.Mutex
	min   time.Duration
	until time.Time
	now   func() time.Time
}

// NewIndicator returns an Indicator that stays on for min after each Mark.
func NewIndicator(min time.Duration, now func() time.Time) *Indicator {
	if now == nil {
		now = time.Now
	}
	return &Indicator{min: min, now: now}
}

// Mark records a write.
func (i *Indicator) Mark() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.until = i.now().Add(i.min)
}

// Saving reports whether the indicator is on.
func (i *Indicator) Saving() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.now().Before(i.until)
}
