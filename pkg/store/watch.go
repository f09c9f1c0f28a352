package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventKeyChanged indicates the value stored under Key was written or
	// erased.
	EventKeyChanged EventType = iota

	// EventStoreInvalidated signals that the change could not be attributed
	// to a key and callers should re-read everything.
	EventStoreInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventKeyChanged:
		return "changed"
	case EventStoreInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next burst
				// carries the same information.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-throttle.Ready():
				throttle.Drain(send)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventStoreInvalidated})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := p.keyForPath(evt.Name)
				if key == "" {
					throttle.Enqueue(Event{Type: EventStoreInvalidated})
					continue
				}
				throttle.Enqueue(Event{Type: EventKeyChanged, Key: key})
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file under the base path back to its key.
func (p *persistence) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	if filepath.Dir(rel) != "." || isHidden(rel) {
		return ""
	}
	return rel
}

// eventThrottle coalesces rapid change notifications so consumers react once
// per burst of filesystem activity instead of on every single write. The
// timer only signals Ready; the owner of the events channel drains, so no
// send can race the channel being closed.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
	ready   chan struct{}
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
		ready:   make(chan struct{}, 1),
	}
}

func (t *eventThrottle) Enqueue(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Key] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.signal)
	}
}

// Ready fires once the delay after the first event of a burst has passed.
func (t *eventThrottle) Ready() <-chan struct{} {
	return t.ready
}

func (t *eventThrottle) signal() {
	select {
	case t.ready <- struct{}{}:
	default:
	}
}

// Drain hands every coalesced event to send and resets the burst.
func (t *eventThrottle) Drain(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, keys := range pending {
		if len(keys) == 0 {
			send(Event{Type: eventType})
			continue
		}

		for key := range keys {
			send(Event{Type: eventType, Key: key})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
