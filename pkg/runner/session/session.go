// Package session wires a store, a persistence coordinator and an
// app.Service together for the duration of one command.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/persist"
	"tableflip.dev/memo/pkg/store"
)

// Session is the loaded memo state plus everything needed to keep the store
// in step with it.
type Session struct {
	Config      store.Config
	KV          store.KV
	Coordinator *persist.Coordinator
	Service     *app.Service
	Log         *zap.Logger

	stop func()
}

// Option configures a Session.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for loading and for the Service.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Open loads the disk store named by cfg and starts a session on it.
func Open(cfg store.Config, log *zap.Logger, opts ...Option) (*Session, error) {
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return New(p, cfg, log, opts...), nil
}

// New starts a session on kv.
func New(kv store.KV, cfg store.Config, log *zap.Logger, opts ...Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = store.StaticConfig{}
	}
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	coord := persist.New(kv,
		persist.WithLogger(log.Named("persist")),
		persist.WithIndicator(persist.NewIndicator(cfg.SavingIndicator(), o.now)),
	)
	st := coord.Load(o.now)
	svc := app.New(st,
		app.WithClock(o.now),
		app.WithLogger(log.Named("app")),
	)
	coord.Attach(svc)

	return &Session{
		Config:      cfg,
		KV:          kv,
		Coordinator: coord,
		Service:     svc,
		Log:         log,
	}
}

// Guard flushes on termination signals for the lifetime of the session.
// onUnload runs after the unload flush.
func (s *Session) Guard(ctx context.Context, onUnload func()) {
	if s.stop != nil {
		s.stop()
	}
	s.stop = s.Coordinator.Guard(ctx, onUnload)
}

// Persistence returns the underlying store when it supports enumeration and
// watching.
func (s *Session) Persistence() (store.Persistence, bool) {
	p, ok := s.KV.(store.Persistence)
	return p, ok
}

// Close performs the unload flush and releases the signal guard.
func (s *Session) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.Coordinator.Flush(persist.ExitUnload)
}
