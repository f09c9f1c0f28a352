// Package store provides the key-value stores memo state is mirrored to, and
// the configuration that locates them.
package store

import (
	"context"
	"sort"
	"sync"
)

// KV is a synchronous string-keyed store. Read reports false for keys that
// were never written.
type KV interface {
	Read(key string) (string, bool, error)
	Write(key, value string) error
}

// Persistence is a KV that can also enumerate, erase and watch its keys.
type Persistence interface {
	KV
	Keys(ctx context.Context) []string
	Erase(key string) error
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
}

// Memory is an in-process KV.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Read(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Keys returns the written keys in sorted order.
func (m *Memory) Keys(_ context.Context) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
