// Package state implements the persistent slice mechanism: named pieces
// of dashboard state hydrated once from the backing store and written
// through on every change after that.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"opsdeck/internal/storage"
)

// Slice holds one named, independently persisted value.
//
// A freshly constructed slice always reports the supplied initial value
// until Hydrate has run, so first observations are identical whether or
// not the backing store is reachable or pre-populated. After hydration,
// every installed value is serialized and written through to the store
// under the slice's key. Writes before hydration are memory-only: they
// must not clobber durable state with the placeholder initial value.
//
// Store reads and writes are best-effort. A missing or unparseable
// stored value keeps the initial value; a failed write keeps the
// in-memory value authoritative. Neither surfaces to the caller.
type Slice[T any] struct {
	store  storage.Store
	key    string
	logger *slog.Logger

	mu       sync.Mutex
	value    T
	version  uint64
	hydrated bool
}

// NewSlice creates a slice bound to key with the given initial value.
func NewSlice[T any](store storage.Store, key string, initial T, logger *slog.Logger) *Slice[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slice[T]{
		store:  store,
		key:    key,
		value:  initial,
		logger: logger,
	}
}

// Key returns the backing store key.
func (s *Slice[T]) Key() string {
	return s.key
}

// Value returns the current in-memory value.
func (s *Slice[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Version returns a counter that increments every time a new value is
// installed (including hydration). Derived aggregates use it to detect
// change without deep comparison.
func (s *Slice[T]) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Hydrated reports whether hydration has completed.
func (s *Slice[T]) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Hydrate reads the stored value exactly once per slice lifetime. If a
// value exists and parses it replaces the in-memory value; otherwise the
// initial value is kept. Subsequent calls are no-ops.
func (s *Slice[T]) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("slice hydration read failed", "key", s.key, "error", err)
		}
		return
	}

	var stored T
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		// Corrupt payload is treated the same as absent.
		s.logger.Warn("slice hydration parse failed, keeping initial value", "key", s.key, "error", err)
		return
	}

	s.value = stored
	s.version++
}

// Replace installs v as the new value and, if hydration has completed,
// writes it through to the backing store.
func (s *Slice[T]) Replace(ctx context.Context, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(ctx, v)
}

// Update applies fn to the current value and installs the result. fn
// must build a new value rather than mutating its argument in place.
func (s *Slice[T]) Update(ctx context.Context, fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(ctx, fn(s.value))
}

// install replaces the value and persists it. Callers hold s.mu.
func (s *Slice[T]) install(ctx context.Context, v T) {
	s.value = v
	s.version++

	if !s.hydrated {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("slice serialization failed, skipping write", "key", s.key, "error", err)
		return
	}
	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Debug("slice write failed, in-memory value remains authoritative", "key", s.key, "error", err)
	}
}
