// Package storage provides the durable key-value backing store for
// dashboard state. Each logical slice of state is serialized as a single
// JSON string under a fixed key. All drivers are best-effort: callers are
// expected to tolerate and swallow failures, keeping the in-memory value
// authoritative for the running process.
package storage

import (
	"context"
	"errors"
)

// Driver identifies a backing store implementation.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
)

var (
	// ErrNotFound is returned when no value exists under the requested key.
	ErrNotFound = errors.New("key not found")
)

// Store is a synchronous string key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes the value under key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the store.
	Close() error
}
