// Package db defines the storage facade consumed by the repositories.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on narrow sub-interfaces (ISP).
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides plain key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMulti fetches multiple keys in one round-trip. Missing keys
	// yield nil entries at their positions.
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetNX stores value only if key is absent; returns ErrKeyExists otherwise.
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}
