// Package cache provides the key/value store registry clients use to avoid
// asking a registry about the same package twice in one run.
//
// [MemoryCache] is an LRU bounded in entry count; [NullCache] disables
// caching. Nothing is persisted between runs.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the payload stored under key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means the entry lives until
	// it is evicted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
