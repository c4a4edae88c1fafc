// Package cache stores rendered pages so repeated requests skip the render.
//
// Three backends implement Cache:
//   - NullCache: never stores anything; caching disabled
//   - MemoryCache: in-process map with expiry, for a single instance
//   - RedisCache: shared cache for multi-instance deployments
//
// Keys are built with PageKey, which hashes the request path and query so
// arbitrary URLs map to fixed-length keys.
package cache

import (
	"context"
	"time"
)

// Cache stores byte payloads under string keys.
type Cache interface {
	// Get returns the payload for key. ok is false on a miss; err is only
	// set when the backend failed.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
