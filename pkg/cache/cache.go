// Package cache stores rendered diagrams between CLI runs.
//
// Rendering is cheap for small inputs but large documents with deep nesting
// lay out many grids; the CLI keys each rendered output by the input bytes
// and the effective options (see [RenderKey]) so repeated runs over the
// same file return immediately.
//
// Two implementations are provided: [FileCache] persists entries as JSON
// files under a directory, and [NullCache] never stores anything.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired and
	// unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
