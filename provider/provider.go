// Package provider defines the storage abstraction used by slabcache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g. compression), they MUST be fully
// reversed so the bytes returned by Get match the bytes given to Set.
//
// The keyspace "slab:<ns>:" is owned by slabcache. External code MUST NOT
// write values under this prefix - foreign writes fail wire-format
// validation and are deleted as corrupt.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTL hints. Must be safe for
// concurrent use. The TTL passed to Set is advisory: slabcache stamps every
// entry and enforces freshness on read, so a store that cannot expire
// per-entry (or at all) is still correct.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL hint. May ignore cost if
	// unsupported. Returns ok=false when the store rejected the write under
	// pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
