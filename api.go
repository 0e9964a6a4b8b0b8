package slabcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/slabcache/codec"
	pr "github.com/unkn0wn-root/slabcache/provider"
)

// Fetcher is the external data source. Fetch is called with exactly the
// requested slab size and may block on network or disk I/O; pass a
// deadline-aware implementation if you need timeouts. Fetch errors propagate
// to the Request caller unchanged - no retries, no wrapping.
type Fetcher interface {
	Fetch(ctx context.Context, months int) (Window, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, months int) (Window, error)

func (f FetcherFunc) Fetch(ctx context.Context, months int) (Window, error) {
	return f(ctx, months)
}

// Service answers "last N months of transaction summary" requests, keeping
// Fetcher round-trips to a minimum via the tiered slab cache.
type Service interface {
	// Request returns the window for one of the configured slab sizes.
	// Exact fresh hits come back verbatim; otherwise the smallest fresh
	// larger slab is derived down; otherwise the Fetcher is called, its raw
	// result cached under months, and every smaller slab invalidated.
	// A size outside the slab set fails with *UnsupportedSlabError before
	// any cache or fetch work happens.
	Request(ctx context.Context, months int) (Window, error)

	// Slabs returns a copy of the configured slab set.
	Slabs() Slabs

	// Close releases provider resources.
	Close(ctx context.Context) error
}

// Options tune the service. Only Fetcher is required; everything else has a
// sensible default.
type Options struct {
	// Required
	Fetcher Fetcher

	Slabs     Slabs            // supported sizes, strictly ascending; nil => DefaultSlabs
	TTL       time.Duration    // freshness window; 0 => DefaultTTL (1h)
	Namespace string           // storage key prefix; "" => DefaultNamespace
	Provider  pr.Provider      // byte store; nil => in-process memory store
	Codec     c.Codec[Window]  // payload serialization; nil => codec.JSON
	Logger    Logger           // nil => NopLogger
	Hooks     Hooks            // nil => NopHooks
	Now       func() time.Time // clock for freshness and derivation; nil => time.Now
}

func New(opts Options) (Service, error) {
	return newService(opts)
}
