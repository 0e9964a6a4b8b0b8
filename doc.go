// Package slabcache answers "last N months of transaction summary data"
// requests from a small fixed set of supported window sizes (slabs),
// minimizing round-trips to a slow or rate-limited external data provider.
//
// Components:
//   - Provider: byte store with TTL hints (in-process memory by default;
//     Ristretto, BigCache and Redis adapters available).
//   - Codec[Window]: (de)serializes windows <-> []byte for storage.
//   - Fetcher: the external data source, called only when no cached slab can
//     satisfy a request.
//
// Keys:
//
//	slab:<ns>:<months>
//
// Request flow:
//
//	svc, _ := slabcache.New(slabcache.Options{Fetcher: f})
//	w, err := svc.Request(ctx, 3)
//	// exact fresh hit          -> stored value returned verbatim
//	// fresh larger slab cached -> derived down via the window normalizer
//	// otherwise                -> fetch, cache raw, invalidate smaller slabs
//
// Freshness is decided on read: an entry whose age reaches the TTL is a miss
// regardless of what the underlying store thinks of it. Smaller slabs are
// dropped after every fetch since a fresher, wider fetch supersedes them.
package slabcache
