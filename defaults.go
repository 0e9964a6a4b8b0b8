package slabcache

import "time"

// DefaultTTL is the freshness window used when Options.TTL is zero.
const DefaultTTL = time.Hour

// DefaultNamespace isolates storage keys when Options.Namespace is empty.
const DefaultNamespace = "summary"

// DefaultSlabs is the stock set of supported window sizes, in months.
var DefaultSlabs = Slabs{1, 3, 6, 12}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
