package slabcache

import "fmt"

// UnsupportedSlabError reports a request for a window size outside the
// service's configured slab set. Raised before any cache or fetch activity.
type UnsupportedSlabError struct {
	Months int
	Slabs  Slabs
}

func (e *UnsupportedSlabError) Error() string {
	return fmt.Sprintf("slabcache: unsupported window size %d months (supported: %v)",
		e.Months, []int(e.Slabs))
}
