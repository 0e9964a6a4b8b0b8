package slabcache

import "fmt"

// Slabs is the ordered enumeration of supported window sizes, in months,
// strictly ascending. A Slabs value handed to New is copied, so later caller
// mutation cannot skew lookups; each service instance owns its own set.
type Slabs []int

// Contains reports whether months is one of the supported sizes.
func (s Slabs) Contains(months int) bool {
	for _, m := range s {
		if m == months {
			return true
		}
	}
	return false
}

// Larger returns the supported sizes strictly greater than months, ascending.
func (s Slabs) Larger(months int) []int {
	var out []int
	for _, m := range s {
		if m > months {
			out = append(out, m)
		}
	}
	return out
}

// Below returns the supported sizes strictly smaller than months.
func (s Slabs) Below(months int) []int {
	var out []int
	for _, m := range s {
		if m < months {
			out = append(out, m)
		}
	}
	return out
}

func (s Slabs) clone() Slabs {
	out := make(Slabs, len(s))
	copy(out, s)
	return out
}

func (s Slabs) validate() error {
	if len(s) == 0 {
		return fmt.Errorf("slabcache: slab set is empty")
	}
	prev := 0
	for _, m := range s {
		if m <= prev {
			return fmt.Errorf("slabcache: slab set must be positive and strictly ascending, got %v", []int(s))
		}
		prev = m
	}
	return nil
}
