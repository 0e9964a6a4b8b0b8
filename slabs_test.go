package slabcache

import "testing"

func TestSlabsContains(t *testing.T) {
	s := DefaultSlabs
	for _, m := range []int{1, 3, 6, 12} {
		if !s.Contains(m) {
			t.Fatalf("expected %d to be supported", m)
		}
	}
	for _, m := range []int{0, 2, 5, 7, 13, -1} {
		if s.Contains(m) {
			t.Fatalf("expected %d to be unsupported", m)
		}
	}
}

func TestSlabsLargerAndBelow(t *testing.T) {
	s := DefaultSlabs

	larger := s.Larger(3)
	if len(larger) != 2 || larger[0] != 6 || larger[1] != 12 {
		t.Fatalf("Larger(3) = %v, want [6 12]", larger)
	}
	if got := s.Larger(12); len(got) != 0 {
		t.Fatalf("Larger(12) = %v, want empty", got)
	}

	below := s.Below(6)
	if len(below) != 2 || below[0] != 1 || below[1] != 3 {
		t.Fatalf("Below(6) = %v, want [1 3]", below)
	}
	if got := s.Below(1); len(got) != 0 {
		t.Fatalf("Below(1) = %v, want empty", got)
	}
}

func TestSlabsValidate(t *testing.T) {
	if err := (Slabs{1, 3, 6, 12}).validate(); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}
	for _, bad := range []Slabs{
		{},
		{3, 1},
		{1, 1, 3},
		{0, 3},
		{-1, 3},
	} {
		if err := bad.validate(); err == nil {
			t.Fatalf("expected %v to be rejected", bad)
		}
	}
}
