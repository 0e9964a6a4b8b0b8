package memory

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected miss on empty store, ok=%v err=%v", ok, err)
	}

	if ok, err := s.Set(ctx, "k", []byte("v1"), 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	if v, ok, _ := s.Get(ctx, "k"); !ok || !bytes.Equal(v, []byte("v1")) {
		t.Fatalf("Get after set: ok=%v v=%q", ok, v)
	}

	// overwrite
	if ok, err := s.Set(ctx, "k", []byte("v2"), 1, 0); err != nil || !ok {
		t.Fatalf("overwrite: ok=%v err=%v", ok, err)
	}
	if v, _, _ := s.Get(ctx, "k"); !bytes.Equal(v, []byte("v2")) {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after delete")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, len=%d", s.Len())
	}
}

func TestLazyExpiry(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Set(ctx, "k", []byte("v"), 1, time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected expiry after ttl")
	}
	// expired entry was dropped on read
	if s.Len() != 0 {
		t.Fatalf("expected lazy removal, len=%d", s.Len())
	}
}

func TestZeroTTLMeansNoProviderExpiry(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Set(ctx, "k", []byte("v"), 1, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatalf("ttl=0 entries must not expire at the provider level")
	}
}
