package slabcache

import (
	"context"
	"testing"
	"time"

	c "github.com/unkn0wn-root/slabcache/codec"
	"github.com/unkn0wn-root/slabcache/internal/wire"
	"github.com/unkn0wn-root/slabcache/provider/memory"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, time.February, 17, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestStore(t *testing.T, ttl time.Duration, clk *fakeClock) (*slabStore, *memory.Store) {
	t.Helper()
	mp := memory.New()
	st := &slabStore{
		ns:       "test",
		slabs:    DefaultSlabs.clone(),
		provider: mp,
		codec:    c.JSON[Window]{},
		ttl:      ttl,
		now:      clk.Now,
		log:      NopLogger{},
		hooks:    NopHooks{},
	}
	return st, mp
}

var sampleWindow = Window{
	{Position: 1, Month: "Jan 26", Settled: 100, Authorized: 110},
	{Position: 2, Month: "Feb 26", Settled: 200, Authorized: 210},
}

// ==============================
// Insert / Lookup / freshness
// ==============================

func TestStoreInsertLookupRoundTrip(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, _ := newTestStore(t, time.Hour, clk)

	if _, ok, err := st.Lookup(ctx, 6); err != nil || ok {
		t.Fatalf("expected miss on empty store, ok=%v err=%v", ok, err)
	}

	if err := st.Insert(ctx, 6, sampleWindow); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	w, ok, err := st.Lookup(ctx, 6)
	if err != nil || !ok {
		t.Fatalf("Lookup after insert: ok=%v err=%v", ok, err)
	}
	assertWindowsEqual(t, w, sampleWindow)
}

func TestStoreZeroTTLIsImmediateMiss(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, _ := newTestStore(t, 0, clk)

	if err := st.Insert(ctx, 6, sampleWindow); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	// age 0 >= ttl 0: already stale
	if _, ok, _ := st.Lookup(ctx, 6); ok {
		t.Fatalf("zero-duration TTL should miss immediately")
	}
}

func TestStoreTTLExpiryOnRead(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, _ := newTestStore(t, time.Hour, clk)

	if err := st.Insert(ctx, 6, sampleWindow); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	clk.Advance(time.Hour - time.Nanosecond)
	if _, ok, _ := st.Lookup(ctx, 6); !ok {
		t.Fatalf("entry younger than ttl should still be fresh")
	}

	clk.Advance(time.Nanosecond) // age == ttl: stale
	if _, ok, _ := st.Lookup(ctx, 6); ok {
		t.Fatalf("entry aged to ttl should miss")
	}
}

func TestStoreOverwriteRefreshesStamp(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, _ := newTestStore(t, time.Hour, clk)

	if err := st.Insert(ctx, 6, sampleWindow); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	clk.Advance(50 * time.Minute)
	if err := st.Insert(ctx, 6, sampleWindow); err != nil {
		t.Fatalf("re-Insert: %v", err)
	}
	clk.Advance(50 * time.Minute)

	// 100 minutes after the first write, but only 50 after the overwrite.
	if _, ok, _ := st.Lookup(ctx, 6); !ok {
		t.Fatalf("overwrite should have refreshed the stamp")
	}
}

// ==============================
// Invalidation
// ==============================

func TestStoreInvalidateBelow(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, _ := newTestStore(t, time.Hour, clk)

	for _, m := range []int{1, 3, 6, 12} {
		if err := st.Insert(ctx, m, sampleWindow); err != nil {
			t.Fatalf("Insert %d: %v", m, err)
		}
	}

	st.InvalidateBelow(ctx, 6)

	for _, m := range []int{1, 3} {
		if _, ok, _ := st.Lookup(ctx, m); ok {
			t.Fatalf("slab %d should have been invalidated", m)
		}
	}
	for _, m := range []int{6, 12} {
		if _, ok, _ := st.Lookup(ctx, m); !ok {
			t.Fatalf("slab %d should have survived invalidation", m)
		}
	}
}

// ==============================
// Self-heal
// ==============================

func TestStoreSelfHealOnCorrupt(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, mp := newTestStore(t, time.Hour, clk)

	k := st.key(6)
	if ok, err := mp.Set(ctx, k, []byte("not-wire-format"), 1, 0); err != nil || !ok {
		t.Fatalf("inject corrupt: ok=%v err=%v", ok, err)
	}

	if _, ok, err := st.Lookup(ctx, 6); err != nil || ok {
		t.Fatalf("Lookup on corrupt should miss, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := mp.Get(ctx, k); ok {
		t.Fatalf("corrupt entry was not deleted by self-heal")
	}
}

func TestStoreSelfHealOnBadPayload(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	st, mp := newTestStore(t, time.Hour, clk)

	// Valid envelope, undecodable payload.
	k := st.key(6)
	b := wire.Encode(clk.Now(), []byte("{not json"))
	if ok, err := mp.Set(ctx, k, b, 1, 0); err != nil || !ok {
		t.Fatalf("inject bad payload: ok=%v err=%v", ok, err)
	}

	if _, ok, err := st.Lookup(ctx, 6); err != nil || ok {
		t.Fatalf("Lookup on bad payload should miss, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := mp.Get(ctx, k); ok {
		t.Fatalf("undecodable entry was not deleted by self-heal")
	}
}

// ==============================
// Codec choices
// ==============================

func TestStoreRoundTripAcrossCodecs(t *testing.T) {
	codecs := map[string]c.Codec[Window]{
		"json":    c.JSON[Window]{},
		"msgpack": c.Msgpack[Window]{},
		"cbor":    c.MustCBOR[Window](false),
	}
	for name, cod := range codecs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			clk := newFakeClock()
			st, _ := newTestStore(t, time.Hour, clk)
			st.codec = cod

			if err := st.Insert(ctx, 3, sampleWindow); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			w, ok, err := st.Lookup(ctx, 3)
			if err != nil || !ok {
				t.Fatalf("Lookup: ok=%v err=%v", ok, err)
			}
			assertWindowsEqual(t, w, sampleWindow)
		})
	}
}
