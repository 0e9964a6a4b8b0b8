package slabcache

import (
	"context"
	"strconv"
	"time"

	c "github.com/unkn0wn-root/slabcache/codec"
	"github.com/unkn0wn-root/slabcache/internal/wire"
	pr "github.com/unkn0wn-root/slabcache/provider"
)

// slabStore is the tiered slab cache: one provider entry per slab size, each
// framed with its insertion timestamp. Freshness is decided on read from
// that stamp; the TTL passed to the provider on Set is only a hint.
type slabStore struct {
	ns       string
	slabs    Slabs
	provider pr.Provider
	codec    c.Codec[Window]
	ttl      time.Duration
	now      func() time.Time
	log      Logger
	hooks    Hooks
}

func (st *slabStore) key(months int) string {
	return "slab:" + st.ns + ":" + strconv.Itoa(months)
}

// Lookup returns the cached window for months. found is false when no entry
// exists or the entry's age reached the TTL. Corrupt or undecodable entries
// are deleted (self-heal) and reported as misses; expired entries are
// removed best-effort but correctness never depends on the removal.
func (st *slabStore) Lookup(ctx context.Context, months int) (Window, bool, error) {
	k := st.key(months)
	raw, ok, err := st.provider.Get(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}
	cachedAt, payload, err := wire.Decode(raw)
	if err != nil {
		_ = st.provider.Del(ctx, k) // self-heal corrupt
		st.hooks.SelfHeal(k, "corrupt")
		return nil, false, nil
	}
	if st.now().Sub(cachedAt) >= st.ttl {
		_ = st.provider.Del(ctx, k)
		st.hooks.Expired(months)
		return nil, false, nil
	}
	w, err := st.codec.Decode(payload)
	if err != nil {
		_ = st.provider.Del(ctx, k) // self-heal
		st.hooks.SelfHeal(k, "value_decode")
		return nil, false, nil
	}
	return w, true, nil
}

// Insert unconditionally overwrites the entry for months, stamping the
// current time into the wire envelope.
func (st *slabStore) Insert(ctx context.Context, months int, w Window) error {
	payload, err := st.codec.Encode(w)
	if err != nil {
		return err
	}
	b := wire.Encode(st.now(), payload)
	ok, err := st.provider.Set(ctx, st.key(months), b, int64(len(b)), st.ttl)
	if err != nil {
		return err
	}
	if !ok {
		st.log.Debug("insert rejected by provider (pressure)", Fields{"months": months})
	}
	return nil
}

// InvalidateBelow drops every configured slab strictly smaller than months.
// Slabs greater than or equal to months, including months itself, are left
// untouched. Deletes are best-effort; failures are logged and skipped.
func (st *slabStore) InvalidateBelow(ctx context.Context, months int) {
	for _, smaller := range st.slabs.Below(months) {
		if err := st.provider.Del(ctx, st.key(smaller)); err != nil {
			st.log.Warn("invalidate delete failed", Fields{"months": smaller, "err": err})
			continue
		}
		st.hooks.Invalidated(smaller)
	}
}
