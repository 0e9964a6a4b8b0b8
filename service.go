package slabcache

import (
	"context"
	"fmt"
	"time"

	c "github.com/unkn0wn-root/slabcache/codec"
	"github.com/unkn0wn-root/slabcache/provider/memory"
)

type service struct {
	slabs   Slabs
	fetcher Fetcher
	store   *slabStore
	log     Logger
	hooks   Hooks
	now     func() time.Time
}

func newService(opts Options) (*service, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("slabcache: fetcher is required")
	}

	slabs := opts.Slabs
	if slabs == nil {
		slabs = DefaultSlabs
	}
	slabs = slabs.clone()
	if err := slabs.validate(); err != nil {
		return nil, err
	}

	s := &service{
		slabs:   slabs,
		fetcher: opts.Fetcher,
	}
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.now = opts.Now
	if s.now == nil {
		s.now = time.Now
	}

	prov := opts.Provider
	if prov == nil {
		prov = memory.New()
	}
	cod := opts.Codec
	if cod == nil {
		cod = c.JSON[Window]{}
	}

	s.store = &slabStore{
		ns:       coalesce(opts.Namespace, DefaultNamespace),
		slabs:    slabs,
		provider: prov,
		codec:    cod,
		ttl:      coalesce(opts.TTL, DefaultTTL),
		now:      s.now,
		log:      s.log,
		hooks:    s.hooks,
	}
	return s, nil
}

func (s *service) Slabs() Slabs { return s.slabs.clone() }

func (s *service) Close(ctx context.Context) error {
	return s.store.provider.Close(ctx)
}

func (s *service) Request(ctx context.Context, months int) (Window, error) {
	if !s.slabs.Contains(months) {
		return nil, &UnsupportedSlabError{Months: months, Slabs: s.slabs.clone()}
	}

	// 1. Exact hit: stored value returned verbatim, no re-normalization.
	if w, ok := s.lookup(ctx, months); ok {
		s.hooks.Hit(months)
		return w, nil
	}
	s.hooks.Miss(months)

	// 2. Smallest sufficient superset: scan larger slabs ascending and stop
	// at the first fresh one.
	for _, larger := range s.slabs.Larger(months) {
		w, ok := s.lookup(ctx, larger)
		if !ok {
			continue
		}
		s.hooks.Derived(larger, months)
		return Derive(w, months, s.now()), nil
	}

	// 3. Fallback fetch of exactly the requested slab.
	raw, err := s.fetcher.Fetch(ctx, months)
	if err != nil {
		return nil, err // data-source errors propagate unchanged
	}
	s.hooks.Fetched(months, len(raw))

	// Cache population and invalidation are best-effort: a broken store must
	// not fail a request the fetch already answered.
	if err := s.store.Insert(ctx, months, raw); err != nil {
		s.log.Warn("insert after fetch failed", Fields{"months": months, "err": err})
	}
	s.store.InvalidateBelow(ctx, months)

	return raw, nil
}

// lookup treats store errors as misses - cache trouble is the normal miss
// path, never a request failure.
func (s *service) lookup(ctx context.Context, months int) (Window, bool) {
	w, ok, err := s.store.Lookup(ctx, months)
	if err != nil {
		s.log.Warn("slab lookup failed; treating as miss", Fields{"months": months, "err": err})
		return nil, false
	}
	return w, ok
}
