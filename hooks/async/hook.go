// Package asynchook decouples hook sinks from the request path: events are
// queued and replayed on worker goroutines, dropped when the queue is full.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{HitEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	svc, _ := slabcache.New(slabcache.Options{
//	    Fetcher: f,
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/slabcache"
)

type Hooks struct {
	inner slabcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ slabcache.Hooks = (*Hooks)(nil)

func New(inner slabcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}
	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for fn := range h.q {
				fn()
			}
		}()
	}
	return h
}

// Close drains already-queued events and stops the workers. Hook calls after
// Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) enqueue(fn func()) {
	defer func() {
		// send on closed queue after Close: drop
		_ = recover()
	}()
	select {
	case h.q <- fn:
	default:
		// queue full: drop rather than block the request path
	}
}

func (h *Hooks) Hit(months int)     { h.enqueue(func() { h.inner.Hit(months) }) }
func (h *Hooks) Miss(months int)    { h.enqueue(func() { h.inner.Miss(months) }) }
func (h *Hooks) Expired(months int) { h.enqueue(func() { h.inner.Expired(months) }) }
func (h *Hooks) Derived(from, to int) {
	h.enqueue(func() { h.inner.Derived(from, to) })
}
func (h *Hooks) Fetched(months, entries int) {
	h.enqueue(func() { h.inner.Fetched(months, entries) })
}
func (h *Hooks) Invalidated(months int) { h.enqueue(func() { h.inner.Invalidated(months) }) }
func (h *Hooks) SelfHeal(storageKey, reason string) {
	h.enqueue(func() { h.inner.SelfHeal(storageKey, reason) })
}
