// Package sloghooks logs slab cache events through log/slog, with optional
// sampling for the chatty ones.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/slabcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ slabcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit(months int) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("slabcache.hit", "months", months)
}

func (h *Hooks) Miss(months int) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("slabcache.miss", "months", months)
}

func (h *Hooks) Expired(months int) {
	if h.l == nil {
		return
	}
	h.l.Debug("slabcache.expired", "months", months)
}

func (h *Hooks) Derived(from, to int) {
	if h.l == nil {
		return
	}
	h.l.Info("slabcache.derived", "from", from, "to", to)
}

func (h *Hooks) Fetched(months, entries int) {
	if h.l == nil {
		return
	}
	h.l.Info("slabcache.fetched", "months", months, "entries", entries)
}

func (h *Hooks) Invalidated(months int) {
	if h.l == nil {
		return
	}
	h.l.Info("slabcache.invalidated", "months", months)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil {
		return
	}
	h.l.Warn("slabcache.self_heal", "key", storageKey, "reason", reason)
}
