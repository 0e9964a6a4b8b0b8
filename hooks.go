package slabcache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking - the service calls them on
// the request path. Wrap with hooks/async to offload slow sinks.
type Hooks interface {
	// A fresh entry for the exact requested slab satisfied the request.
	Hit(months int)

	// No fresh entry for the requested slab (absent or expired).
	Miss(months int)

	// A stored entry's age reached the TTL on read.
	Expired(months int)

	// A request was satisfied by normalizing a cached larger slab down.
	Derived(from, to int)

	// The fetch collaborator was called; entries is the raw result length.
	Fetched(months, entries int)

	// A smaller slab was dropped after a fresher, wider fetch superseded it.
	Invalidated(months int)

	// A stored entry was deleted by the cache on read.
	// reason is "corrupt" or "value_decode".
	SelfHeal(storageKey, reason string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(int)                 {}
func (NopHooks) Miss(int)                {}
func (NopHooks) Expired(int)             {}
func (NopHooks) Derived(int, int)        {}
func (NopHooks) Fetched(int, int)        {}
func (NopHooks) Invalidated(int)         {}
func (NopHooks) SelfHeal(string, string) {}
