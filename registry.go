package retry

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Registry tracks named policies, typically those built by [LoadConfig].
//
// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe lazy
// init; explicit registries can be created for testing or multi-tenant
// scenarios.
type Registry struct {
	policies atomic.Pointer[map[string]Policy]
	mu       sync.Mutex
}

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}

	empty := map[string]Policy{}

	r.policies.Store(&empty)

	return r
}

// Register adds a policy under name, replacing any previous entry.
// It is safe for concurrent use but intended for initialization only.
func (r *Registry) Register(name string, p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.policies.Load()
	// Create a new map (copy-on-write) to avoid mutating the map that
	// concurrent readers may be iterating.
	updated := make(map[string]Policy, len(old)+1)
	for k, v := range old {
		updated[k] = v
	}
	updated[name] = p

	r.policies.Store(&updated)
}

// Lookup returns the policy registered under name, or false if none is.
func (r *Registry) Lookup(name string) (Policy, bool) {
	p, ok := (*r.policies.Load())[name]

	return p, ok
}

// Names returns the registered policy names in sorted order.
func (r *Registry) Names() []string {
	policies := *r.policies.Load()

	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
