package domain

import (
	"context"
	"sort"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// SearchProvider is the external search collaborator.
// Search returns the raw JSON reply, an object keyed by category whose values are
// arrays of loosely typed offer records. Normalization happens in the caller.
type SearchProvider interface {
	// Name returns the unique identifier of the provider.
	Name() string

	// Search sends one sourcing request and returns the raw reply.
	Search(ctx context.Context, params SearchParams) ([]byte, error)
}

// ProviderRegistry holds the configured search providers by name.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]SearchProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: make(map[string]SearchProvider)}
}

// Register adds a provider, replacing any provider with the same name.
// Nil providers are ignored.
func (r *ProviderRegistry) Register(p SearchProvider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider with the given name, or nil.
func (r *ProviderRegistry) Get(name string) SearchProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns all registered providers ordered by name.
func (r *ProviderRegistry) GetAll() []SearchProvider {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SearchProvider, 0, len(names))
	for _, name := range names {
		if p, ok := r.providers[name]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the registered provider names, sorted.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
