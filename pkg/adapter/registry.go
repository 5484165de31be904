package adapter

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// Registry maps location schemes to adapters. It is safe for concurrent usage.
type Registry struct {
	// lock serializes access to adapters.
	lock sync.RWMutex
	// adapters maps schemes to adapters.
	adapters map[string]Adapter
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register registers an adapter for its scheme. It fails if an adapter is
// already registered for the scheme.
func (r *Registry) Register(adapter Adapter) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	scheme := adapter.Scheme()
	if _, ok := r.adapters[scheme]; ok {
		return errors.Errorf("adapter already registered for scheme: %s", scheme)
	}
	r.adapters[scheme] = adapter
	return nil
}

// ForScheme returns the adapter registered for scheme.
func (r *Registry) ForScheme(scheme string) (Adapter, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	adapter, ok := r.adapters[scheme]
	return adapter, ok
}

// ForLocation returns the adapter responsible for the specified location.
func (r *Registry) ForLocation(l location.Location) (Adapter, error) {
	if adapter, ok := r.ForScheme(l.Scheme); ok {
		return adapter, nil
	}
	return nil, errors.Errorf("no adapter registered for scheme: %s", l.Scheme)
}
