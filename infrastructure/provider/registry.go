// Package provider manages the release-metadata hosts relcheck can query.
package provider

import (
	"fmt"
	"time"

	"github.com/rios0rios0/relcheck/domain"
)

// Factory is a constructor function that creates a Fetcher with the given
// request timeout.
type Factory func(timeout time.Duration) domain.Fetcher

// Registry manages all registered release-metadata host implementations.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a fetcher factory under the given name (e.g. "github").
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Get returns a configured fetcher for the given name and timeout.
func (r *Registry) Get(name string, timeout time.Duration) (domain.Fetcher, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return factory(timeout), nil
}

// Names returns the list of registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
