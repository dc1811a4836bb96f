package plugin

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrConflict is returned when a plugin name is already registered
var ErrConflict = errors.New("plugin already registered")

// Registry manages plugin registration and platform routing
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Plugin
	ordered []Plugin // registration order, used for routing
}

// NewRegistry creates an empty plugin registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Plugin),
	}
}

// Register adds a plugin keyed by its unique name. A duplicate name aborts
// registration with ErrConflict.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[p.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrConflict, p.Name())
	}

	r.byName[p.Name()] = p
	r.ordered = append(r.ordered, p)

	log.Printf("[Registry] Registered plugin: %s (platforms: %v)", p.Name(), p.SupportedPlatforms())
	return nil
}

// Get returns a registered plugin by name
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	return p, ok
}

// Route returns the first registered plugin supporting the platform.
// The second return is false when no plugin handles the platform.
func (r *Registry) Route(platform string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.ordered {
		for _, supported := range p.SupportedPlatforms() {
			if supported == platform {
				return p, true
			}
		}
	}
	return nil, false
}

// List returns all registered plugins in registration order
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Plugin, len(r.ordered))
	copy(out, r.ordered)
	return out
}
