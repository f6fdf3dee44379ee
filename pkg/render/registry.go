package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownRenderer is returned when a page is requested in an output format
// nobody registered.
var ErrUnknownRenderer = errors.New("render: unknown renderer")

// Registry holds the output renderers a page can be produced with, keyed by
// Name(). It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns a registry holding renderers.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry returns a registry holding the fragment renderer. The
// document renderer lives in its own package and is registered by callers.
func NewDefaultRegistry() *Registry {
	return &Registry{renderers: map[string]Renderer{FragmentName: Fragment{}}}
}

// Register adds renderer under its name. Names are unique.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// Get returns the renderer registered as name. The error wraps
// ErrUnknownRenderer and lists the registered names.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if renderer, ok := r.renderers[name]; ok {
		return renderer, nil
	}
	available := slices.Sorted(maps.Keys(r.renderers))
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownRenderer, name, strings.Join(available, ", "))
}

// List returns the registered names in order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.renderers))
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.renderers[name]
	return ok
}
