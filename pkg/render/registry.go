package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry resolves renderers by the name they report. The orchestrator keeps
// one registry per pipeline; handlers and CLIs can share it safely across
// goroutines.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Renderer),
	}
}

// Register adds a renderer under its Name(). Registering a second renderer
// with the same name is an error so wiring mistakes surface at startup.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: cannot register a nil renderer")
	}
	name := renderer.Name()
	if name == "" {
		return errors.New("render: renderer reports an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[name]; taken {
		return fmt.Errorf("render: renderer %q is already registered", name)
	}
	r.byName[name] = renderer
	return nil
}

// MustRegister panics when registration fails, for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("render: no renderer named %q", name)
	}
	return renderer, nil
}

// MustGet panics when the named renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// Has reports whether a renderer is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}
