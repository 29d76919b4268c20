// Package shell hosts the server-rendered view modules of the web app.
// Exactly one module is active at a time; activating a module tears the
// previous one down first. The registry is an explicit object handed to
// whoever needs it rather than an ambient singleton.
package shell

import (
	"errors"
	"fmt"
	"sync"
)

// Common errors
var (
	ErrUnknownModule   = errors.New("unknown module")
	ErrDuplicateModule = errors.New("module already registered")
)

// Module is one named view. Render produces the module's markup; Init and
// Destroy bracket its active lifetime.
type Module interface {
	Name() string
	Title() string
	Render() (string, error)
	Init()
	Destroy()
}

// BaseModule provides no-op lifecycle hooks for modules that keep no state
type BaseModule struct{}

func (BaseModule) Init()    {}
func (BaseModule) Destroy() {}

// Registry holds the named modules and tracks which one is active
type Registry struct {
	mu      sync.Mutex
	modules map[string]Module
	order   []string
	active  Module
}

// NewRegistry creates an empty module registry
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds a module under its name
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := m.Name()
	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, name)
	}
	r.modules[name] = m
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered module names in registration order
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Activate switches the active module: the previous one is destroyed, the
// new one rendered and initialized. Activating the already-active module
// re-renders it without a destroy/init cycle.
func (r *Registry) Activate(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, ok := r.modules[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}

	if r.active != nil && r.active != next {
		r.active.Destroy()
		r.active = nil
	}

	markup, err := next.Render()
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	if r.active != next {
		next.Init()
		r.active = next
	}
	return markup, nil
}

// Active returns the name of the active module, or "" when none is active
func (r *Registry) Active() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return ""
	}
	return r.active.Name()
}

// Deactivate destroys the active module, leaving none active
func (r *Registry) Deactivate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		r.active.Destroy()
		r.active = nil
	}
}
