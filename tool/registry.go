package tool

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/halcyonlabs/gemschema/internal/logging"
)

// Registry manages tool registrations with thread-safe operations.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool // For fast lookups by name
	order []string        // Preserves registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
		order: make([]string, 0),
	}
}

// Register adds a tool to the registry. Re-registering a name replaces the
// tool but keeps its original position in the registration order.
func (r *Registry) Register(t Tool) error {
	name := t.Declaration().Name
	if name == "" {
		return fmt.Errorf("tool declaration missing name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	} else {
		logging.Logger().Debug("replacing registered tool", "name", name)
	}
	r.tools[name] = t

	return nil
}

// Deregister removes a tool from the registry.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tools, name)

	for i, toolName := range r.order {
		if toolName == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.tools[name]
	return t, exists
}

// List returns tool names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Return a copy to prevent external modification
	return slices.Clone(r.order)
}

// Declarations returns every registered tool's declaration in registration
// order, ready to hand to a provider exporter.
func (r *Registry) Declarations() []FunctionDeclaration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decls := make([]FunctionDeclaration, 0, len(r.order))
	for _, name := range r.order {
		if t, exists := r.tools[name]; exists {
			decls = append(decls, t.Declaration())
		}
	}
	return decls
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute runs a tool by name with the given context and JSON input.
func (r *Registry) Execute(ctx context.Context, name string, input string) (string, error) {
	t, exists := r.Get(name)
	if !exists {
		return "", fmt.Errorf("tool %q not found", name)
	}
	return t.Call(ctx, input), nil
}
