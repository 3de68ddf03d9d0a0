package policy

import (
	"fmt"
	"sync"

	"github.com/tollgate/tollgate"
)

// Registry maps names used in policy files to the predicates and actions
// implemented by the host. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	predicates map[string]tollgate.Predicate
	actions    map[string]tollgate.Action
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		predicates: make(map[string]tollgate.Predicate),
		actions:    make(map[string]tollgate.Action),
	}
}

// RegisterPredicate adds a named predicate. An existing name is overwritten.
func (r *Registry) RegisterPredicate(name string, p tollgate.Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[name] = p
}

// RegisterAction adds a named action. An existing name is overwritten.
func (r *Registry) RegisterAction(name string, a tollgate.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = a
}

// Predicate looks up a predicate by name.
func (r *Registry) Predicate(name string) (tollgate.Predicate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.predicates[name]
	if !ok {
		return nil, fmt.Errorf("predicate not found: %s", name)
	}
	return p, nil
}

// Action looks up an action by name.
func (r *Registry) Action(name string) (tollgate.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("action not found: %s", name)
	}
	return a, nil
}
