package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrInvalidModule is returned by NewRoot for a nil module or empty name.
var ErrInvalidModule = errors.New("store: invalid module")

// Change describes a write to a field of a module.
type Change struct {
	Module string
	Field  string
	Value  any
}

// Root aggregates named modules into a single store.
type Root struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// NewRoot composes modules into a Root. Keys are the names under which the
// modules are exposed; they need not match Module.Name.
func NewRoot(modules map[string]*Module) (*Root, error) {
	r := &Root{modules: make(map[string]*Module, len(modules))}
	for name, m := range modules {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidModule)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: %q is nil", ErrInvalidModule, name)
		}
		r.modules[name] = m
	}
	return r, nil
}

// Module returns the module registered under name.
func (r *Root) Module(name string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Modules returns the registered module names, sorted.
func (r *Root) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns a nested snapshot: module name -> field name -> value.
func (r *Root) State() map[string]map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]map[string]any, len(r.modules))
	for name, m := range r.modules {
		out[name] = m.Snapshot()
	}
	return out
}

// Subscribe calls fn for every write to any field of any module.
// Fields registered after Subscribe are not observed.
func (r *Root) Subscribe(fn func(Change)) (cancel func()) {
	r.mu.RLock()
	cancels := make([]func(), 0, len(r.modules))
	for name, m := range r.modules {
		cancels = append(cancels, m.watch(func(f string, v any) {
			fn(Change{Module: name, Field: f, Value: v})
		}))
	}
	r.mu.RUnlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, c := range cancels {
				c()
			}
		})
	}
}
