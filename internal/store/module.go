// Package store provides a small hierarchical state container: named
// modules hold observable fields, and a Root aggregates modules so a host
// application can read and subscribe to all of them in one place.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-swipe/internal/observe"
)

// ErrDuplicateField is returned when a field name is registered twice.
var ErrDuplicateField = errors.New("store: field already registered")

// field is the type-erased view of a registered observable.
type field struct {
	get       func() any
	subscribe func(func(any)) func()
}

// Module is a named group of observable fields.
type Module struct {
	name string

	mu     sync.RWMutex
	fields map[string]field
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		name:   name,
		fields: make(map[string]field),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Register adds an observable field with the given initial value to m.
// It panics if name is already registered; TryRegister returns an error
// instead.
func Register[T any](m *Module, name string, initial T) *observe.Value[T] {
	v, err := TryRegister(m, name, initial)
	if err != nil {
		panic(err)
	}
	return v
}

// TryRegister is Register returning ErrDuplicateField instead of panicking.
func TryRegister[T any](m *Module, name string, initial T) (*observe.Value[T], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.fields[name]; exists {
		return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, m.name, name)
	}

	v := observe.NewValue(initial)
	m.fields[name] = field{
		get: func() any { return v.Get() },
		subscribe: func(fn func(any)) func() {
			return v.Subscribe(func(val T) { fn(val) })
		},
	}
	return v, nil
}

// Field returns the current value of a field.
func (m *Module) Field(name string) (any, bool) {
	m.mu.RLock()
	f, ok := m.fields[name]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return f.get(), true
}

// Names returns the registered field names, sorted.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the current value of every field.
func (m *Module) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]any, len(m.fields))
	for name, f := range m.fields {
		out[name] = f.get()
	}
	return out
}

// watch subscribes fn to every field currently registered on m.
func (m *Module) watch(fn func(field string, value any)) func() {
	m.mu.RLock()
	cancels := make([]func(), 0, len(m.fields))
	for name, f := range m.fields {
		cancels = append(cancels, f.subscribe(func(v any) { fn(name, v) }))
	}
	m.mu.RUnlock()

	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
