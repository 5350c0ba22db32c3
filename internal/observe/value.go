// Package observe provides a small observable value used to expose state to
// any number of readers. Writes notify subscribers synchronously.
package observe

import "sync"

// Value holds a single observable value of type T.
// It is safe for concurrent use.
type Value[T any] struct {
	mu     sync.RWMutex
	v      T
	subs   map[int]func(T)
	order  []int
	nextID int
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		v:    initial,
		subs: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.v
}

// Set stores v and notifies subscribers.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.v = v
	subs := o.snapshotLocked()
	o.mu.Unlock()

	notify(subs, v)
}

// Update applies fn to the current value under the lock, stores the result
// and notifies subscribers.
func (o *Value[T]) Update(fn func(T) T) {
	o.mu.Lock()
	o.v = fn(o.v)
	v := o.v
	subs := o.snapshotLocked()
	o.mu.Unlock()

	notify(subs, v)
}

// Subscribe registers fn to be called after every write.
// The returned cancel func may be called more than once.
func (o *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.order = append(o.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.subs, id)
			for i, sid := range o.order {
				if sid == id {
					o.order = append(o.order[:i], o.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Subscribers returns the number of active subscribers.
func (o *Value[T]) Subscribers() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.subs)
}

// snapshotLocked copies the subscriber list so callbacks run outside the lock.
func (o *Value[T]) snapshotLocked() []func(T) {
	subs := make([]func(T), 0, len(o.order))
	for _, id := range o.order {
		subs = append(subs, o.subs[id])
	}
	return subs
}

func notify[T any](subs []func(T), v T) {
	for _, fn := range subs {
		fn(v)
	}
}
