package gesture

import "sync"

// EventKind identifies a touch lifecycle event.
type EventKind int

const (
	TouchStart EventKind = iota
	TouchEnd
)

// String returns the DOM-style event name.
func (k EventKind) String() string {
	switch k {
	case TouchStart:
		return "touchstart"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// TouchPoint is a single contact point reported with an event.
type TouchPoint struct {
	ID      int
	ScreenX float64
	ScreenY float64
}

// TouchEvent is delivered to listeners registered on a Surface.
type TouchEvent struct {
	Kind           EventKind
	ChangedTouches []TouchPoint
}

// Handler receives touch events.
type Handler func(TouchEvent)

// Surface is anything that can emit touch-start and touch-end events.
type Surface interface {
	// AddListener registers h for events of the given kind.
	// The returned func removes exactly that registration.
	AddListener(kind EventKind, h Handler) (remove func())
}

// EventTarget is an in-process Surface. Hosts translate their native input
// into TouchEvents and call Dispatch.
type EventTarget struct {
	mu        sync.Mutex
	listeners map[EventKind]map[int]Handler
	order     map[EventKind][]int
	nextID    int
}

// NewEventTarget creates an EventTarget with no listeners.
func NewEventTarget() *EventTarget {
	return &EventTarget{
		listeners: make(map[EventKind]map[int]Handler),
		order:     make(map[EventKind][]int),
	}
}

// AddListener implements Surface.
func (t *EventTarget) AddListener(kind EventKind, h Handler) (remove func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.listeners[kind] == nil {
		t.listeners[kind] = make(map[int]Handler)
	}
	id := t.nextID
	t.nextID++
	t.listeners[kind][id] = h
	t.order[kind] = append(t.order[kind], id)

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if _, ok := t.listeners[kind][id]; !ok {
			return
		}
		delete(t.listeners[kind], id)
		ids := t.order[kind]
		for i, lid := range ids {
			if lid == id {
				t.order[kind] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers ev to every listener registered for ev.Kind, in
// registration order. Listeners run outside the target's lock.
func (t *EventTarget) Dispatch(ev TouchEvent) {
	t.mu.Lock()
	handlers := make([]Handler, 0, len(t.order[ev.Kind]))
	for _, id := range t.order[ev.Kind] {
		handlers = append(handlers, t.listeners[ev.Kind][id])
	}
	t.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// ListenerCount returns how many listeners are registered for kind.
func (t *EventTarget) ListenerCount(kind EventKind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[kind])
}

// Touch is a convenience for building a single-contact event.
func Touch(kind EventKind, x, y float64) TouchEvent {
	return TouchEvent{
		Kind:           kind,
		ChangedTouches: []TouchPoint{{ScreenX: x, ScreenY: y}},
	}
}
