// Package gesture turns a touch-start/touch-end pair on a surface into a
// discrete swipe direction.
//
// The Detector exposes the result as an observable pulse: the classified
// direction is written as soon as the gesture ends and is cleared back to
// None by a one-shot reset on the next scheduler tick. Consumers that care
// about swipes react to the edge, not to a stored value.
package gesture

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-swipe/internal/observe"
)

// Option configures a Detector.
type Option func(*Detector)

// WithScheduler replaces the scheduler used for the reset pulse.
func WithScheduler(s Scheduler) Option {
	return func(d *Detector) {
		if s != nil {
			d.sched = s
		}
	}
}

// WithResetDelay sets how long a direction stays set before it is cleared.
// Zero (the default) clears it on the next tick.
func WithResetDelay(delay time.Duration) Option {
	return func(d *Detector) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithCancelPending controls whether a new gesture stops the previous,
// still pending reset before scheduling its own. Enabled by default.
func WithCancelPending(enabled bool) Option {
	return func(d *Detector) {
		d.cancelPending = enabled
	}
}

// WithLogger sets the logger for lifecycle and gesture events.
func WithLogger(l *log.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// Detector classifies swipes on one attached Surface at a time.
type Detector struct {
	// bindMu guards the attached surface and its listener registrations.
	bindMu   sync.Mutex
	surface  Surface
	removers []func()

	// mu guards gesture samples and the pending reset.
	mu       sync.Mutex
	start    TouchSample
	hasStart bool
	pending  Timer
	gen      uint64

	direction     *observe.Value[Direction]
	sched         Scheduler
	delay         time.Duration
	cancelPending bool
	logger        *log.Logger
}

// NewDetector creates a detector with direction None and nothing attached.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		direction:     observe.NewValue(None),
		sched:         SystemScheduler{},
		cancelPending: true,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Attach registers the start and end listeners on s.
//
// A nil surface is ignored. Attaching the surface that is already attached
// does nothing; attaching another one detaches the previous surface first.
// Surface implementations must be comparable (pointer types in practice).
func (d *Detector) Attach(s Surface) {
	if s == nil {
		d.logger.Warn("attach skipped: no surface")
		return
	}

	d.bindMu.Lock()
	defer d.bindMu.Unlock()

	if d.surface != nil {
		if d.surface == s {
			return
		}
		d.detachLocked()
	}

	d.surface = s
	d.removers = []func(){
		s.AddListener(TouchStart, d.onTouchStart),
		s.AddListener(TouchEnd, d.onTouchEnd),
	}
	d.logger.Debug("attached")
}

// Detach removes the listeners registered by Attach. Detaching a surface
// that is not the attached one, or detaching twice, has no effect.
func (d *Detector) Detach(s Surface) {
	if s == nil {
		return
	}

	d.bindMu.Lock()
	defer d.bindMu.Unlock()

	if d.surface == nil || d.surface != s {
		return
	}
	d.detachLocked()
}

func (d *Detector) detachLocked() {
	for _, remove := range d.removers {
		remove()
	}
	d.removers = nil
	d.surface = nil

	d.mu.Lock()
	d.hasStart = false
	d.mu.Unlock()

	d.logger.Debug("detached")
}

// Attached reports whether a surface is currently attached.
func (d *Detector) Attached() bool {
	d.bindMu.Lock()
	defer d.bindMu.Unlock()
	return d.surface != nil
}

// Close detaches from any surface and stops a pending reset. The direction
// is left at None.
func (d *Detector) Close() {
	d.bindMu.Lock()
	if d.surface != nil {
		d.detachLocked()
	}
	d.bindMu.Unlock()

	d.mu.Lock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
	d.mu.Unlock()

	if d.direction.Get() != None {
		d.direction.Set(None)
	}
}

// Direction returns the current direction.
func (d *Detector) Direction() Direction {
	return d.direction.Get()
}

// Subscribe registers fn to receive every direction write, including the
// reset to None.
func (d *Detector) Subscribe(fn func(Direction)) (cancel func()) {
	return d.direction.Subscribe(fn)
}

func (d *Detector) onTouchStart(ev TouchEvent) {
	s, ok := sampleOf(ev)

	d.mu.Lock()
	d.start = s
	d.hasStart = ok
	d.mu.Unlock()
}

func (d *Detector) onTouchEnd(ev TouchEvent) {
	end, ok := sampleOf(ev)

	d.mu.Lock()
	start, hasStart := d.start, d.hasStart
	d.hasStart = false
	d.mu.Unlock()

	if !ok || !hasStart {
		// Malformed gesture: nothing is written and no pulse is emitted.
		d.logger.Debug("gesture dropped", "start", hasStart, "end", ok)
		return
	}

	dir := Classify(start, end)
	d.logger.Debug("swipe", "direction", dir, "from", start, "to", end)

	d.direction.Set(dir)
	d.scheduleReset()
}

func (d *Detector) scheduleReset() {
	d.mu.Lock()
	if d.cancelPending && d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	t := d.sched.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.cancelPending && gen != d.gen {
			// A newer gesture owns the pulse.
			d.mu.Unlock()
			return
		}
		if gen == d.gen {
			d.pending = nil
		}
		d.mu.Unlock()

		d.direction.Set(None)
	})

	d.mu.Lock()
	if gen == d.gen {
		d.pending = t
	}
	d.mu.Unlock()
}
