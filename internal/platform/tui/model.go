package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-swipe/internal/config"
	"github.com/vovakirdan/tui-swipe/internal/gesture"
	"github.com/vovakirdan/tui-swipe/internal/store"
)

// historySize is how many recent swipes the view keeps.
const historySize = 8

// pulseBuffer bounds how many direction writes can queue before the update
// loop reads them. Writes beyond it are dropped.
const pulseBuffer = 16

// Model is the Bubble Tea model hosting the swipe detector.
type Model struct {
	app      *store.App
	detector *gesture.Detector
	surface  *MouseSurface
	cfg      config.Config
	logger   *log.Logger
	keys     KeyMap
	help     help.Model

	pulses      chan gesture.Direction
	done        chan struct{}
	unsubscribe func()
	teardown    *sync.Once

	width  int
	height int

	current  gesture.Direction // Live value of the detector pulse
	last     gesture.Direction // Last completed swipe
	lit      bool              // Whether last is still highlighted
	seq      int               // Number of swipes seen
	history  []gesture.Direction
	quitting bool
}

// NewModel creates a model for app. The detector is created here and
// attached when the program starts.
func NewModel(app *store.App, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if app == nil {
		app = store.NewApp()
	}

	detector := gesture.NewDetector(
		gesture.WithResetDelay(cfg.Gesture.ResetDelay),
		gesture.WithCancelPending(cfg.Gesture.CancelPending),
		gesture.WithLogger(logger),
	)

	pulses := make(chan gesture.Direction, pulseBuffer)
	done := make(chan struct{})
	unsubscribe := detector.Subscribe(func(d gesture.Direction) {
		select {
		case pulses <- d:
		case <-done:
		default:
		}
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		app:         app,
		detector:    detector,
		surface:     NewMouseSurface(cfg.Mouse.RowScale),
		cfg:         cfg,
		logger:      logger,
		keys:        DefaultKeyMap(),
		help:        h,
		pulses:      pulses,
		done:        done,
		unsubscribe: unsubscribe,
		teardown:    new(sync.Once),
		width:       80,
		height:      24,
	}
}

// Init mounts the detector on the mouse surface and starts listening for
// direction pulses.
func (m Model) Init() tea.Cmd {
	m.detector.Attach(m.surface)
	return waitForDirection(m.pulses, m.done)
}

// unmount is the exact inverse of Init plus the forwarding set up in
// NewModel: both listeners are removed, any pending reset is stopped and
// pulse forwarding ends. Copies of a model share one teardown, so it is
// safe to call from the quit key, after the program exits and from a
// session watcher at the same time.
func (m Model) unmount() {
	m.teardown.Do(func() {
		m.detector.Detach(m.surface)
		m.unsubscribe()
		m.detector.Close()
		close(m.done)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.surface.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case DirectionMsg:
		return m.handleDirection(gesture.Direction(msg))

	case highlightDoneMsg:
		if msg.seq == m.seq {
			m.lit = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.detector.Attached() {
			m.detector.Detach(m.surface)
			m.logger.Info("detector detached")
		} else {
			m.detector.Attach(m.surface)
			m.logger.Info("detector attached")
		}
		return m, nil
	}

	if d := m.keys.SwipeFor(msg); d != gesture.None {
		m.surface.Swipe(d)
	}
	return m, nil
}

// handleDirection records a detector write and keeps listening.
func (m Model) handleDirection(d gesture.Direction) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.current = d
	wait := waitForDirection(m.pulses, m.done)
	if d == gesture.None {
		return m, wait
	}

	m.last = d
	m.lit = true
	m.seq++
	m.history = append(m.history, d)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}

	return m, tea.Batch(wait, highlightCmd(m.cfg.UI.Highlight, m.seq))
}

// Last returns the last completed swipe.
func (m Model) Last() gesture.Direction {
	return m.last
}

// Swipes returns how many swipes the model has seen.
func (m Model) Swipes() int {
	return m.seq
}

// Detector returns the mounted detector.
func (m Model) Detector() *gesture.Detector {
	return m.detector
}

// Surface returns the mouse surface the detector is mounted on.
func (m Model) Surface() *MouseSurface {
	return m.surface
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program with a new model.
func Run(app *store.App, cfg config.Config, logger *log.Logger) error {
	return runModel(NewModel(app, cfg, logger),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press/release become touch events
	)
}

// runModel runs model until the program exits for any reason (quit key,
// context cancellation, signal) and then unmounts it.
func runModel(model Model, opts ...tea.ProgramOption) error {
	defer model.unmount()

	_, err := tea.NewProgram(model, opts...).Run()
	return err
}
