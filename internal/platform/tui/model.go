package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-d20/internal/core"
	"github.com/vovakirdan/tui-d20/internal/dice"
	"github.com/vovakirdan/tui-d20/internal/face"
	"github.com/vovakirdan/tui-d20/internal/storage"
	"github.com/vovakirdan/tui-d20/internal/wheel"
)

// Options configures a roll screen.
type Options struct {
	Runtime    core.RuntimeConfig
	Period     time.Duration
	Wheel      wheel.Options
	CellAspect float64
	Strings    face.Strings
	Images     *face.ImageSet    // nil selects the built-in faces
	Source     dice.Source       // nil selects the default random source
	Recorder   *storage.Recorder // nil disables history
	Clock      func() time.Time  // nil uses time.Now
}

// DefaultOptions returns options with built-in defaults.
func DefaultOptions() Options {
	return Options{
		Runtime:    core.DefaultConfig(),
		Period:     wheel.DefaultPeriod,
		Wheel:      wheel.DefaultOptions(),
		CellAspect: wheel.DefaultCellAspect,
		Strings:    face.DefaultStrings(),
	}
}

// Model is the Bubble Tea model of the roll screen.
type Model struct {
	config   core.RuntimeConfig
	wheel    wheel.Options
	state    *dice.State
	renderer *face.Renderer
	anim     *wheel.Animator
	screen   *core.Screen
	canvas   *wheel.CellCanvas
	keys     KeyMap
	help     help.Model
	clock    func() time.Time
	unsub    func()
	quitting bool
}

// NewModel creates a roll screen showing the initial die value.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	state := dice.New(opts.Source)

	m := Model{
		config:   cfg,
		wheel:    opts.Wheel,
		state:    state,
		renderer: face.NewRenderer(opts.Strings, opts.Images),
		anim:     wheel.NewAnimator(opts.Period),
		screen:   screen,
		canvas:   wheel.NewCellCanvas(screen, opts.CellAspect),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		clock:    clock,
		unsub:    func() {},
	}
	m.help.Width = cfg.ScreenW

	if opts.Recorder != nil {
		m.unsub = opts.Recorder.Attach(state)
	}
	return m
}

// Init starts the wheel animation.
func (m Model) Init() tea.Cmd {
	gen := m.anim.Start(m.clock())
	return frameCmd(m.config.FrameInterval(), gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		if m.tooSmall() {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if m.layout().button.Contains(msg.X, msg.Y) {
				return m.handleAction(core.ActionRoll)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.anim.Stop()
		return m, nil

	case tea.FocusMsg:
		if m.quitting || m.anim.Running() {
			return m, nil
		}
		gen := m.anim.Start(m.clock())
		return m, frameCmd(m.config.FrameInterval(), gen)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleAction applies a screen action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		m.anim.Stop()
		m.unsub()
		return m, tea.Quit
	case core.ActionRoll:
		m.state.Roll()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleFrame advances the wheel and schedules the next frame.
// Frames from a stopped or restarted cycle are dropped.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.anim.Accepts(msg.Gen) {
		return m, nil
	}
	m.anim.Advance(msg.Time)
	return m, frameCmd(m.config.FrameInterval(), msg.Gen)
}

// Value returns the die value currently shown.
func (m Model) Value() int {
	return m.state.Value()
}

// Display returns what the screen shows for the current value.
func (m Model) Display() face.Display {
	return m.renderer.Render(m.state.Value())
}

// Angle returns the wheel rotation in degrees.
func (m Model) Angle() float64 {
	return m.anim.Angle()
}

// Animating reports whether the wheel frame loop is active.
func (m Model) Animating() bool {
	return m.anim.Running()
}

// Run starts the Bubble Tea program with a new roll screen.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the roll button
		tea.WithReportFocus(),     // Pause the wheel while unfocused
	)

	_, err := p.Run()
	return err
}
