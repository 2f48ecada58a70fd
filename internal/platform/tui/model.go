package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bulletstorm/internal/audio"
	"github.com/vovakirdan/bulletstorm/internal/core"
	"github.com/vovakirdan/bulletstorm/internal/games/blitz"
	"github.com/vovakirdan/bulletstorm/internal/storage"
)

// Options wires the optional collaborators of a terminal session.
type Options struct {
	Runtime  core.RuntimeConfig
	HoldMs   int64
	Clock    core.Clock        // time source for key holds; nil means wall time
	Board    *audio.Board      // nil plays nothing
	Recorder *storage.Recorder // nil records nothing
	Logger   *log.Logger       // nil discards
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a Bulletstorm Blitz session.
type Model struct {
	game     *blitz.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	holds    *HoldTracker
	clock    core.Clock
	board    *audio.Board
	recorder *storage.Recorder
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	state    core.GameState
	quitting bool
}

// NewModel creates a model and resets the game with opts.Runtime.
func NewModel(game *blitz.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	world := game.Config().Screen
	game.Reset(cfg)

	return Model{
		game:     game,
		screen:   screen,
		renderer: NewScreenRenderer(screen, world.Width, world.Height),
		holds:    NewHoldTracker(opts.HoldMs),
		clock:    clock,
		board:    opts.Board,
		recorder: opts.Recorder,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
		state:    game.State(),
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(rows int) int {
	return max(rows-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.holds.Press(action, m.clock.Millis())
	return m, nil
}

// handleTick advances the simulation one step and fans out its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.holds.Frame(m.clock.Millis()))
	m.state = result.State

	if m.board != nil {
		m.board.Handle(result.Events)
	}
	now := time.Now()
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventDeath, core.EventLevelStart:
			m.logger.Info(ev.Kind.String(), "level", ev.Level, "value", ev.Value)
		default:
			m.logger.Debug(ev.Kind.String(), "level", ev.Level, "value", ev.Value, "label", ev.Label)
		}
		if m.recorder == nil {
			continue
		}
		if err := m.recorder.Observe(ev, now); err != nil {
			m.logger.Error("cannot record run", "err", err)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text under
// ~/.bulletstorm/screenshots.
func (m *Model) saveScreenshot() {
	m.paint()

	dir := filepath.Join(os.Getenv("HOME"), ".bulletstorm", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blitz_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// paint redraws the game onto the cell screen.
func (m Model) paint() {
	m.screen.Clear()
	m.game.Draw(m.renderer)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.paint()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays game in the terminal until the player quits and returns the
// final game state.
func Run(game *blitz.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model.State(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
