// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/bulletstorm/internal/audio"
	"github.com/vovakirdan/bulletstorm/internal/core"
	"github.com/vovakirdan/bulletstorm/internal/games/blitz"
	"github.com/vovakirdan/bulletstorm/internal/storage"
)

// bannerSeconds is how long the "LEVEL N" banner takes to fade out.
const bannerSeconds = 1.5

// Options wires the optional collaborators of a window session.
type Options struct {
	Runtime  core.RuntimeConfig
	Board    *audio.Board
	Recorder *storage.Recorder
	Logger   *log.Logger
}

// App adapts the game to ebiten.Game.
type App struct {
	game     *blitz.Game
	renderer *Renderer
	board    *audio.Board
	recorder *storage.Recorder
	logger   *log.Logger
	tps      int
	state    core.GameState

	banner      *gween.Tween
	bannerText  string
	bannerAlpha float32
}

var _ ebiten.Game = (*App)(nil)

// NewApp resets game and prepares it for the window.
func NewApp(game *blitz.Game, opts Options) (*App, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return &App{
		game:     game,
		renderer: renderer,
		board:    opts.Board,
		recorder: opts.Recorder,
		logger:   logger,
		tps:      cfg.TickRate,
		state:    game.State(),
	}, nil
}

// Update steps the simulation once per tick.
func (a *App) Update() error {
	frame := readInput()
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := a.game.Step(frame)
	a.state = result.State
	a.handleEvents(result.Events)

	if a.banner != nil {
		alpha, done := a.banner.Update(1 / float32(a.tps))
		a.bannerAlpha = alpha
		if done {
			a.banner = nil
		}
	}
	return nil
}

func (a *App) handleEvents(events []core.Event) {
	if a.board != nil {
		a.board.Handle(events)
	}
	now := time.Now()
	for _, ev := range events {
		if ev.Kind == core.EventLevelStart {
			a.bannerText = fmt.Sprintf("LEVEL %d", ev.Level)
			a.banner = gween.New(1, 0, bannerSeconds, ease.InQuad)
			a.bannerAlpha = 1
		}
		if ev.Kind == core.EventDeath {
			a.logger.Info("death", "level", ev.Level, "score", ev.Value)
		}
		if a.recorder == nil {
			continue
		}
		if err := a.recorder.Observe(ev, now); err != nil {
			a.logger.Error("cannot record run", "err", err)
		}
	}
}

// Draw paints the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	a.renderer.Target(screen)
	a.game.Draw(a.renderer)
	if a.banner != nil {
		a.renderer.banner(a.bannerText, a.bannerAlpha)
	}
}

// Layout keeps the logical screen at the world size.
func (a *App) Layout(_, _ int) (int, int) {
	s := a.game.Config().Screen
	return s.Width, s.Height
}

// State returns the game state after the last tick.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens the window and plays until it is closed or the player quits.
func Run(game *blitz.Game, opts Options) (core.GameState, error) {
	app, err := NewApp(game, opts)
	if err != nil {
		return core.GameState{}, err
	}

	s := game.Config().Screen
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(app.tps)

	if err := ebiten.RunGame(app); err != nil {
		return app.State(), fmt.Errorf("window: %w", err)
	}
	return app.State(), nil
}
