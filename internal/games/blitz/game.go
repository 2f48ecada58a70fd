// Package blitz implements Bulletstorm Blitz: a single-screen platform
// shooter where the player fends off endless waves of enemies with
// auto-aimed fire, power-ups and a combo multiplier.
//
// The package is pure simulation. Front-ends feed it one core.InputFrame per
// tick, draw it through core.Renderer and react to the returned events.
package blitz

import (
	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// Title is the display name of the game.
const Title = "Bulletstorm Blitz"

// Game owns the whole simulation state.
type Game struct {
	cfg     config.BlitzConfig
	scaling *config.LevelScaling
	runtime core.RuntimeConfig
	clock   core.Clock
	rng     *core.SimpleRNG

	bounds    core.Rect
	platforms []Platform
	player    Player
	enemies   []*Enemy
	bullets   []*Bullet
	powerups  []*PowerUp

	nextID      EntityID
	tickCount   int
	now         int64 // game time of the current tick, pauses excluded
	levelStarts int

	lastShotAt int64
	hasShot    bool
	jumpHeld   bool

	paused      bool
	pauseHeld   bool
	pausedAt    int64 // clock time when the current pause began
	pausedTotal int64

	updaters []updater
	events   []core.Event
}

// New creates a game with the given tuning and time source.
// A nil clock means wall time. Call Reset before the first Step.
func New(cfg config.BlitzConfig, clock core.Clock) *Game {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	return &Game{
		cfg:     cfg,
		scaling: config.NewLevelScaling(cfg.Enemies),
		clock:   clock,
	}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.BlitzConfig {
	return g.cfg
}

// Reset starts a fresh game: level 1, no enemies, player centered.
// The first Step clears the empty wave and spawns level 2.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewSimpleRNG(runtime.Seed)

	g.bounds = core.NewRect(0, 0, float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height))
	g.platforms = buildPlatforms(g.cfg.Layout)
	g.player = newPlayer(g.cfg.Player.Width, g.cfg.Player.Height, g.bounds)

	g.enemies = make([]*Enemy, 0, g.cfg.Enemies.MaxCount)
	g.bullets = make([]*Bullet, 0, 32)
	g.powerups = make([]*PowerUp, 0, g.cfg.PowerUps.MaxActive)

	g.nextID = 0
	g.tickCount = 0
	g.levelStarts = 0
	g.hasShot = false
	g.lastShotAt = 0
	g.jumpHeld = false

	g.paused = false
	g.pauseHeld = false
	g.pausedTotal = 0
	g.now = g.clock.Millis()

	g.events = g.events[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	wall := g.clock.Millis()

	pause := in.Has(core.ActionPause)
	if pause && !g.pauseHeld {
		g.setPaused(!g.paused, wall)
	}
	g.pauseHeld = pause
	if g.paused {
		return g.result()
	}

	g.now = wall - g.pausedTotal
	g.tickCount++

	jump := in.Has(core.ActionJump)
	f := &frame{
		now:       g.now,
		input:     in,
		jump:      jump && !g.jumpHeld,
		player:    &g.player,
		platforms: g.platforms,
		bounds:    g.bounds,
		cfg:       &g.cfg,
		rng:       g.rng,
		emit:      g.emit,
	}
	g.jumpHeld = jump

	// Power-ups that ran out must not shape this frame's volley.
	g.player.expireTimers(f)
	if in.Has(core.ActionFire) {
		g.fire()
	}

	g.updaters = append(g.updaters[:0], &g.player)
	for _, e := range g.enemies {
		g.updaters = append(g.updaters, e)
	}
	for _, b := range g.bullets {
		g.updaters = append(g.updaters, b)
	}
	for _, u := range g.updaters {
		u.update(f)
	}
	clear(g.updaters)

	g.resolveCollisions()
	g.direct()

	return g.result()
}

// fire launches a volley at the nearest enemy if the fire delay has passed.
func (g *Game) fire() {
	bc := g.cfg.Bullets
	delay := bc.ShotDelayMs
	count, spread := 1, 0.0
	if g.player.RapidFire {
		delay /= 2
		count, spread = bc.RapidFireCount, bc.SpreadDegrees
	}
	if g.hasShot && g.now-g.lastShotAt <= delay {
		return
	}
	g.hasShot = true
	g.lastShotAt = g.now

	origin := g.player.Center()
	heading := aimHeading(origin, g.enemies)
	for _, vel := range volley(heading, count, spread, bc.Speed) {
		g.bullets = append(g.bullets, &Bullet{
			ID:   g.newID(),
			Rect: core.NewRect(0, 0, bc.Width, bc.Height).WithCenter(origin),
			Vel:  vel,
		})
	}
	g.emit(core.EventShot, count, "")
}

func (g *Game) setPaused(paused bool, wall int64) {
	if paused {
		g.pausedAt = wall
	} else {
		g.pausedTotal += wall - g.pausedAt
	}
	g.paused = paused
	value := 0
	if paused {
		value = 1
	}
	g.emit(core.EventPause, value, "")
}

func (g *Game) newID() EntityID {
	g.nextID++
	return g.nextID
}

func (g *Game) emit(kind core.EventKind, value int, label string) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Value: value,
		Level: g.player.Level,
		Label: label,
	})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.player.Score,
		HighScore:  g.player.HighScore,
		Level:      g.player.Level,
		Multiplier: g.player.Multiplier,
		Paused:     g.paused,
		Tick:       g.tickCount,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Bullets returns the live bullets. The slice must not be modified.
func (g *Game) Bullets() []*Bullet {
	return g.bullets
}

// PowerUps returns the power-ups on the field. The slice must not be modified.
func (g *Game) PowerUps() []*PowerUp {
	return g.powerups
}

// Platforms returns the static layout.
func (g *Game) Platforms() []Platform {
	return g.platforms
}

// LevelStarts returns how many waves have been spawned since Reset.
func (g *Game) LevelStarts() int {
	return g.levelStarts
}

// Now returns the game time of the last tick in milliseconds.
func (g *Game) Now() int64 {
	return g.now
}
