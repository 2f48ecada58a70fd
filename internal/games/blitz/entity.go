package blitz

import (
	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// EntityID identifies an enemy, bullet or power-up for the lifetime of a game.
type EntityID uint64

// Platform is a static, solid rectangle of the layout.
type Platform struct {
	Rect core.Rect
}

// buildPlatforms converts the configured layout into platforms.
func buildPlatforms(layout config.LayoutConfig) []Platform {
	platforms := make([]Platform, 0, len(layout.Platforms))
	for _, p := range layout.Platforms {
		platforms = append(platforms, Platform{Rect: core.NewRect(p.X, p.Y, p.Width, p.Height)})
	}
	return platforms
}

// updater is anything that advances one frame.
type updater interface {
	update(f *frame)
}

var (
	_ updater = (*Player)(nil)
	_ updater = (*Enemy)(nil)
	_ updater = (*Bullet)(nil)
)

// frame is the read-mostly context handed to every updater during one tick.
// player is a view for enemies to target; only the player's own update
// writes through it.
type frame struct {
	now       int64
	input     core.InputFrame
	jump      bool // jump became held this frame
	player    *Player
	platforms []Platform
	bounds    core.Rect
	cfg       *config.BlitzConfig
	rng       *core.SimpleRNG
	emit      func(kind core.EventKind, value int, label string)
}
