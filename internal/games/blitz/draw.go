package blitz

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// HUD layout in world pixels.
const (
	hudX          = 10
	hudLineHeight = 40
	bannerInset   = 150
	shieldPadding = 5
	shieldWidth   = 2
	glyphWidth    = 8 // approximate HUD glyph advance, for centering
)

// Draw paints the current frame. The surface is expected to be cleared.
func (g *Game) Draw(r core.Renderer) {
	for _, p := range g.platforms {
		r.FillRect(p.Rect, core.ColorPlatform)
	}
	for _, pu := range g.powerups {
		r.FillRect(pu.Rect, pu.Kind.Color())
	}

	if g.player.Shield {
		radius := math.Max(g.player.Rect.W, g.player.Rect.H)/2 + shieldPadding
		r.StrokeCircle(g.player.Center(), radius, shieldWidth, core.ColorShield)
	}
	r.FillRect(g.player.Rect, core.ColorPlayer)

	for _, e := range g.enemies {
		r.FillRect(e.Rect, core.ColorEnemy)
	}
	for _, b := range g.bullets {
		r.FillRect(b.Rect, core.ColorBullet)
	}

	g.drawHUD(r)
}

func (g *Game) drawHUD(r core.Renderer) {
	lines := []string{
		fmt.Sprintf("Score: %d", g.player.Score),
		fmt.Sprintf("Level: %d", g.player.Level),
		fmt.Sprintf("High Score: %d", g.player.HighScore),
		fmt.Sprintf("Multiplier: %.1fx", g.player.Multiplier),
	}
	for i, line := range lines {
		r.Text(hudX, float64(hudX+i*hudLineHeight), line, core.ColorHUD)
	}

	bannerX := g.bounds.W - bannerInset
	if g.player.RapidFire {
		r.Text(bannerX, hudX, "Rapid Fire!", core.ColorRapidFire)
	}
	if g.player.Shield {
		r.Text(bannerX, hudX+hudLineHeight, "Shield!", core.ColorShield)
	}

	if g.paused {
		const msg = "PAUSED"
		c := g.bounds.Center()
		r.Text(c.X-float64(len(msg))*glyphWidth/2, c.Y, msg, core.ColorBrightYellow)
	}
}
