package blitz

import (
	"math"
	"slices"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// roundPoints scales base points by the multiplier, rounded to the nearest point.
func roundPoints(points int, multiplier float64) int {
	return int(math.Round(float64(points) * multiplier))
}

// resolveCollisions runs the three collision passes in order:
// bullets against enemies, the player against power-ups, then the player
// against enemies.
func (g *Game) resolveCollisions() {
	g.resolveBulletHits()
	g.resolvePickups()
	g.resolveContact()
}

// resolveBulletHits destroys each live bullet together with the first live
// enemy it overlaps. Bullets that left the screen this frame hit nothing.
func (g *Game) resolveBulletHits() {
	sc := g.cfg.Scoring
	for _, b := range g.bullets {
		if b.dead {
			continue
		}
		for _, e := range g.enemies {
			if e.dead || !b.Rect.Intersects(e.Rect) {
				continue
			}
			b.dead = true
			e.dead = true
			points := g.player.addKill(sc.KillPoints, g.now, sc.ComboWindowMs, sc.MultiplierStep, sc.MaxMultiplier)
			g.emit(core.EventKill, points, "")
			break
		}
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b *Bullet) bool { return b.dead })
	g.enemies = slices.DeleteFunc(g.enemies, func(e *Enemy) bool { return e.dead })
}

// resolvePickups applies and removes every power-up the player touches.
func (g *Game) resolvePickups() {
	for _, pu := range g.powerups {
		if g.player.Rect.Intersects(pu.Rect) {
			g.applyPowerUp(pu.Kind)
			pu.taken = true
		}
	}
	g.powerups = slices.DeleteFunc(g.powerups, func(pu *PowerUp) bool { return pu.taken })
}

func (g *Game) applyPowerUp(kind PowerUpKind) {
	p := &g.player
	until := g.now + g.cfg.PowerUps.DurationMs

	switch kind {
	case PowerUpRapidFire:
		p.RapidFire = true
		p.RapidFireUntil = until
	case PowerUpShield:
		p.Shield = true
		p.ShieldUntil = until
	case PowerUpMultiplier:
		p.Multiplier = min(p.Multiplier*2, g.cfg.Scoring.MaxMultiplier)
		p.ComboUntil = max(p.ComboUntil, g.now+g.cfg.Scoring.ComboWindowMs)
	}
	g.emit(core.EventPickup, 0, kind.String())
}

// resolveContact kills the player on touching any enemy unless shielded.
func (g *Game) resolveContact() {
	if g.player.Shield {
		return
	}
	for _, e := range g.enemies {
		if g.player.Rect.Intersects(e.Rect) {
			g.killPlayer()
			return
		}
	}
}

func (g *Game) killPlayer() {
	lost := g.player.Score
	g.emit(core.EventDeath, lost, "")
	g.player.die()
	g.enemies = g.enemies[:0]
	g.newLevel()
}
