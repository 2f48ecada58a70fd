package blitz

import (
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// Player is the avatar, together with its score and power-up timers.
type Player struct {
	Rect     core.Rect
	VelY     float64
	OnGround bool
	Jumps    int

	Score      int
	HighScore  int
	Level      int
	Multiplier float64
	ComboUntil int64

	RapidFire      bool
	RapidFireUntil int64
	Shield         bool
	ShieldUntil    int64
}

func newPlayer(w, h float64, bounds core.Rect) Player {
	p := Player{
		Rect:       core.NewRect(0, 0, w, h),
		Level:      1,
		Multiplier: 1,
	}
	p.recenter(bounds)
	return p
}

// Center returns the center of the player, the origin of every volley.
func (p *Player) Center() core.Vec2 {
	return p.Rect.Center()
}

// recenter places the player in the middle of the screen at rest.
// The jump count is left alone.
func (p *Player) recenter(bounds core.Rect) {
	p.Rect = p.Rect.WithCenter(bounds.Center())
	p.VelY = 0
}

func (p *Player) update(f *frame) {
	pc := f.cfg.Player

	p.VelY += f.cfg.Physics.Gravity
	p.Rect.Y += p.VelY

	p.OnGround = false
	for _, pl := range f.platforms {
		if !p.Rect.Intersects(pl.Rect) {
			continue
		}
		switch {
		case p.VelY > 0:
			p.Rect.Y = pl.Rect.Y - p.Rect.H
			p.VelY = 0
			p.Jumps = 0
			p.OnGround = true
		case p.VelY < 0:
			p.Rect.Y = pl.Rect.Bottom()
			p.VelY = 0
		}
	}

	if f.input.Has(core.ActionLeft) {
		p.Rect.X -= pc.Speed
	}
	if f.input.Has(core.ActionRight) {
		p.Rect.X += pc.Speed
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, f.bounds.W-p.Rect.W)

	if f.jump && (p.OnGround || p.Jumps < pc.MaxJumps) {
		p.VelY = pc.JumpImpulse
		p.Jumps = min(p.Jumps+1, pc.MaxJumps)
		p.OnGround = false
	}
}

// expireTimers drops power-ups and the combo whose deadline has passed.
func (p *Player) expireTimers(f *frame) {
	if p.RapidFire && f.now > p.RapidFireUntil {
		p.RapidFire = false
		f.emit(core.EventPowerUpExpired, 0, PowerUpRapidFire.String())
	}
	if p.Shield && f.now > p.ShieldUntil {
		p.Shield = false
		f.emit(core.EventPowerUpExpired, 0, PowerUpShield.String())
	}
	if f.now > p.ComboUntil {
		p.Multiplier = 1
	}
}

// addKill scores a kill at the current multiplier and extends the combo.
// It returns the points awarded.
func (p *Player) addKill(points int, now, comboWindow int64, step, maxMult float64) int {
	awarded := roundPoints(points, p.Multiplier)
	p.Score += awarded
	p.ComboUntil = now + comboWindow
	p.Multiplier = min(p.Multiplier+step, maxMult)
	return awarded
}

// die records the high score and resets the run.
func (p *Player) die() {
	p.HighScore = max(p.HighScore, p.Score)
	p.Score = 0
	p.Level = 1
	p.Multiplier = 1
}
