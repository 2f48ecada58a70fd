package blitz

import (
	"math"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// Bullet is a projectile flying on a fixed velocity chosen when fired.
type Bullet struct {
	ID   EntityID
	Rect core.Rect
	Vel  core.Vec2

	dead bool
}

func (b *Bullet) update(f *frame) {
	b.Rect = b.Rect.Translate(b.Vel)
	if b.Rect.Outside(f.bounds) {
		b.dead = true
	}
}

// nearestEnemy returns the live enemy whose center is closest to from, or
// nil when there is none. Ties keep the earliest enemy.
func nearestEnemy(from core.Vec2, enemies []*Enemy) *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if e.dead {
			continue
		}
		if d := from.Distance(e.Rect.Center()); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// aimHeading returns the unit heading from origin to the nearest enemy.
// With no enemy the heading is straight up; an enemy centered exactly on
// origin yields the zero heading.
func aimHeading(origin core.Vec2, enemies []*Enemy) core.Vec2 {
	target := nearestEnemy(origin, enemies)
	if target == nil {
		return core.Vec2{Y: -1}
	}
	dir, _ := target.Rect.Center().Sub(origin).Normalize()
	return dir
}

// volley returns the velocities of count bullets fanned spreadDeg apart
// around heading.
func volley(heading core.Vec2, count int, spreadDeg, speed float64) []core.Vec2 {
	vels := make([]core.Vec2, count)
	for i := range count {
		offset := (float64(i) - float64(count-1)/2) * spreadDeg
		vels[i] = heading.Rotate(core.Radians(offset)).Scale(speed)
	}
	return vels
}
