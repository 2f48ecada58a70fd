package blitz

import (
	"math"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// Behavior is the movement pattern an enemy is currently following.
type Behavior int

const (
	BehaviorChase  Behavior = iota // straight at the player
	BehaviorCircle                 // orbit the player
	BehaviorZigzag                 // chase with a horizontal wobble
	behaviorCount
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorChase:
		return "chase"
	case BehaviorCircle:
		return "circle"
	case BehaviorZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// Enemy is a hostile that hunts the player.
type Enemy struct {
	ID            EntityID
	Rect          core.Rect
	Speed         float64
	Behavior      Behavior
	BehaviorSince int64

	dead bool
}

func (e *Enemy) update(f *frame) {
	ec := f.cfg.Enemies
	if f.now-e.BehaviorSince > ec.BehaviorIntervalMs {
		e.Behavior = Behavior(f.rng.Intn(int(behaviorCount)))
		e.BehaviorSince = f.now
	}

	target := f.player.Center()
	switch e.Behavior {
	case BehaviorChase:
		e.chase(target)
	case BehaviorCircle:
		theta := float64(f.now) / ec.CirclePeriodMs
		e.Rect = e.Rect.WithCenter(target.Add(core.FromAngle(theta, ec.CircleRadius)))
	case BehaviorZigzag:
		e.chase(target)
		e.Rect.X += math.Sin(float64(f.now)/ec.ZigzagPeriodMs) * ec.ZigzagAmplitude
	}
}

// chase moves Speed pixels toward target. An enemy already centered on the
// target stays put.
func (e *Enemy) chase(target core.Vec2) {
	dir, ok := target.Sub(e.Rect.Center()).Normalize()
	if !ok {
		return
	}
	e.Rect = e.Rect.Translate(dir.Scale(e.Speed))
}
