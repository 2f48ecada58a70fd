package blitz

import (
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// fleeRadius is how close an enemy may get before the autopilot runs.
const fleeRadius = 150

// Autopilot plays the game unattended: it keeps the trigger held, runs from
// enemies that get close and otherwise wanders. Its choices come from its
// own seeded RNG, so a run is reproducible.
type Autopilot struct {
	rng   *core.SimpleRNG
	dir   core.Action
	hold  int
	frame int
}

// NewAutopilot creates an autopilot with its own seed.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: core.NewSimpleRNG(seed)}
}

// Next returns the input for the coming tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	a.frame++
	in := core.NewInputFrame()
	in.Set(core.ActionFire)

	me := g.player.Center()
	if e := nearestEnemy(me, g.enemies); e != nil && me.Distance(e.Rect.Center()) < fleeRadius {
		if e.Rect.Center().X < me.X {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionLeft)
		}
		// Jump is edge-triggered, so alternate to keep hopping.
		if a.frame%20 < 10 {
			in.Set(core.ActionJump)
		}
		return in
	}

	if a.hold <= 0 {
		a.dir = []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight}[a.rng.Intn(3)]
		a.hold = 20 + a.rng.Intn(40)
	}
	a.hold--
	if a.dir != core.ActionNone {
		in.Set(a.dir)
	}
	if a.rng.Intn(90) == 0 {
		in.Set(core.ActionJump)
	}
	return in
}
