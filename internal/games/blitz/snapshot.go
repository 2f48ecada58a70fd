package blitz

import "math"

// Snapshot is a flat copy of the simulation state for determinism checks.
// Floats are kept as raw bits so equal snapshots hash equally.
type Snapshot struct {
	Tick        uint64
	Now         int64
	Level       int
	Score       int
	HighScore   int
	Multiplier  uint64
	LevelStarts int

	// Player: X, Y, VelY bits then Jumps, RapidFire, Shield.
	PlayerData []uint64

	// Enemies are 4 values each: X, Y bits, Speed bits, Behavior.
	EnemyData []uint64
	// Bullets are 4 values each: X, Y, VX, VY bits.
	BulletData []uint64
	// Power-ups are 3 values each: X, Y bits, Kind.
	PowerUpData []uint64

	RNGState uint64
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Now:         g.now,
		Level:       p.Level,
		Score:       p.Score,
		HighScore:   p.HighScore,
		Multiplier:  math.Float64bits(p.Multiplier),
		LevelStarts: g.levelStarts,
		PlayerData: []uint64{
			math.Float64bits(p.Rect.X),
			math.Float64bits(p.Rect.Y),
			math.Float64bits(p.VelY),
			uint64(p.Jumps), //#nosec G115 -- jumps are never negative
			boolBits(p.RapidFire),
			boolBits(p.Shield),
		},
		RNGState: g.rng.State(),
	}

	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData,
			math.Float64bits(e.Rect.X),
			math.Float64bits(e.Rect.Y),
			math.Float64bits(e.Speed),
			uint64(e.Behavior), //#nosec G115 -- behavior is a small enum
		)
	}
	for _, b := range g.bullets {
		snap.BulletData = append(snap.BulletData,
			math.Float64bits(b.Rect.X),
			math.Float64bits(b.Rect.Y),
			math.Float64bits(b.Vel.X),
			math.Float64bits(b.Vel.Y),
		)
	}
	for _, pu := range g.powerups {
		snap.PowerUpData = append(snap.PowerUpData,
			math.Float64bits(pu.Rect.X),
			math.Float64bits(pu.Rect.Y),
			uint64(pu.Kind), //#nosec G115 -- kind is a small enum
		)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Now)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)   //#nosec G115 -- hash computation
	h = h*31 + snap.Multiplier
	h = h*31 + uint64(snap.LevelStarts) //#nosec G115 -- hash computation

	for _, data := range [][]uint64{snap.PlayerData, snap.EnemyData, snap.BulletData, snap.PowerUpData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}

	h = h*31 + snap.RNGState
	return h
}
