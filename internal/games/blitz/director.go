package blitz

import (
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// direct runs the end-of-frame spawning rules: maybe drop a power-up, then
// start the next wave once every enemy is gone.
func (g *Game) direct() {
	g.maybeSpawnPowerUp()
	if len(g.enemies) == 0 {
		g.newLevel()
	}
}

// maybeSpawnPowerUp rolls once per frame for a new pickup.
func (g *Game) maybeSpawnPowerUp() {
	pc := g.cfg.PowerUps
	if g.rng.Float64() >= pc.SpawnChance || len(g.powerups) >= pc.MaxActive {
		return
	}
	kind := PowerUpKind(g.rng.Intn(int(powerUpKindCount)))
	size := int(pc.Size)
	x := g.rng.RangeInt(0, g.cfg.Screen.Width-size)
	y := g.rng.RangeInt(0, g.cfg.Screen.Height-size)
	g.powerups = append(g.powerups, &PowerUp{
		ID:   g.newID(),
		Rect: core.NewRect(float64(x), float64(y), pc.Size, pc.Size),
		Kind: kind,
	})
}

// newLevel clears the field, advances the level and spawns its wave.
func (g *Game) newLevel() {
	g.bullets = g.bullets[:0]
	g.powerups = g.powerups[:0]
	g.enemies = g.enemies[:0]

	g.player.Level++
	count := g.scaling.EnemyCount(g.player.Level)
	speed := g.scaling.EnemySpeed(g.player.Level)
	for range count {
		g.enemies = append(g.enemies, g.spawnEnemy(speed))
	}

	g.player.recenter(g.bounds)
	g.levelStarts++
	g.emit(core.EventLevelStart, count, "")
}

// spawnEnemy places a new chaser just off a random screen edge.
func (g *Game) spawnEnemy(speed float64) *Enemy {
	ec := g.cfg.Enemies
	sw, sh := g.cfg.Screen.Width, g.cfg.Screen.Height
	w, h := int(ec.Width), int(ec.Height)

	var x, y int
	switch g.rng.Intn(4) {
	case 0: // top
		x, y = g.rng.RangeInt(0, sw-w), -h
	case 1: // right
		x, y = sw, g.rng.RangeInt(0, sh-h)
	case 2: // bottom
		x, y = g.rng.RangeInt(0, sw-w), sh
	default: // left
		x, y = -w, g.rng.RangeInt(0, sh-h)
	}

	return &Enemy{
		ID:            g.newID(),
		Rect:          core.NewRect(float64(x), float64(y), ec.Width, ec.Height),
		Speed:         speed,
		Behavior:      BehaviorChase,
		BehaviorSince: g.now,
	}
}
