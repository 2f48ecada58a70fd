package blitz

import (
	"math"
	"testing"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

func TestFireWithoutEnemiesGoesUp(t *testing.T) {
	g, _ := newTestGame(t, 1, noPowerUps)
	g.fire()

	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	if v := g.bullets[0].Vel; v != (core.Vec2{X: 0, Y: -12}) {
		t.Errorf("Vel = %v, expected (0, -12)", v)
	}
	if c := g.bullets[0].Rect.Center(); c != g.player.Center() {
		t.Errorf("bullet should start at the player center, got %v", c)
	}
}

func TestFireTargetsNearestEnemy(t *testing.T) {
	g, _ := newTestGame(t, 1, noPowerUps)
	origin := g.player.Center()

	g.enemies = []*Enemy{
		enemyAt(origin.Add(core.Vec2{X: -300}), 3, BehaviorChase),
		enemyAt(origin.Add(core.Vec2{X: 200}), 3, BehaviorChase),
		enemyAt(origin.Add(core.Vec2{Y: 250}), 3, BehaviorChase),
	}
	g.fire()

	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	if v := g.bullets[0].Vel; v != (core.Vec2{X: 12, Y: 0}) {
		t.Errorf("Vel = %v, expected exactly (12, 0)", v)
	}
}

func TestNearestEnemyTieKeepsFirst(t *testing.T) {
	origin := core.Vec2{X: 400, Y: 300}
	a := enemyAt(origin.Add(core.Vec2{X: 100}), 3, BehaviorChase)
	b := enemyAt(origin.Add(core.Vec2{X: -100}), 3, BehaviorChase)
	dead := enemyAt(origin.Add(core.Vec2{X: 10}), 3, BehaviorChase)
	dead.dead = true

	if got := nearestEnemy(origin, []*Enemy{dead, a, b}); got != a {
		t.Errorf("nearestEnemy() should skip dead enemies and keep the first of a tie")
	}
	if got := nearestEnemy(origin, nil); got != nil {
		t.Errorf("nearestEnemy(nil) = %v, expected nil", got)
	}
}

func TestFireAtCoincidentEnemy(t *testing.T) {
	g, _ := newTestGame(t, 1, noPowerUps)
	g.enemies = []*Enemy{enemyAt(g.player.Center(), 3, BehaviorChase)}
	g.fire()

	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	if v := g.bullets[0].Vel; v != (core.Vec2{}) {
		t.Errorf("Vel = %v, expected zero for a target on the muzzle", v)
	}
}

func TestRapidFireVolley(t *testing.T) {
	g, _ := newTestGame(t, 1, noPowerUps)
	g.player.RapidFire = true
	g.player.RapidFireUntil = 10_000
	g.fire()

	if len(g.bullets) != 3 {
		t.Fatalf("bullets = %d, expected 3", len(g.bullets))
	}
	wantAngles := []float64{-90 - 15, -90, -90 + 15}
	for i, b := range g.bullets {
		if l := b.Vel.Len(); math.Abs(l-12) > 1e-9 {
			t.Errorf("bullet %d speed = %v, expected 12", i, l)
		}
		if a := b.Vel.Angle(); math.Abs(a-core.Radians(wantAngles[i])) > 1e-9 {
			t.Errorf("bullet %d angle = %v°, expected %v°", i, a*180/math.Pi, wantAngles[i])
		}
	}
	if g.bullets[1].Vel != (core.Vec2{X: 0, Y: -12}) {
		t.Errorf("middle bullet Vel = %v", g.bullets[1].Vel)
	}
}

func TestFireRateLimit(t *testing.T) {
	tests := []struct {
		name  string
		rapid bool
		times []int64
		want  []int // bullets after each attempt
	}{
		{"normal", false, []int64{0, 100, 250, 251, 400, 502}, []int{1, 1, 1, 2, 2, 3}},
		{"rapid", true, []int64{0, 125, 126, 200, 252}, []int{3, 3, 6, 6, 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, 1, noPowerUps)
			g.player.RapidFire = tc.rapid
			g.player.RapidFireUntil = 10_000
			for i, now := range tc.times {
				g.now = now
				g.fire()
				if len(g.bullets) != tc.want[i] {
					t.Errorf("t=%d: bullets = %d, expected %d", now, len(g.bullets), tc.want[i])
				}
			}
		})
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	g, _ := newTestGame(t, 1, noPowerUps)
	f, _ := testFrame(&g.cfg, &g.player, 0, input(), false)

	leaving := &Bullet{Rect: core.NewRect(100, -7, 8, 8), Vel: core.Vec2{Y: -12}}
	leaving.update(f)
	if !leaving.dead {
		t.Error("bullet fully above the screen should die")
	}

	edge := &Bullet{Rect: core.NewRect(795, 300, 8, 8), Vel: core.Vec2{X: 4}}
	edge.update(f)
	if edge.dead {
		t.Error("bullet still touching the screen should live")
	}
	edge.update(f)
	if !edge.dead {
		t.Error("bullet past the right edge should die")
	}
}
