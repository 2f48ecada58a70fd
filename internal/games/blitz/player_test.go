package blitz

import (
	"testing"

	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// testFrame builds a frame around p with the default layout.
func testFrame(cfg *config.BlitzConfig, p *Player, now int64, in core.InputFrame, jump bool) (*frame, *[]core.Event) {
	events := &[]core.Event{}
	f := &frame{
		now:       now,
		input:     in,
		jump:      jump,
		player:    p,
		platforms: buildPlatforms(cfg.Layout),
		bounds:    core.NewRect(0, 0, float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		cfg:       cfg,
		rng:       core.NewSimpleRNG(1),
		emit: func(kind core.EventKind, value int, label string) {
			*events = append(*events, core.Event{Kind: kind, Value: value, Label: label})
		},
	}
	return f, events
}

// groundedPlayer stands on the floor at the left, clear of the raised platforms.
func groundedPlayer(cfg *config.BlitzConfig) *Player {
	bounds := core.NewRect(0, 0, float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	p := newPlayer(cfg.Player.Width, cfg.Player.Height, bounds)
	p.Rect.X = 50
	p.Rect.Y = 500
	return &p
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	cfg := config.DefaultBlitzConfig()
	p := groundedPlayer(&cfg)
	p.Jumps = 2

	f, _ := testFrame(&cfg, p, 0, input(), false)
	p.update(f)

	if !p.OnGround {
		t.Error("player should be on the ground")
	}
	if p.Rect.Bottom() != 550 {
		t.Errorf("player bottom = %v, expected 550", p.Rect.Bottom())
	}
	if p.VelY != 0 || p.Jumps != 0 {
		t.Errorf("landing should zero VelY and Jumps, got %v / %d", p.VelY, p.Jumps)
	}
}

func TestPlayerHitsPlatformFromBelow(t *testing.T) {
	cfg := config.DefaultBlitzConfig()
	p := groundedPlayer(&cfg)
	// Just under the platform at (300, 450, 200, 20), moving up fast.
	p.Rect.X = 350
	p.Rect.Y = 475
	p.VelY = -12

	f, _ := testFrame(&cfg, p, 0, input(), false)
	p.update(f)

	if p.Rect.Y != 470 {
		t.Errorf("player top = %v, expected snapped to 470", p.Rect.Y)
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, expected 0", p.VelY)
	}
	if p.OnGround {
		t.Error("bumping a ceiling is not standing on ground")
	}
}

func TestJumpCountStaysInRange(t *testing.T) {
	cfg := config.DefaultBlitzConfig()
	p := groundedPlayer(&cfg)

	steps := []struct {
		jump      bool
		wantJumps int
		wantVelY  float64 // checked when non-zero
	}{
		{false, 0, 0},
		{true, 1, -12},
		{false, 1, 0},
		{true, 2, -12},
		{false, 2, 0},
		{true, 2, 0}, // third jump refused
	}

	for i, s := range steps {
		f, _ := testFrame(&cfg, p, int64(i*frameMs), input(), s.jump)
		p.update(f)
		if p.Jumps != s.wantJumps {
			t.Fatalf("step %d: Jumps = %d, expected %d", i, p.Jumps, s.wantJumps)
		}
		if s.wantVelY != 0 && p.VelY != s.wantVelY {
			t.Fatalf("step %d: VelY = %v, expected %v", i, p.VelY, s.wantVelY)
		}
	}
	if p.VelY == cfg.Player.JumpImpulse {
		t.Error("refused jump should not reset VelY")
	}

	for i := range 300 {
		f, _ := testFrame(&cfg, p, int64((i+10)*frameMs), input(), false)
		p.update(f)
		if p.Jumps < 0 || p.Jumps > cfg.Player.MaxJumps {
			t.Fatalf("Jumps = %d out of range", p.Jumps)
		}
		if p.OnGround {
			break
		}
	}
	if !p.OnGround || p.Jumps != 0 {
		t.Errorf("landing should reset jumps, OnGround=%v Jumps=%d", p.OnGround, p.Jumps)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	cfg := config.DefaultBlitzConfig()

	tests := []struct {
		name   string
		action core.Action
		wantX  float64
	}{
		{"left edge", core.ActionLeft, 0},
		{"right edge", core.ActionRight, 750},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := groundedPlayer(&cfg)
			for i := range 200 {
				f, _ := testFrame(&cfg, p, int64(i*frameMs), input(tc.action), false)
				p.update(f)
				if p.Rect.X < 0 || p.Rect.Right() > 800 {
					t.Fatalf("player left the screen: x=%v", p.Rect.X)
				}
			}
			if p.Rect.X != tc.wantX {
				t.Errorf("X = %v, expected %v", p.Rect.X, tc.wantX)
			}
		})
	}
}

func TestPlayerTimersExpire(t *testing.T) {
	cfg := config.DefaultBlitzConfig()
	p := groundedPlayer(&cfg)
	p.RapidFire, p.RapidFireUntil = true, 1000
	p.Shield, p.ShieldUntil = true, 2000
	p.Multiplier, p.ComboUntil = 2.5, 1500

	tests := []struct {
		now        int64
		rapid      bool
		shield     bool
		multiplier float64
		expired    int
	}{
		{1000, true, true, 2.5, 0},
		{1001, false, true, 2.5, 1},
		{1500, false, true, 2.5, 0},
		{1501, false, true, 1, 0},
		{2001, false, false, 1, 1},
	}

	for _, tc := range tests {
		f, events := testFrame(&cfg, p, tc.now, input(), false)
		p.expireTimers(f)
		if p.RapidFire != tc.rapid || p.Shield != tc.shield || p.Multiplier != tc.multiplier {
			t.Errorf("now=%d: rapid=%v shield=%v multiplier=%v, expected %v %v %v",
				tc.now, p.RapidFire, p.Shield, p.Multiplier, tc.rapid, tc.shield, tc.multiplier)
		}
		if n := countEvents(*events, core.EventPowerUpExpired); n != tc.expired {
			t.Errorf("now=%d: %d expiry events, expected %d", tc.now, n, tc.expired)
		}
	}
}

func TestAddKillMultiplierRange(t *testing.T) {
	cfg := config.DefaultBlitzConfig()
	sc := cfg.Scoring
	p := groundedPlayer(&cfg)

	wantPoints := []int{100, 150, 200, 250, 300, 350, 400, 400}
	wantMult := []float64{1.5, 2, 2.5, 3, 3.5, 4, 4, 4}
	total := 0
	for i := range wantPoints {
		now := int64(i * 100)
		got := p.addKill(sc.KillPoints, now, sc.ComboWindowMs, sc.MultiplierStep, sc.MaxMultiplier)
		total += got
		if got != wantPoints[i] {
			t.Errorf("kill %d: points = %d, expected %d", i, got, wantPoints[i])
		}
		if p.Multiplier != wantMult[i] {
			t.Errorf("kill %d: multiplier = %v, expected %v", i, p.Multiplier, wantMult[i])
		}
		if p.ComboUntil != now+sc.ComboWindowMs {
			t.Errorf("kill %d: ComboUntil = %d, expected %d", i, p.ComboUntil, now+sc.ComboWindowMs)
		}
	}
	if p.Score != total {
		t.Errorf("Score = %d, expected %d", p.Score, total)
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	g, clock := newTestGame(t, 11, noPowerUps)
	g.Step(input())

	// Let the player settle on the platform below the spawn point.
	for range 5 {
		clock.Advance(frameMs)
		g.Step(input())
	}
	if !g.player.OnGround {
		t.Fatal("player should have landed")
	}

	for range 8 {
		clock.Advance(frameMs)
		g.Step(input(core.ActionJump))
	}
	if g.player.Jumps != 1 {
		t.Fatalf("held jump gave %d jumps, expected 1", g.player.Jumps)
	}

	clock.Advance(frameMs)
	g.Step(input())
	clock.Advance(frameMs)
	g.Step(input(core.ActionJump))
	if g.player.Jumps != 2 {
		t.Errorf("second press gave %d jumps, expected 2", g.player.Jumps)
	}
}
