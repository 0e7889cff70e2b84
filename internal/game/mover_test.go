package game

import (
	"math"
	"testing"
	"time"
)

func TestMovePlayerDiagonalFactor(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	x, y := s.player.X, s.player.Y

	s.movePlayer(Keys{Up: true, Right: true})

	want := 5 * 0.7071
	if math.Abs(s.player.X-x-want) > 1e-9 || math.Abs(y-s.player.Y-want) > 1e-9 {
		t.Errorf("Expected diagonal step %v, moved (%v,%v)", want, s.player.X-x, y-s.player.Y)
	}

	x = s.player.X
	s.movePlayer(Keys{Left: true})
	if math.Abs(x-s.player.X-5) > 1e-9 {
		t.Errorf("Expected straight step 5, moved %v", x-s.player.X)
	}
}

func TestMovePlayerOpposingKeysCancel(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	x, y := s.player.X, s.player.Y

	s.movePlayer(Keys{Left: true, Right: true, Up: true, Down: true})

	if s.player.X != x || s.player.Y != y {
		t.Errorf("Expected no movement, got (%v,%v)", s.player.X, s.player.Y)
	}
}

func TestMovePlayerClamped(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.player.X, s.player.Y = 2, 2

	s.movePlayer(Keys{Up: true, Left: true})
	if s.player.X != 0 || s.player.Y != 0 {
		t.Errorf("Expected clamp to (0,0), got (%v,%v)", s.player.X, s.player.Y)
	}

	s.player.X, s.player.Y = s.tuning.Width, s.tuning.Height
	s.movePlayer(Keys{Down: true, Right: true})
	if s.player.X != s.tuning.Width-s.player.W || s.player.Y != s.tuning.Height-s.player.H {
		t.Errorf("Expected clamp to bottom right, got (%v,%v)", s.player.X, s.player.Y)
	}
}

func TestMovementScalesWithTickRate(t *testing.T) {
	tuning := quietTuning()
	tuning.TickRate = 120
	s := newTestSession(t, tuning, nil)
	x := s.player.X

	s.movePlayer(Keys{Right: true})

	if math.Abs(s.player.X-x-2.5) > 1e-9 {
		t.Errorf("Expected half a reference step at 120Hz, moved %v", s.player.X-x)
	}
}

func TestBulletsRemovedPastTop(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.bullets = []Bullet{
		{X: 10, Y: -3, W: 4, H: 12, Speed: 10}, // crosses -12
		{X: 10, Y: 20, W: 4, H: 12, Speed: 10},
		{X: 10, Y: -2, W: 4, H: 12, Speed: 10}, // exactly on the line
	}

	s.moveBullets()

	if len(s.bullets) != 2 || s.bullets[0].Y != 10 || s.bullets[1].Y != -12 {
		t.Errorf("Expected bullets at y=10 and y=-12, got %+v", s.bullets)
	}

	s.moveBullets()
	if len(s.bullets) != 1 {
		t.Errorf("Expected the crossing bullet gone next tick, got %+v", s.bullets)
	}
}

func TestEnemyExitCostsLife(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.enemies = []Enemy{
		{X: 10, Y: s.tuning.Height - 0.5, W: 30, H: 30, Speed: 1},
		{X: 50, Y: 100, W: 30, H: 30, Speed: 1},
	}

	s.moveEnemies()

	if len(s.enemies) != 1 {
		t.Errorf("Expected exiting enemy removed, %d left", len(s.enemies))
	}
	if s.player.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", s.player.Lives)
	}
	if cues := s.DrainEvents(); len(cues) != 1 || cues[0] != CueLifeLost {
		t.Errorf("Expected lifeLost cue, got %v", cues)
	}
}

func TestPowerupsRemovedPastBottom(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.powerups = []Powerup{
		{X: 10, Y: s.tuning.Height - 1, W: 30, H: 30, Speed: 2},
		{X: 10, Y: 300, W: 30, H: 30},
	}

	s.movePowerups()

	if len(s.powerups) != 1 || s.powerups[0].Y != 300 {
		t.Errorf("Expected only the hovering powerup left, got %+v", s.powerups)
	}
	if s.player.Lives != 3 {
		t.Error("Lost powerups should not cost lives")
	}
}

func TestExplosionsFade(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.explosions = []Explosion{newExplosion(100, 100, "#fff", 20, 2)}

	s.updateExplosions()
	if got := s.explosions[0]; got.Radius != 2 || math.Abs(got.Opacity-0.98) > 1e-9 {
		t.Errorf("Expected radius 2 opacity 0.98, got %+v", got)
	}

	for range 60 {
		s.updateExplosions()
	}
	if len(s.explosions) != 0 {
		t.Errorf("Expected faded explosion removed, got %+v", s.explosions)
	}
}

func TestShotDelayTiers(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)

	if got := s.shotDelay(false); got != 200*time.Millisecond {
		t.Errorf("Expected base 200ms, got %v", got)
	}
	if got := s.shotDelay(true); got != 100*time.Millisecond {
		t.Errorf("Expected boost 100ms, got %v", got)
	}
	s.effects.Add(KindRapidFire, s.clock, time.Second)
	if got := s.shotDelay(true); got != 50*time.Millisecond {
		t.Errorf("Expected rapid 50ms, got %v", got)
	}
}

func TestAutoFireRespectsCooldown(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)

	shots := 0
	for range 60 {
		s.Tick(Keys{Fire: true})
		for _, c := range s.DrainEvents() {
			if c == CueShoot {
				shots++
			}
		}
	}
	// One second of held fire at a 200ms delay: a shot on the first tick,
	// then one every 13 ticks.
	if shots != 5 {
		t.Errorf("Expected 5 shots in one second, got %d", shots)
	}
}

func TestDoubleShot(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.effects.Add(KindDoubleShot, s.clock, time.Second)

	s.Shoot()

	if len(s.bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(s.bullets))
	}
	center := s.player.X + s.player.W/2 - s.bullets[0].W/2
	if s.bullets[0].X != center || s.bullets[1].X != center-10 || s.bullets[2].X != center+10 {
		t.Errorf("Expected bullets at %v and ±10, got %v %v %v", center, s.bullets[0].X, s.bullets[1].X, s.bullets[2].X)
	}
	if s.bullets[0].Damage != 10 || s.bullets[0].Speed != 10 {
		t.Errorf("Expected weapon stats on bullets, got %+v", s.bullets[0])
	}
}

func TestShootOnlyWhilePlaying(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.Pause()

	if s.Shoot() {
		t.Error("Shoot should fail while paused")
	}
	if len(s.bullets) != 0 {
		t.Error("Expected no bullets while paused")
	}
}
