package game

import (
	"testing"
	"time"
)

func TestBulletDefeatsEnemy(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.enemies = []Enemy{{X: 100, Y: 100, W: 30, H: 30, Health: 10, MaxHealth: 10, ScoreValue: 100, Color: "#ff5555"}}
	s.bullets = []Bullet{{X: 110, Y: 110, W: 4, H: 12, Damage: 10}}

	s.checkCollisions()

	if len(s.enemies) != 0 {
		t.Errorf("Expected enemy removed, %d left", len(s.enemies))
	}
	if len(s.bullets) != 0 {
		t.Errorf("Expected bullet consumed, %d left", len(s.bullets))
	}
	if s.score != 100 {
		t.Errorf("Expected score 100, got %d", s.score)
	}
	if s.kills != 1 {
		t.Errorf("Expected 1 kill, got %d", s.kills)
	}
	if len(s.explosions) != 2 {
		t.Errorf("Expected hit and kill explosions, got %d", len(s.explosions))
	}
}

func TestBulletWoundsEnemy(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.enemies = []Enemy{{X: 100, Y: 100, W: 30, H: 30, Health: 25, MaxHealth: 25, ScoreValue: 100}}
	s.bullets = []Bullet{{X: 110, Y: 110, W: 4, H: 12, Damage: 10}}

	s.checkCollisions()

	if len(s.enemies) != 1 || s.enemies[0].Health != 15 {
		t.Errorf("Expected enemy at 15 health, got %+v", s.enemies)
	}
	if s.score != 0 || s.kills != 0 {
		t.Errorf("Expected no score for a wound, got %d/%d", s.score, s.kills)
	}
	if cues := s.DrainEvents(); len(cues) != 1 || cues[0] != CueHit {
		t.Errorf("Expected a single hit cue, got %v", cues)
	}
}

func TestBulletDoesNotPierce(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.enemies = []Enemy{
		{X: 100, Y: 100, W: 30, H: 30, Health: 10, MaxHealth: 10, ScoreValue: 100},
		{X: 100, Y: 100, W: 30, H: 30, Health: 10, MaxHealth: 10, ScoreValue: 100},
	}
	s.bullets = []Bullet{{X: 110, Y: 110, W: 4, H: 12, Damage: 10}}

	s.checkCollisions()

	if len(s.enemies) != 1 {
		t.Errorf("Expected one bullet to defeat one enemy, %d left", len(s.enemies))
	}
}

func TestScoreBoostMultipliesKills(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.effects.Add(KindScoreBoost, s.clock, time.Second)
	s.enemies = []Enemy{{X: 100, Y: 100, W: 30, H: 30, Health: 10, MaxHealth: 10, ScoreValue: 300}}
	s.bullets = []Bullet{{X: 110, Y: 110, W: 4, H: 12, Damage: 10}}

	s.checkCollisions()

	if s.score != 600 {
		t.Errorf("Expected boosted score 600, got %d", s.score)
	}
}

func TestPlayerEnemyImpact(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	p := s.player
	s.enemies = []Enemy{{X: p.X, Y: p.Y, W: 30, H: 30, Health: 10}}

	s.checkCollisions()

	if len(s.enemies) != 0 {
		t.Error("Expected rammed enemy removed")
	}
	if s.player.Health != p.MaxHealth-20 {
		t.Errorf("Expected health %d, got %d", p.MaxHealth-20, s.player.Health)
	}
}

func TestShieldBlocksImpact(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.effects.Add(KindShield, s.clock, time.Second)
	p := s.player
	s.enemies = []Enemy{{X: p.X, Y: p.Y, W: 30, H: 30, Health: 10}}

	for range 10 {
		s.checkCollisions()
	}

	if s.player.Health != p.MaxHealth {
		t.Errorf("Expected health untouched under shield, got %d", s.player.Health)
	}
}

func TestImpactCostsLifeAtZeroHealth(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.player.Health = 20
	p := s.player
	s.enemies = []Enemy{{X: p.X, Y: p.Y, W: 30, H: 30, Health: 10}}

	s.checkCollisions()

	if s.player.Health != s.player.MaxHealth {
		t.Errorf("Expected health refilled, got %d", s.player.Health)
	}
	if s.player.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", s.player.Lives)
	}
	if s.State() != StatePlaying {
		t.Errorf("Expected still playing, got %v", s.State())
	}
}

func TestImpactOnLastLifeEndsGame(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.player.Health = 10
	s.player.Lives = 1
	p := s.player
	s.enemies = []Enemy{
		{X: p.X, Y: p.Y, W: 30, H: 30, Health: 10},
		{X: p.X, Y: p.Y, W: 30, H: 30, Health: 10},
	}
	s.powerups = []Powerup{{X: p.X, Y: p.Y, W: 30, H: 30, Kind: KindHealth, Value: 30}}

	s.checkCollisions()

	if s.State() != StateGameOver {
		t.Fatalf("Expected game over, got %v", s.State())
	}
	if s.player.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", s.player.Lives)
	}
	if len(s.enemies) != 1 {
		t.Errorf("Expected resolution to stop after game over, %d enemies left", len(s.enemies))
	}
	if len(s.powerups) != 1 {
		t.Error("Expected powerup untouched after game over")
	}
}

func TestCollectPowerups(t *testing.T) {
	tests := []struct {
		kind     Kind
		duration time.Duration
		cue      Cue
	}{
		{KindRapidFire, 10 * time.Second, CuePowerup},
		{KindShield, 15 * time.Second, CueShield},
		{KindDoubleShot, 8 * time.Second, CuePowerup},
		{KindScoreBoost, 12 * time.Second, CuePowerup},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := newTestSession(t, quietTuning(), nil)
			p := s.newPowerup(tt.kind, s.player.X, s.player.Y)
			s.powerups = []Powerup{p}

			s.checkCollisions()

			if len(s.powerups) != 0 {
				t.Error("Expected powerup removed")
			}
			effect, ok := s.effects[tt.kind]
			if !ok {
				t.Fatalf("Expected %v effect", tt.kind)
			}
			if effect.Expires != s.clock+tt.duration {
				t.Errorf("Expected expiry %v, got %v", s.clock+tt.duration, effect.Expires)
			}
			if cues := s.DrainEvents(); len(cues) != 1 || cues[0] != tt.cue {
				t.Errorf("Expected cue %v, got %v", tt.cue, cues)
			}
		})
	}
}

func TestCollectHealthCapsAtMax(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.player.Health = 90
	s.powerups = []Powerup{s.newPowerup(KindHealth, s.player.X, s.player.Y)}

	s.checkCollisions()

	if s.player.Health != s.player.MaxHealth {
		t.Errorf("Expected health capped at %d, got %d", s.player.MaxHealth, s.player.Health)
	}
	if len(s.effects) != 0 {
		t.Error("Health should not register an effect")
	}
}

func TestCollectedPowerupIgnored(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	p := s.newPowerup(KindShield, s.player.X, s.player.Y)
	p.Collected = true
	s.powerups = []Powerup{p}

	s.checkCollisions()

	if len(s.powerups) != 1 || s.effects.Has(KindShield) {
		t.Error("Expected collected powerup to be skipped")
	}
}
