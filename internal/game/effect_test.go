package game

import (
	"testing"
	"time"
)

func TestEffectsReplaceSameKind(t *testing.T) {
	e := Effects{}
	e.Add(KindShield, 0, 5*time.Second)
	e.Add(KindShield, 2*time.Second, 5*time.Second)

	if len(e) != 1 {
		t.Fatalf("Expected one shield entry, got %d", len(e))
	}
	if got := e[KindShield].Expires; got != 7*time.Second {
		t.Errorf("Expected later expiry 7s, got %v", got)
	}
}

func TestEffectsExpire(t *testing.T) {
	e := Effects{}
	e.Add(KindShield, 0, 15*time.Second)
	e.Add(KindDoubleShot, 0, 8*time.Second)
	e.Add(KindRapidFire, 0, 8*time.Second)

	if got := e.Expire(7 * time.Second); len(got) != 0 {
		t.Errorf("Expected nothing expired at 7s, got %v", got)
	}
	got := e.Expire(8 * time.Second)
	if len(got) != 2 || got[0] != KindRapidFire || got[1] != KindDoubleShot {
		t.Errorf("Expected [rapidFire doubleShot] at expiry, got %v", got)
	}
	if !e.Has(KindShield) || len(e) != 1 {
		t.Errorf("Expected only shield left, got %v", e)
	}
}

func TestEffectsStatus(t *testing.T) {
	e := Effects{}
	e.Add(KindScoreBoost, 0, 12*time.Second)
	e.Add(KindShield, 0, 10*time.Second)

	status := e.Status(3 * time.Second)
	if len(status) != 2 || status[0].Kind != KindShield {
		t.Fatalf("Expected shield first, got %+v", status)
	}
	if status[0].Remaining != 7*time.Second {
		t.Errorf("Expected 7s remaining, got %v", status[0].Remaining)
	}
	if status[1].Fraction != 0.75 {
		t.Errorf("Expected 0.75 fraction, got %v", status[1].Fraction)
	}
}

func TestRapidFireRevertsOnExpiry(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.effects.Add(KindRapidFire, s.clock, 100*time.Millisecond)

	if got := s.shotDelay(false); got != 50*time.Millisecond {
		t.Errorf("Expected rapid delay 50ms, got %v", got)
	}
	for range 7 {
		s.Tick(Keys{})
	}
	if s.effects.Has(KindRapidFire) {
		t.Fatal("Expected rapid fire expired")
	}
	if got := s.shotDelay(false); got != 200*time.Millisecond {
		t.Errorf("Expected base delay 200ms, got %v", got)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{4999, 5},
		{5000, 6},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score, 1000); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestSpeedBonusEveryFifthLevel(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	base := s.player.Speed

	s.score = 3999
	s.updateLevel()
	if s.level != 4 || s.player.Speed != base {
		t.Fatalf("Expected level 4 without bonus, got level %d speed %v", s.level, s.player.Speed)
	}

	s.score = 4000
	s.updateLevel()
	s.updateLevel()
	if s.level != 5 || s.player.Speed != base+0.5 {
		t.Errorf("Expected level 5 with one bonus, got level %d speed %v", s.level, s.player.Speed)
	}

	s.score = 10000
	s.updateLevel()
	if s.level != 11 || s.player.Speed != base+1.0 {
		t.Errorf("Expected level 11 with two bonuses, got level %d speed %v", s.level, s.player.Speed)
	}
}
