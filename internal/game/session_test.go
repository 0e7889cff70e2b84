package game

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/tomz197/pixelshooter/internal/config"
)

type fakeRecorder struct {
	high    int
	results []Result
}

func (f *fakeRecorder) HighScore() int { return f.high }

func (f *fakeRecorder) RecordGame(r Result) {
	f.results = append(f.results, r)
	if r.Score > f.high {
		f.high = r.Score
	}
}

// quietTuning disables random spawns so tests place every entity by hand.
func quietTuning() config.Tuning {
	t := config.DefaultTuning()
	t.Power.SpawnChance = 0
	t.Power.DropChance = 0
	t.Enemy.InitialInterval = time.Hour
	return t
}

func newTestSession(t *testing.T, tuning config.Tuning, rec Recorder) *Session {
	t.Helper()
	s := NewSession(Options{
		Tuning:     &tuning,
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Recorder:   rec,
		PlayerName: "tester",
	})
	if !s.Start() {
		t.Fatal("Start from menu should succeed")
	}
	s.DrainEvents()
	return s
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s := NewSession(Options{})
	if s.State() != StateMenu {
		t.Errorf("Expected menu, got %v", s.State())
	}
	if n := s.Advance(time.Second, Keys{}); n != 0 {
		t.Errorf("Expected no ticks in menu, got %d", n)
	}
}

func TestStartResetsEverything(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, quietTuning(), rec)

	s.bullets = append(s.bullets, Bullet{X: 1, Y: 1, W: 4, H: 12})
	s.enemies = append(s.enemies, Enemy{X: 1, Y: 1, W: 30, H: 30})
	s.powerups = append(s.powerups, Powerup{X: 1, Y: 1, W: 30, H: 30})
	s.explosions = append(s.explosions, newExplosion(1, 1, "#fff", 10, 1))
	s.effects.Add(KindShield, s.clock, time.Second)
	s.score = 4200
	s.level = 5
	s.kills = 12
	s.player.Lives = 1
	s.player.Health = 40
	s.player.Speed = 9

	if !s.Restart() {
		t.Fatal("Restart from playing should succeed")
	}

	snap := s.Snapshot()
	if len(snap.Bullets)+len(snap.Enemies)+len(snap.Powerups)+len(snap.Explosions) != 0 {
		t.Errorf("Expected empty stores, got %d/%d/%d/%d",
			len(snap.Bullets), len(snap.Enemies), len(snap.Powerups), len(snap.Explosions))
	}
	if len(snap.Effects) != 0 {
		t.Errorf("Expected no effects, got %v", snap.Effects)
	}
	if snap.Score != 0 || snap.Level != 1 || snap.Kills != 0 {
		t.Errorf("Expected score 0 level 1 kills 0, got %d %d %d", snap.Score, snap.Level, snap.Kills)
	}
	if snap.Player.Lives != 3 || snap.Player.Health != snap.Player.MaxHealth {
		t.Errorf("Expected 3 lives at full health, got %d lives %d health", snap.Player.Lives, snap.Player.Health)
	}
	if snap.Player.Speed != 5 {
		t.Errorf("Expected speed reset to 5, got %v", snap.Player.Speed)
	}
	if len(rec.results) != 1 || rec.results[0].Score != 4200 {
		t.Errorf("Expected abandoned run recorded, got %+v", rec.results)
	}
}

func TestTransitions(t *testing.T) {
	s := NewSession(Options{Tuning: ptr(quietTuning())})

	steps := []struct {
		name string
		op   func() bool
		ok   bool
		want State
	}{
		{"pause from menu", s.Pause, false, StateMenu},
		{"resume from menu", s.Resume, false, StateMenu},
		{"menu from menu", s.ShowMenu, false, StateMenu},
		{"start", s.Start, true, StatePlaying},
		{"start while playing", s.Start, false, StatePlaying},
		{"menu while playing", s.ShowMenu, false, StatePlaying},
		{"resume while playing", s.Resume, false, StatePlaying},
		{"pause", s.Pause, true, StatePaused},
		{"pause while paused", s.Pause, false, StatePaused},
		{"toggle resumes", s.TogglePause, true, StatePlaying},
		{"toggle pauses", s.TogglePause, true, StatePaused},
		{"menu from paused", s.ShowMenu, true, StateMenu},
		{"start again", s.Start, true, StatePlaying},
		{"restart", s.Restart, true, StatePlaying},
	}

	for _, st := range steps {
		if ok := st.op(); ok != st.ok {
			t.Errorf("%s: expected ok=%v, got %v", st.name, st.ok, ok)
		}
		if s.State() != st.want {
			t.Errorf("%s: expected state %v, got %v", st.name, st.want, s.State())
		}
	}
}

func TestGameOverFlow(t *testing.T) {
	rec := &fakeRecorder{high: 100}
	s := newTestSession(t, quietTuning(), rec)
	s.score = 700
	s.player.Lives = 1
	s.enemies = append(s.enemies, Enemy{X: 10, Y: s.tuning.Height, W: 30, H: 30, Speed: 1})

	s.Tick(Keys{})

	if s.State() != StateGameOver {
		t.Fatalf("Expected game over, got %v", s.State())
	}
	if s.player.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", s.player.Lives)
	}
	if len(rec.results) != 1 || rec.results[0].Score != 700 || rec.results[0].Name != "tester" {
		t.Errorf("Expected result recorded once, got %+v", rec.results)
	}
	if s.Snapshot().HighScore != 700 {
		t.Errorf("Expected high score 700, got %d", s.Snapshot().HighScore)
	}
	if !slices.Contains(s.DrainEvents(), CueGameOver) {
		t.Error("Expected gameOver cue")
	}

	if s.Pause() {
		t.Error("Pause should fail after game over")
	}
	if !s.ShowMenu() || s.State() != StateMenu {
		t.Errorf("Expected menu after game over, got %v", s.State())
	}
	if !s.Start() {
		t.Error("Start from menu should succeed")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.effects.Add(KindShield, s.clock, 100*time.Millisecond)
	s.bullets = append(s.bullets, Bullet{X: 100, Y: 300, W: 4, H: 12, Speed: 10})

	s.Pause()
	clock := s.clock
	if n := s.Advance(10*time.Second, Keys{Up: true}); n != 0 {
		t.Errorf("Expected no ticks while paused, got %d", n)
	}
	s.Tick(Keys{})
	if s.clock != clock || s.bullets[0].Y != 300 {
		t.Error("Expected paused session to stay frozen")
	}

	s.Resume()
	if !s.effects.Has(KindShield) {
		t.Error("Expected shield to survive the pause")
	}
}

func TestStepUsesWallClock(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	start := time.Unix(1000, 0)

	if n := s.Step(start, Keys{}); n != 0 {
		t.Errorf("First step should only record the time, ran %d ticks", n)
	}
	if n := s.Step(start.Add(s.tick*2+s.tick/2), Keys{}); n != 2 {
		t.Errorf("Expected 2 ticks, got %d", n)
	}
	// The leftover half tick carries over.
	if n := s.Step(start.Add(s.tick*3), Keys{}); n != 1 {
		t.Errorf("Expected 1 tick from carried time, got %d", n)
	}
}

func TestAdvanceCatchUpCap(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)

	if n := s.Advance(time.Minute, Keys{}); n != s.tuning.MaxTicksPerStep {
		t.Errorf("Expected %d ticks, got %d", s.tuning.MaxTicksPerStep, n)
	}
	if s.accum != 0 {
		t.Errorf("Expected dropped backlog, got %v", s.accum)
	}
}

func TestEventsDrain(t *testing.T) {
	s := newTestSession(t, quietTuning(), nil)
	s.Shoot()
	s.Pause()

	got := s.DrainEvents()
	if len(got) != 2 || got[0] != CueShoot || got[1] != CuePause {
		t.Errorf("Expected [shoot pause], got %v", got)
	}
	if again := s.DrainEvents(); again != nil {
		t.Errorf("Expected nothing after drain, got %v", again)
	}
}

func TestInvariantsHoldUnderRandomPlay(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Power.SpawnChance = 0.05
	tuning.Enemy.InitialInterval = 300 * time.Millisecond
	tuning.Enemy.MinInterval = 100 * time.Millisecond
	s := NewSession(Options{Tuning: &tuning, Rand: rand.New(rand.NewPCG(7, 9))})
	s.Start()

	keys := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 20000; i++ {
		if s.State() != StatePlaying {
			s.ShowMenu()
			s.Start()
		}
		s.Tick(Keys{
			Up:    keys.IntN(2) == 0,
			Down:  keys.IntN(2) == 0,
			Left:  keys.IntN(2) == 0,
			Right: keys.IntN(2) == 0,
			Fire:  keys.IntN(3) > 0,
			Boost: keys.IntN(2) == 0,
		})

		p := s.player
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("tick %d: health %d outside [0,%d]", i, p.Health, p.MaxHealth)
		}
		if p.Lives < 0 {
			t.Fatalf("tick %d: negative lives %d", i, p.Lives)
		}
		if p.X < 0 || p.Y < 0 || p.X > tuning.Width-p.W || p.Y > tuning.Height-p.H {
			t.Fatalf("tick %d: player out of bounds at (%v,%v)", i, p.X, p.Y)
		}
		if len(s.effects) > len(AllKinds) {
			t.Fatalf("tick %d: %d effects", i, len(s.effects))
		}
		for _, b := range s.bullets {
			if b.Y < -b.H {
				t.Fatalf("tick %d: bullet kept above the removal line", i)
			}
		}
		if s.State() == StatePlaying && s.level != LevelFor(s.score, tuning.LevelUpScore) {
			t.Fatalf("tick %d: level %d for score %d", i, s.level, s.score)
		}
		s.DrainEvents()
	}
}

func ptr[T any](v T) *T { return &v }
