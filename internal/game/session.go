// Package game is the simulation core: entity stores, spawner, mover,
// collision resolver, effect timer and the session state machine.
// It does no I/O; frontends feed it key snapshots and draw its snapshots.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixelshooter/internal/config"
)

// State is the session phase.
type State int

const (
	StateMenu     State = iota // Title screen
	StatePlaying               // Simulation running
	StatePaused                // Simulation frozen, still rendered
	StateGameOver              // Run ended, final stats shown
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Keys is the snapshot of held keys for one step.
type Keys struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Boost                 bool // Faster fire tier
}

// Result is the outcome of one finished run.
type Result struct {
	Name  string
	Score int
	Level int
	Kills int
}

// Recorder persists results. Implementations handle their own I/O errors.
type Recorder interface {
	HighScore() int
	RecordGame(Result)
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Tuning     *config.Tuning
	Rand       *rand.Rand
	Recorder   Recorder
	PlayerName string
	Logger     *log.Logger // Gameplay events at debug level; nil disables
}

// Session owns one player's run and every entity store.
// It is not safe for concurrent use.
type Session struct {
	tuning   config.Tuning
	rng      *rand.Rand
	recorder Recorder
	name     string
	logger   *log.Logger

	state      State
	player     Player
	bullets    []Bullet
	enemies    []Enemy
	powerups   []Powerup
	explosions []Explosion
	effects    Effects

	score     int
	level     int
	kills     int
	highScore int

	clock         time.Duration // Simulation time; frozen while not playing
	lastSpawn     time.Duration
	spawnInterval time.Duration
	lastShot      time.Duration

	tick          time.Duration
	scale         float64 // Reference frames per tick
	powerupChance float64 // Powerup spawn probability per tick
	accum         time.Duration
	lastStep      time.Time

	events []Cue
}

// NewSession creates a session in the menu state.
func NewSession(opts Options) *Session {
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	tick := tuning.TickDuration()
	scale := float64(tick) / float64(referenceFrame)

	s := &Session{
		tuning:        tuning,
		rng:           rng,
		recorder:      opts.Recorder,
		name:          opts.PlayerName,
		logger:        opts.Logger,
		state:         StateMenu,
		effects:       Effects{},
		tick:          tick,
		scale:         scale,
		powerupChance: perTickChance(tuning.Power.SpawnChance, scale),
	}
	s.reset()
	if s.recorder != nil {
		s.highScore = s.recorder.HighScore()
	}
	return s
}

// referenceFrame is the frame length all tuning speeds are expressed in.
const referenceFrame = time.Second / 60

// reset restores every store and counter to the start-of-run values.
func (s *Session) reset() {
	s.player = newPlayer(s.tuning)
	s.bullets = s.bullets[:0]
	s.enemies = s.enemies[:0]
	s.powerups = s.powerups[:0]
	s.explosions = s.explosions[:0]
	clear(s.effects)
	s.score = 0
	s.level = 1
	s.kills = 0
	s.spawnInterval = s.tuning.Enemy.InitialInterval
	s.lastSpawn = s.clock
	s.lastShot = s.clock - s.tuning.Fire.Delay
	s.accum = 0
	s.lastStep = time.Time{}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Start begins a fresh run from the menu or game-over screen.
func (s *Session) Start() bool {
	if s.state != StateMenu && s.state != StateGameOver {
		return false
	}
	s.reset()
	s.state = StatePlaying
	s.emit(CueStart)
	s.logf("run started", "name", s.name)
	return true
}

// Pause freezes a running game.
func (s *Session) Pause() bool {
	if s.state != StatePlaying {
		return false
	}
	s.state = StatePaused
	s.emit(CuePause)
	return true
}

// Resume continues a paused game.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.state = StatePlaying
	s.lastStep = time.Time{}
	s.accum = 0
	s.emit(CueResume)
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() bool {
	if s.state == StatePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Restart abandons the current run, recording it, and starts a new one.
func (s *Session) Restart() bool {
	switch s.state {
	case StatePlaying, StatePaused:
		s.endRun()
	case StateGameOver:
	default:
		return false
	}
	s.state = StateGameOver
	return s.Start()
}

// ShowMenu returns to the title screen from a paused or finished game.
// An abandoned paused run is recorded.
func (s *Session) ShowMenu() bool {
	switch s.state {
	case StatePaused:
		s.endRun()
	case StateGameOver:
	default:
		return false
	}
	s.state = StateMenu
	return true
}

// gameOver ends the run from inside a tick.
func (s *Session) gameOver() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.endRun()
	s.emit(CueGameOver)
	s.logf("game over", "score", s.score, "level", s.level, "kills", s.kills)
}

// endRun hands the result to the recorder and raises the high score.
func (s *Session) endRun() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
	if s.recorder != nil {
		s.recorder.RecordGame(Result{Name: s.name, Score: s.score, Level: s.level, Kills: s.kills})
	}
}

// loseLife removes one life; the last one ends the game. Lives never drop
// below zero.
func (s *Session) loseLife() {
	if s.state != StatePlaying || s.player.Lives <= 0 {
		return
	}
	s.player.Lives--
	if s.player.Lives == 0 {
		s.gameOver()
		return
	}
	s.emit(CueLifeLost)
}

// Step advances the simulation by the wall-clock time since the previous
// Step. The first Step after a start or resume only records the time.
// It returns the number of fixed ticks run.
func (s *Session) Step(now time.Time, keys Keys) int {
	if s.state != StatePlaying {
		s.lastStep = time.Time{}
		return 0
	}
	if s.lastStep.IsZero() {
		s.lastStep = now
		return 0
	}
	elapsed := now.Sub(s.lastStep)
	s.lastStep = now
	return s.Advance(elapsed, keys)
}

// Advance accumulates elapsed time and runs as many fixed ticks as fit,
// up to the catch-up cap. Time beyond the cap is dropped.
func (s *Session) Advance(elapsed time.Duration, keys Keys) int {
	if s.state != StatePlaying || elapsed <= 0 {
		return 0
	}
	s.accum += elapsed

	ticks := 0
	for s.accum >= s.tick && s.state == StatePlaying {
		if ticks == s.tuning.MaxTicksPerStep {
			s.accum = 0
			break
		}
		s.Tick(keys)
		s.accum -= s.tick
		ticks++
	}
	return ticks
}

// Tick runs one fixed simulation step: spawner, mover, collision
// resolver, level, effect timer. Does nothing unless playing.
func (s *Session) Tick(keys Keys) {
	if s.state != StatePlaying {
		return
	}
	s.clock += s.tick

	s.spawn()

	s.movePlayer(keys)
	s.autoFire(keys)
	s.moveBullets()
	s.moveEnemies()
	s.movePowerups()
	s.updateExplosions()
	if s.state != StatePlaying {
		return
	}

	s.checkCollisions()
	if s.state != StatePlaying {
		return
	}

	s.updateLevel()
	s.expireEffects()
}

func (s *Session) logf(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}
