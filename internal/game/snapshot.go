package game

import "slices"

// Snapshot is a read-only copy of what renderers and the HUD draw.
type Snapshot struct {
	State      State
	Width      float64
	Height     float64
	Player     Player
	Bullets    []Bullet
	Enemies    []Enemy
	Powerups   []Powerup
	Explosions []Explosion
	Effects    []EffectStatus

	Score     int
	HighScore int
	Level     int
	Kills     int
	Name      string
}

// HealthPercent is the ship's health as 0..100.
func (s Snapshot) HealthPercent() int {
	if s.Player.MaxHealth <= 0 {
		return 0
	}
	return s.Player.Health * 100 / s.Player.MaxHealth
}

// Snapshot copies the current state. The returned slices are not shared
// with the session.
func (s *Session) Snapshot() Snapshot {
	high := s.highScore
	if s.score > high {
		high = s.score
	}
	return Snapshot{
		State:      s.state,
		Width:      s.tuning.Width,
		Height:     s.tuning.Height,
		Player:     s.player,
		Bullets:    slices.Clone(s.bullets),
		Enemies:    slices.Clone(s.enemies),
		Powerups:   slices.Clone(s.powerups),
		Explosions: slices.Clone(s.explosions),
		Effects:    s.effects.Status(s.clock),
		Score:      s.score,
		HighScore:  high,
		Level:      s.level,
		Kills:      s.kills,
		Name:       s.name,
	}
}
