package game

import (
	"math"
	"time"
)

// spawn runs both spawn gates for one tick.
func (s *Session) spawn() {
	if s.clock-s.lastSpawn > s.spawnInterval {
		s.spawnWave()
		s.lastSpawn = s.clock
	}

	if s.rng.Float64() < s.powerupChance {
		kind := AllKinds[s.rng.IntN(len(AllKinds))]
		p := s.newPowerup(kind, s.rng.Float64()*(s.tuning.Width-s.tuning.Power.Size), -s.tuning.Power.Size)
		p.Speed = s.tuning.Power.Speed
		s.powerups = append(s.powerups, p)
	}
}

// spawnWave appends one wave of enemies and shortens the next interval.
func (s *Session) spawnWave() {
	count := min(s.tuning.Enemy.MaxPerSpawn, s.level/3+1)
	for range count {
		s.enemies = append(s.enemies, s.newEnemy(s.enemyType(s.rng.Float64())))
	}

	next := s.spawnInterval - time.Duration(s.level)*s.tuning.Enemy.IntervalStep
	s.spawnInterval = max(s.tuning.Enemy.MinInterval, next)
}

// enemyType maps a uniform sample r in [0,1) to a tier index. Higher
// levels widen the range, capped at the strongest tier.
func (s *Session) enemyType(r float64) int {
	span := min(s.level, 3)
	t := int(math.Floor(r * float64(span)))
	return min(t, 2, len(s.tuning.Enemy.Tiers)-1)
}

// newEnemy builds an enemy of the given tier just above the playfield.
func (s *Session) newEnemy(tier int) Enemy {
	cfg := s.tuning.Enemy.Tiers[tier]
	health := cfg.BaseHealth + s.level*cfg.HealthPerLevel
	return Enemy{
		X:          s.rng.Float64() * (s.tuning.Width - cfg.Size),
		Y:          -cfg.Size,
		W:          cfg.Size,
		H:          cfg.Size,
		Speed:      cfg.BaseSpeed + float64(s.level)*cfg.SpeedPerLevel,
		Health:     health,
		MaxHealth:  health,
		ScoreValue: cfg.Score,
		Type:       tier,
		Color:      cfg.Color,
	}
}

// newPowerup builds a stationary powerup of the given kind at (x, y) with
// the regular spawn-table magnitude.
func (s *Session) newPowerup(kind Kind, x, y float64) Powerup {
	p := Powerup{
		X:    x,
		Y:    y,
		W:    s.tuning.Power.Size,
		H:    s.tuning.Power.Size,
		Kind: kind,
	}
	switch kind {
	case KindHealth:
		p.Value = s.tuning.Power.HealAmount
	case KindRapidFire:
		p.Duration = s.tuning.Power.RapidFire
	case KindShield:
		p.Duration = s.tuning.Power.Shield
	case KindDoubleShot:
		p.Duration = s.tuning.Power.DoubleShot
	case KindScoreBoost:
		p.Duration = s.tuning.Power.ScoreBoost
	}
	return p
}

// maybeDrop rolls the drop chance for a defeated enemy. Drops are limited
// to health and rapid fire, use the weaker drop magnitudes and hover
// where the enemy died.
func (s *Session) maybeDrop(e Enemy) {
	if s.rng.Float64() >= s.tuning.Power.DropChance {
		return
	}
	kind := dropKinds[s.rng.IntN(len(dropKinds))]
	cx, cy := e.Bounds().Center()
	half := s.tuning.Power.Size / 2
	p := s.newPowerup(kind, cx-half, cy-half)
	switch kind {
	case KindHealth:
		p.Value = s.tuning.Power.DropHealAmount
	case KindRapidFire:
		p.Duration = s.tuning.Power.DropRapidFire
	}
	s.powerups = append(s.powerups, p)
}

// perTickChance converts a per-reference-frame probability to the
// probability for a tick that spans scale reference frames.
func perTickChance(p, scale float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, scale)
}
