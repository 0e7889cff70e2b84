package game

import (
	"slices"

	"github.com/tomz197/pixelshooter/internal/physics"
)

// Explosion sizes: max radius and growth per reference frame.
const (
	hitExplosionRadius     = 10
	hitExplosionGrowth     = 1
	killExplosionRadius    = 20
	killExplosionGrowth    = 2
	impactExplosionRadius  = 25
	impactExplosionGrowth  = 3
	collectExplosionRadius = 15
	collectExplosionGrowth = 1.5

	hitExplosionColor = "#ff5555"
)

// checkCollisions resolves bullet hits, ship impacts and pickups, in that
// order. Stops early once the run has ended.
func (s *Session) checkCollisions() {
	s.checkBulletEnemyCollisions()
	if !s.effects.Has(KindShield) {
		s.checkPlayerEnemyCollisions()
	}
	if s.state != StatePlaying {
		return
	}
	s.checkPlayerPowerupCollisions()
}

// checkBulletEnemyCollisions applies each bullet to at most one enemy.
// Bullets do not pierce.
func (s *Session) checkBulletEnemyCollisions() {
	for i := len(s.bullets) - 1; i >= 0; i-- {
		b := s.bullets[i]
		for j := len(s.enemies) - 1; j >= 0; j-- {
			e := &s.enemies[j]
			if !physics.RectsOverlap(b.Bounds(), e.Bounds()) {
				continue
			}

			e.Health -= b.Damage
			bx, by := b.Bounds().Center()
			s.explosions = append(s.explosions, newExplosion(bx, by, hitExplosionColor, hitExplosionRadius, hitExplosionGrowth))
			s.bullets = slices.Delete(s.bullets, i, i+1)

			if e.Health <= 0 {
				s.defeatEnemy(j)
			} else {
				s.emit(CueHit)
			}
			break
		}
	}
}

// defeatEnemy removes enemy j and awards score, kill and drop chance.
func (s *Session) defeatEnemy(j int) {
	e := s.enemies[j]
	s.enemies = slices.Delete(s.enemies, j, j+1)

	points := e.ScoreValue
	if s.effects.Has(KindScoreBoost) {
		points *= s.tuning.ScoreBoostFactor
	}
	s.score += points
	s.kills++

	cx, cy := e.Bounds().Center()
	s.explosions = append(s.explosions, newExplosion(cx, cy, e.Color, killExplosionRadius, killExplosionGrowth))
	s.emit(CueEnemyExplode)
	s.maybeDrop(e)
}

// checkPlayerEnemyCollisions rams the ship into overlapping enemies. Each
// impact destroys the enemy and costs health.
func (s *Session) checkPlayerEnemyCollisions() {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		if s.state != StatePlaying {
			return
		}
		e := s.enemies[i]
		if !physics.RectsOverlap(s.player.Bounds(), e.Bounds()) {
			continue
		}

		s.enemies = slices.Delete(s.enemies, i, i+1)
		cx, cy := e.Bounds().Center()
		s.explosions = append(s.explosions, newExplosion(cx, cy, e.Color, impactExplosionRadius, impactExplosionGrowth))
		s.emit(CuePlayerHit)
		s.damagePlayer(s.tuning.PlayerHitDamage)
	}
}

// damagePlayer subtracts health. Running out refills health and costs a life.
func (s *Session) damagePlayer(amount int) {
	s.player.Health -= amount
	if s.player.Health > 0 {
		return
	}
	s.player.Health = s.player.MaxHealth
	s.loseLife()
}

// checkPlayerPowerupCollisions collects every overlapping powerup.
func (s *Session) checkPlayerPowerupCollisions() {
	for i := len(s.powerups) - 1; i >= 0; i-- {
		p := &s.powerups[i]
		if p.Collected || !physics.RectsOverlap(s.player.Bounds(), p.Bounds()) {
			continue
		}
		s.collect(p)
		s.powerups = slices.Delete(s.powerups, i, i+1)
	}
}

// collect applies a powerup's effect. Health heals at once; every other
// kind registers or restarts its timed effect.
func (s *Session) collect(p *Powerup) {
	p.Collected = true

	switch p.Kind {
	case KindHealth:
		s.player.Health = min(s.player.MaxHealth, s.player.Health+p.Value)
		s.emit(CueHealth)
	case KindShield:
		s.effects.Add(p.Kind, s.clock, p.Duration)
		s.emit(CueShield)
	default:
		s.effects.Add(p.Kind, s.clock, p.Duration)
		s.emit(CuePowerup)
	}

	cx, cy := p.Bounds().Center()
	s.explosions = append(s.explosions, newExplosion(cx, cy, p.Kind.Color(), collectExplosionRadius, collectExplosionGrowth))
	s.logf("powerup collected", "kind", p.Kind)
}
