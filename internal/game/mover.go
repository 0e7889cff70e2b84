package game

import (
	"github.com/tomz197/pixelshooter/internal/physics"
)

// movePlayer applies the held direction keys. Two-key diagonals are scaled
// by a fixed factor instead of a vector normalize.
func (s *Session) movePlayer(keys Keys) {
	var dx, dy float64
	if keys.Left {
		dx--
	}
	if keys.Right {
		dx++
	}
	if keys.Up {
		dy--
	}
	if keys.Down {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx *= s.tuning.DiagonalFactor
		dy *= s.tuning.DiagonalFactor
	}

	step := s.player.Speed * s.scale
	p := &s.player
	p.X = physics.Clamp(p.X+dx*step, 0, s.tuning.Width-p.W)
	p.Y = physics.Clamp(p.Y+dy*step, 0, s.tuning.Height-p.H)
}

// moveBullets advances bullets upward and drops those past the top edge.
func (s *Session) moveBullets() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Y -= b.Speed * s.scale
		if b.Y < -b.H {
			continue
		}
		kept = append(kept, b)
	}
	clear(s.bullets[len(kept):])
	s.bullets = kept
}

// moveEnemies advances enemies downward. An enemy crossing the bottom edge
// is removed and costs a life at once.
func (s *Session) moveEnemies() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		e.Y += e.Speed * s.scale
		if e.Y > s.tuning.Height {
			s.loseLife()
			continue
		}
		kept = append(kept, e)
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept
}

// movePowerups advances falling powerups and drops those past the bottom.
func (s *Session) movePowerups() {
	kept := s.powerups[:0]
	for _, p := range s.powerups {
		p.Y += p.Speed * s.scale
		if p.Y > s.tuning.Height {
			continue
		}
		kept = append(kept, p)
	}
	clear(s.powerups[len(kept):])
	s.powerups = kept
}

// updateExplosions grows and fades explosions, removing spent ones.
func (s *Session) updateExplosions() {
	kept := s.explosions[:0]
	for _, ex := range s.explosions {
		ex.Radius += ex.Growth * s.scale
		ex.Opacity -= s.tuning.ExplosionFade * s.scale
		if ex.Opacity <= 0 {
			continue
		}
		kept = append(kept, ex)
	}
	clear(s.explosions[len(kept):])
	s.explosions = kept
}
