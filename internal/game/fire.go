package game

import "time"

// shotDelay is the current fire cooldown: rapid fire beats boost, boost
// beats the base delay.
func (s *Session) shotDelay(boost bool) time.Duration {
	switch {
	case s.effects.Has(KindRapidFire):
		return s.tuning.Fire.RapidDelay
	case boost:
		return s.tuning.Fire.BoostDelay
	default:
		return s.tuning.Fire.Delay
	}
}

// autoFire shoots while fire is held and the cooldown has elapsed.
func (s *Session) autoFire(keys Keys) {
	if !keys.Fire {
		return
	}
	if s.clock-s.lastShot > s.shotDelay(keys.Boost) {
		s.shoot()
	}
}

// Shoot fires immediately, ignoring the cooldown. Frontends call it on the
// fire key's press edge. It reports whether a shot was fired.
func (s *Session) Shoot() bool {
	if s.state != StatePlaying {
		return false
	}
	s.shoot()
	return true
}

// shoot spawns one bullet on the ship's nose, plus two flanking bullets
// while double shot is active.
func (s *Session) shoot() {
	w := s.player.Weapon
	bullet := Bullet{
		X:      s.player.X + s.player.W/2 - w.W/2,
		Y:      s.player.Y,
		W:      w.W,
		H:      w.H,
		Speed:  w.BulletSpeed,
		Damage: w.Damage,
		Color:  w.Color,
	}
	s.bullets = append(s.bullets, bullet)

	if s.effects.Has(KindDoubleShot) {
		left, right := bullet, bullet
		left.X -= s.tuning.Weapon.SpreadX
		right.X += s.tuning.Weapon.SpreadX
		s.bullets = append(s.bullets, left, right)
	}

	s.lastShot = s.clock
	s.emit(CueShoot)
}
