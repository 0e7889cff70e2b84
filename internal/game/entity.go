package game

import (
	"time"

	"github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/physics"
)

// Weapon describes what the ship fires.
type Weapon struct {
	Name        string
	Damage      int
	W, H        float64 // Bullet size
	BulletSpeed float64
	Color       string
}

// Player is the ship. Health and Lives live here so a snapshot carries them.
type Player struct {
	X, Y      float64 // Top-left corner
	W, H      float64
	Speed     float64 // Units per reference frame along one axis
	Weapon    Weapon
	Health    int
	MaxHealth int
	Lives     int
}

// Bounds returns the player's collision box.
func (p Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Bullet travels straight up until it leaves the top or hits an enemy.
type Bullet struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Damage int
	Color  string
}

// Bounds returns the bullet's collision box.
func (b Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Enemy descends from above. Type indexes the tier table (0 weakest).
type Enemy struct {
	X, Y       float64
	W, H       float64
	Speed      float64
	Health     int
	MaxHealth  int
	ScoreValue int
	Type       int
	Color      string
}

// Bounds returns the enemy's collision box.
func (e Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Powerup is a collectible. Value is the heal amount for KindHealth,
// Duration the buff length for the timed kinds.
type Powerup struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Kind      Kind
	Value     int
	Duration  time.Duration
	Collected bool
}

// Bounds returns the powerup's collision box.
func (p Powerup) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Explosion is cosmetic: a ring that grows while fading out.
type Explosion struct {
	X, Y      float64 // Center
	Radius    float64
	MaxRadius float64
	Growth    float64
	Opacity   float64
	Color     string
}

// newPlayer builds a fresh ship centered horizontally near the bottom.
func newPlayer(t config.Tuning) Player {
	return Player{
		X:         t.Width/2 - t.Player.Width/2,
		Y:         t.Height - t.PlayerBottomInset,
		W:         t.Player.Width,
		H:         t.Player.Height,
		Speed:     t.Player.Speed,
		Weapon:    newWeapon(t),
		Health:    t.Player.MaxHealth,
		MaxHealth: t.Player.MaxHealth,
		Lives:     t.Player.Lives,
	}
}

func newWeapon(t config.Tuning) Weapon {
	return Weapon{
		Name:        t.Weapon.Name,
		Damage:      t.Weapon.Damage,
		W:           t.Weapon.Width,
		H:           t.Weapon.Height,
		BulletSpeed: t.Weapon.BulletSpeed,
		Color:       t.Weapon.Color,
	}
}

func newExplosion(x, y float64, color string, maxRadius, growth float64) Explosion {
	return Explosion{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Growth:    growth,
		Opacity:   1,
		Color:     color,
	}
}
