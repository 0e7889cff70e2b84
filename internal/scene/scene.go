// Package scene draws a game snapshot onto any backend that can fill
// rectangles and circles. The terminal canvas and the desktop window both
// implement Painter, so the playfield looks the same on each.
package scene

import (
	"github.com/tomz197/pixelshooter/internal/draw"
	"github.com/tomz197/pixelshooter/internal/game"
)

// Painter is the drawing surface. Coordinates are playfield units.
// Alpha is in [0,1]; backends without blending darken the color instead.
type Painter interface {
	FillRect(x, y, w, h float64, c draw.Color, alpha float64)
	FillCircle(cx, cy, r float64, c draw.Color, alpha float64)
	StrokeCircle(cx, cy, r float64, c draw.Color, alpha float64)
	Glyph(cx, cy float64, s string, c draw.Color)
}

var (
	background  = draw.RGB(0x11, 0x11, 0x11)
	gridColor   = draw.RGB(0, 255, 0)
	black       = draw.RGB(0, 0, 0)
	shipColor   = draw.RGB(0, 255, 0)
	flameColor  = draw.RGB(255, 255, 0)
	shieldColor = draw.ParseHex(game.KindShield.Color())
	faceColor   = draw.RGB(0xff, 0x55, 0x55)
	barBack     = draw.RGB(0x33, 0x33, 0x33)
	barGood     = draw.RGB(0, 255, 0)
	barHalf     = draw.RGB(255, 255, 0)
	barLow      = draw.RGB(255, 0, 0)
)

const gridSpacing = 40

// Options toggles the decorations a small surface may not afford.
type Options struct {
	Background bool // Fill the playfield instead of leaving it unset
	Grid       bool // Faint background grid
}

// Draw paints the snapshot back to front: background, explosions,
// enemies, powerups, bullets and finally the player.
func Draw(p Painter, snap game.Snapshot, opts Options) {
	if opts.Background {
		p.FillRect(0, 0, snap.Width, snap.Height, background, 1)
	}
	if opts.Grid {
		drawGrid(p, snap.Width, snap.Height)
	}

	for _, e := range snap.Explosions {
		drawExplosion(p, e)
	}
	for _, e := range snap.Enemies {
		drawEnemy(p, e)
	}
	for _, pu := range snap.Powerups {
		drawPowerup(p, pu)
	}
	for _, b := range snap.Bullets {
		drawBullet(p, b)
	}
	if snap.State != game.StateMenu {
		drawPlayer(p, snap.Player, hasEffect(snap.Effects, game.KindShield))
	}
}

func drawGrid(p Painter, w, h float64) {
	for x := 0.0; x < w; x += gridSpacing {
		p.FillRect(x, 0, 1, h, gridColor, 0.1)
	}
	for y := 0.0; y < h; y += gridSpacing {
		p.FillRect(0, y, w, 1, gridColor, 0.1)
	}
}

func drawPlayer(p Painter, pl game.Player, shielded bool) {
	if shielded {
		cx, cy := pl.X+pl.W/2, pl.Y+pl.H/2
		p.FillCircle(cx, cy, pl.W*0.7, shieldColor, 0.1)
		p.StrokeCircle(cx, cy, pl.W*0.7, shieldColor, 1)
	}

	p.FillRect(pl.X, pl.Y, pl.W, pl.H, shipColor, 1)
	p.FillRect(pl.X+8, pl.Y+8, pl.W-16, pl.H-16, black, 1)
	p.FillRect(pl.X+12, pl.Y+12, pl.W-24, pl.H-24, shipColor, 1)

	// Engine glow
	p.FillRect(pl.X+pl.W/2-5, pl.Y+pl.H, 10, 15, shipColor, 1)
	p.FillRect(pl.X+pl.W/2-3, pl.Y+pl.H+2, 6, 10, flameColor, 1)
}

func drawBullet(p Painter, b game.Bullet) {
	c := draw.ParseHex(b.Color)
	p.FillRect(b.X, b.Y, b.W, b.H, c, 1)
	p.FillRect(b.X, b.Y+b.H, b.W, 10, c, 0.5) // Trail
}

func drawEnemy(p Painter, e game.Enemy) {
	c := draw.ParseHex(e.Color)
	p.FillRect(e.X, e.Y, e.W, e.H, c, 1)
	p.FillRect(e.X+6, e.Y+6, e.W-12, e.H-12, black, 1)

	// Face
	p.FillRect(e.X+10, e.Y+10, 6, 6, faceColor, 1)
	p.FillRect(e.X+e.W-16, e.Y+10, 6, 6, faceColor, 1)
	p.FillRect(e.X+e.W/2-3, e.Y+e.H-10, 6, 3, faceColor, 1)

	if e.Health < e.MaxHealth && e.MaxHealth > 0 {
		frac := float64(e.Health) / float64(e.MaxHealth)
		barW := e.W - 4
		p.FillRect(e.X+2, e.Y-8, barW, 4, barBack, 1)
		p.FillRect(e.X+2, e.Y-8, barW*frac, 4, HealthColor(frac), 1)
	}
}

// HealthColor is green above half, yellow above a quarter, red below.
func HealthColor(frac float64) draw.Color {
	switch {
	case frac > 0.5:
		return barGood
	case frac > 0.25:
		return barHalf
	default:
		return barLow
	}
}

func drawPowerup(p Painter, pu game.Powerup) {
	c := draw.ParseHex(pu.Kind.Color())
	cx, cy := pu.X+pu.W/2, pu.Y+pu.H/2
	p.FillCircle(cx, cy, pu.W/2+5, c, 0.25) // Glow
	p.FillRect(pu.X, pu.Y, pu.W, pu.H, c, 1)
	p.Glyph(cx, cy, string(pu.Kind.Glyph()), draw.White)
}

func drawExplosion(p Painter, e game.Explosion) {
	if e.Opacity <= 0 {
		return
	}
	c := draw.ParseHex(e.Color)
	p.FillCircle(e.X, e.Y, e.Radius, c, e.Opacity)
	p.StrokeCircle(e.X, e.Y, e.Radius*1.5, c, e.Opacity*0.5)
}

func hasEffect(effects []game.EffectStatus, kind game.Kind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
