package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/pixelshooter/internal/draw"
	"github.com/tomz197/pixelshooter/internal/scene"
)

// painter draws scenes with ebiten's vector package.
type painter struct {
	dst  *ebiten.Image
	face text.Face
}

var _ scene.Painter = painter{}

// nrgba converts a palette color with an alpha in [0,1].
func nrgba(c draw.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGBA()
	alpha = max(0, min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}

func (p painter) FillRect(x, y, w, h float64, c draw.Color, alpha float64) {
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), nrgba(c, alpha), false)
}

func (p painter) FillCircle(cx, cy, r float64, c draw.Color, alpha float64) {
	vector.DrawFilledCircle(p.dst, float32(cx), float32(cy), float32(r), nrgba(c, alpha), true)
}

func (p painter) StrokeCircle(cx, cy, r float64, c draw.Color, alpha float64) {
	vector.StrokeCircle(p.dst, float32(cx), float32(cy), float32(r), 2, nrgba(c, alpha), true)
}

func (p painter) Glyph(cx, cy float64, s string, c draw.Color) {
	drawText(p.dst, p.face, s, cx, cy, nrgba(c, 1), text.AlignCenter, 1.5)
}

// drawText draws s scaled with its origin at x, y. The vertical origin is
// the middle of the line.
func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color, align text.Align, scale float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
