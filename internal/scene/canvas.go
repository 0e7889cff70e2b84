package scene

import (
	"github.com/tomz197/pixelshooter/internal/draw"
)

// CanvasPainter paints onto a terminal canvas. The canvas cannot hold
// text, so glyphs are queued and written over the rendered frame by
// FlushGlyphs.
type CanvasPainter struct {
	Canvas *draw.Canvas
	glyphs []glyph
}

type glyph struct {
	x, y float64
	s    string
	c    draw.Color
}

var _ Painter = (*CanvasPainter)(nil)

// NewCanvasPainter wraps c.
func NewCanvasPainter(c *draw.Canvas) *CanvasPainter {
	return &CanvasPainter{Canvas: c}
}

// FillRect implements Painter. Alpha darkens toward black.
func (p *CanvasPainter) FillRect(x, y, w, h float64, c draw.Color, alpha float64) {
	p.Canvas.FillRect(x, y, w, h, c.Scale(alpha))
}

// FillCircle implements Painter.
func (p *CanvasPainter) FillCircle(cx, cy, r float64, c draw.Color, alpha float64) {
	p.Canvas.FillCircle(cx, cy, r, c.Scale(alpha))
}

// StrokeCircle implements Painter.
func (p *CanvasPainter) StrokeCircle(cx, cy, r float64, c draw.Color, alpha float64) {
	p.Canvas.StrokeCircle(cx, cy, r, c.Scale(alpha))
}

// Glyph implements Painter.
func (p *CanvasPainter) Glyph(cx, cy float64, s string, c draw.Color) {
	p.glyphs = append(p.glyphs, glyph{cx, cy, s, c})
}

// FlushGlyphs draws the queued glyphs onto screen and empties the queue.
// Call it after the canvas has been added to the frame.
func (p *CanvasPainter) FlushGlyphs(screen *draw.Screen) {
	for _, g := range p.glyphs {
		screen.Glyph(g.x, g.y, g.c, g.s)
	}
	p.glyphs = p.glyphs[:0]
}
