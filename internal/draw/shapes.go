package draw

import "math"

// FillRect fills an axis-aligned rectangle given in logical coordinates.
// Anything at least partly covering a pixel center is drawn, and a
// non-empty rectangle always covers at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := max(int(math.Round((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Round((y+h)*c.scaleY)), y0+1)

	for py := max(y0, 0); py < min(y1, c.subPixelHeight); py++ {
		for px := max(x0, 0); px < min(x1, c.termWidth); px++ {
			c.pixels[py*c.termWidth+px] = col
		}
	}
}

// StrokeCircle outlines a circle. The radius is logical and scaled per
// axis, so circles stay round on screen when the logical aspect matches.
func (c *Canvas) StrokeCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		c.SetFloat(cx, cy, col)
		return
	}
	// Enough segments that adjacent points are about a pixel apart.
	steps := int(2*math.Pi*r*max(c.scaleX, c.scaleY)) + 8
	prev := Point{cx + r, cy}
	for i := 1; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		next := Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
		c.DrawLine(prev, next, col)
		prev = next
	}
}

// FillCircle fills a circle by testing every pixel center in its bounding
// box against the ellipse the radius maps to in pixel space.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		return
	}
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx < 0.5 || ry < 0.5 {
		c.SetFloat(cx, cy, col)
		return
	}

	y0 := max(int(math.Floor(pcy-ry)), 0)
	y1 := min(int(math.Ceil(pcy+ry)), c.subPixelHeight-1)
	x0 := max(int(math.Floor(pcx-rx)), 0)
	x1 := min(int(math.Ceil(pcx+rx)), c.termWidth-1)

	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.pixels[y*c.termWidth+x] = col
			}
		}
	}
}
