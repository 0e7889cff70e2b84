package draw

import (
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Each sub-pixel holds a Color; zero means unset. Drawing
// happens in logical coordinates that are scaled to terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	prev           []Color // Pixels as of the last Render
	textDirty      []bool  // Per cell: overwritten by text since the last Render
	forceRedraw    bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to
// terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.prev = make([]Color, subPixelHeight*termWidth)
		c.textDirty = make([]bool, termHeight*termWidth)
		c.forceRedraw = true
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// At returns the pixel at terminal pixel coordinates, or zero outside.
func (c *Canvas) At(x, y int) Color {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return 0
}

// SetFloat sets a pixel using logical coordinates.
func (c *Canvas) SetFloat(x, y float64, col Color) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), col)
}

// DrawLine draws a line using Bresenham's algorithm. Coordinates are
// logical.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Render writes the cells that changed since the previous Render, plus
// cells marked dirty by text overlays. After a resize or ForceRedraw every
// cell is written, empty ones as spaces, so no screen clear is needed.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var fg, bg Color
	resetAttrs := func() {
		if fg != 0 || bg != 0 {
			c.renderBuf.WriteString(Reset)
			fg, bg = 0, 0
		}
	}

	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth:]
		bottom := c.pixels[(row*2+1)*c.termWidth:]
		prevTop := c.prev[row*2*c.termWidth:]
		prevBottom := c.prev[(row*2+1)*c.termWidth:]
		needMove := true

		for col := 0; col < c.termWidth; col++ {
			t, b := top[col], bottom[col]
			if !c.forceRedraw && !c.textDirty[row*c.termWidth+col] &&
				t == prevTop[col] && b == prevBottom[col] {
				needMove = true
				continue
			}
			if needMove {
				appendCursor(&c.renderBuf, &c.numBuf, row+1+c.offsetRow, col+1+c.offsetCol)
				needMove = false
			}

			switch {
			case t == 0 && b == 0:
				resetAttrs()
				c.renderBuf.WriteByte(' ')
			case t == b:
				if bg != 0 {
					resetAttrs()
				}
				if fg != t {
					c.renderBuf.WriteString(t.FG())
					fg = t
				}
				c.renderBuf.WriteRune(BlockFull)
			case b == 0:
				if bg != 0 {
					resetAttrs()
				}
				if fg != t {
					c.renderBuf.WriteString(t.FG())
					fg = t
				}
				c.renderBuf.WriteRune(BlockUpperHalf)
			case t == 0:
				if bg != 0 {
					resetAttrs()
				}
				if fg != b {
					c.renderBuf.WriteString(b.FG())
					fg = b
				}
				c.renderBuf.WriteRune(BlockLowerHalf)
			default:
				if fg != t {
					c.renderBuf.WriteString(t.FG())
					fg = t
				}
				if bg != b {
					c.renderBuf.WriteString(b.BG())
					bg = b
				}
				c.renderBuf.WriteRune(BlockUpperHalf)
			}
		}
		resetAttrs()
	}

	copy(c.prev, c.pixels)
	clear(c.textDirty)
	c.forceRedraw = false

	writeChunked(w, c.renderBuf.String())
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) as overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	if row < 0 || row >= c.termHeight {
		return
	}
	start := max(col-1, 0)
	end := min(col-1+n, c.termWidth)
	for x := start; x < end; x++ {
		c.textDirty[row*c.termWidth+x] = true
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right bars
	hasV := c.offsetRow >= 1 // Room for top/bottom bars
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	edge := func(row, col int, s string) {
		appendCursor(&buf, &c.numBuf, row, col)
		buf.WriteString(s)
	}
	if hasV {
		if hasH {
			edge(top, left, "┌"+line+"┐")
			edge(bottom, left, "└"+line+"┘")
		} else {
			edge(top, c.offsetCol+1, line)
			edge(bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			edge(row, left, "│")
			edge(row, right, "│")
		}
	}

	writeChunked(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row) relative to the canvas, for text overlays.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
