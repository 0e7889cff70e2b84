package draw

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Screen composes one terminal frame from a Canvas and the colored text
// drawn over it, then writes the frame in SSH-sized chunks. Text uses the
// canvas's 1-based cell coordinates and centering offset.
type Screen struct {
	canvas  *Canvas
	frame   strings.Builder
	out     *bufio.Writer
	scratch [20]byte
}

// NewScreen returns a Screen that draws c to w.
func NewScreen(w io.Writer, c *Canvas) *Screen {
	return &Screen{
		canvas: c,
		out:    bufio.NewWriterSize(w, 8192),
	}
}

// DrawCanvas adds the changed canvas cells and, when the terminal is
// larger than the canvas, its border. Text goes on top afterwards.
func (s *Screen) DrawCanvas() {
	s.canvas.Render(&s.frame)
	s.canvas.RenderBorder(&s.frame)
}

// Text draws str at canvas cell (col, row) in color c and marks the cells
// so the next frame repaints them once the text is gone. Text that would
// not fit on the canvas is dropped and Text reports false.
func (s *Screen) Text(col, row int, c Color, str string) bool {
	n := utf8.RuneCountInString(str)
	if row < 1 || row > s.canvas.TerminalHeight() || col < 1 || col+n-1 > s.canvas.TerminalWidth() {
		return false
	}
	appendCursor(&s.frame, &s.scratch, row+s.canvas.OffsetRow(), col+s.canvas.OffsetCol())
	s.frame.WriteString(c.FG())
	s.frame.WriteString(str)
	s.frame.WriteString(Reset)
	s.canvas.MarkTextDirty(col, row, n)
	return true
}

// Glyph draws str centered on the cell under the logical point (x, y).
func (s *Screen) Glyph(x, y float64, c Color, str string) bool {
	col, row := s.canvas.LogicalToTerminal(x, y)
	return s.Text(col-utf8.RuneCountInString(str)/2, row, c, str)
}

// Flush writes the composed frame and starts a new one.
func (s *Screen) Flush() error {
	data := s.frame.String()
	s.frame.Reset()
	if err := writeChunked(s.out, data); err != nil {
		return err
	}
	return s.out.Flush()
}
