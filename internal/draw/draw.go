// Package draw renders to a terminal through a half-block pixel canvas.
package draw

import (
	"fmt"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a 24-bit RGB color. The zero value is "no color": an unset
// pixel.
type Color uint32

const colorSet = 1 << 24

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseHex parses "#rrggbb" (the leading # is optional). Malformed input
// yields white so nothing silently disappears.
func ParseHex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return White
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return White
	}
	return colorSet | Color(v)
}

// RGBA returns the 8-bit components.
func (c Color) RGBA() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Scale darkens the color by f in [0,1].
func (c Color) Scale(f float64) Color {
	if c == 0 {
		return 0
	}
	f = max(0, min(1, f))
	r, g, b := c.RGBA()
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}

// FG returns the truecolor foreground escape sequence.
func (c Color) FG() string {
	r, g, b := c.RGBA()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// BG returns the truecolor background escape sequence.
func (c Color) BG() string {
	r, g, b := c.RGBA()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// Reset clears all text attributes.
const Reset = "\033[0m"

var (
	White = RGB(255, 255, 255)
	Gray  = RGB(128, 128, 128)
	Red   = RGB(255, 85, 85)
	Green = RGB(0, 255, 0)
	Cyan  = RGB(0, 255, 255)
	Gold  = RGB(255, 215, 0)
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
