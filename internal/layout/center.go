// Package layout holds placement arithmetic for widgets on a screen.
package layout

import (
	"fmt"
	"regexp"
	"strconv"
)

// Geometry is a window size and position, written "WxH+X+Y".
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

var geometryPattern = regexp.MustCompile(`^(\d+)x(\d+)(?:([+-]-?\d+)([+-]-?\d+))?$`)

// ParseGeometry parses "WxH" or "WxH+X+Y". Offsets may be negative.
func ParseGeometry(s string) (Geometry, error) {
	m := geometryPattern.FindStringSubmatch(s)
	if m == nil {
		return Geometry{}, fmt.Errorf("invalid geometry %q: expected WxH or WxH+X+Y", s)
	}

	var g Geometry
	var err error
	if g.Width, err = strconv.Atoi(m[1]); err != nil {
		return Geometry{}, fmt.Errorf("invalid geometry %q: width: %w", s, err)
	}
	if g.Height, err = strconv.Atoi(m[2]); err != nil {
		return Geometry{}, fmt.Errorf("invalid geometry %q: height: %w", s, err)
	}
	if m[3] != "" {
		x, err := parseOffset(m[3])
		if err != nil {
			return Geometry{}, fmt.Errorf("invalid geometry %q: %w", s, err)
		}
		y, err := parseOffset(m[4])
		if err != nil {
			return Geometry{}, fmt.Errorf("invalid geometry %q: %w", s, err)
		}
		g.X, g.Y = x, y
	}
	return g, nil
}

// parseOffset accepts "+N", "-N" and "+-N".
func parseOffset(s string) (int, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	return strconv.Atoi(s)
}

// String renders the geometry as "WxH+X+Y".
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", g.Width, g.Height, g.X, g.Y)
}

// Size returns the width and height.
func (g Geometry) Size() (int, int) {
	return g.Width, g.Height
}

// Center returns g moved so it sits in the middle of a screen of the given
// size. The size is unchanged. Offsets are truncated toward zero, so a window
// larger than the screen gets a negative offset.
func Center(screenWidth, screenHeight int, g Geometry) Geometry {
	x := float64(screenWidth)/2 - float64(g.Width)/2
	y := float64(screenHeight)/2 - float64(g.Height)/2
	g.X = int(x)
	g.Y = int(y)
	return g
}

// CenterOffset returns the top-left cell that centers a w×h box on a
// screen, clamped to the screen so the box never starts off-screen.
func CenterOffset(screenWidth, screenHeight, w, h int) (int, int) {
	c := Center(screenWidth, screenHeight, Geometry{Width: w, Height: h})
	return max(c.X, 0), max(c.Y, 0)
}
