// Package grid implements the dense 2-D HSLA pixel array the rest of
// the compressor operates on (spec §4.B).
package grid

import "github.com/tgvox/tgvox/internal/hsla"

// defaultFill is used to initialize new cells on Resize: opaque white
// with hue/saturation undefined, per spec §4.B.
var defaultFill = hsla.Pixel{H: 0, S: 0, L: 1, A: 1}

// Grid is a fixed-size, row-major array of HSLA pixels.
type Grid struct {
	w, h  int
	pixel []hsla.Pixel
}

// New creates a W×H grid with all pixels defaulted to opaque white.
func New(w, h int) *Grid {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	g := &Grid{w: w, h: h}
	if w > 0 && h > 0 {
		g.pixel = make([]hsla.Pixel, w*h)
		for i := range g.pixel {
			g.pixel[i] = defaultFill
		}
	}
	return g
}

// Width returns the grid's width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid's height.
func (g *Grid) Height() int { return g.h }

// inBounds reports whether (x, y) addresses a valid cell.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// At returns the pixel at (x, y) and true, or the zero pixel and false
// if (x, y) is out of bounds.
func (g *Grid) At(x, y int) (hsla.Pixel, bool) {
	if !g.inBounds(x, y) {
		return hsla.Pixel{}, false
	}
	return g.pixel[g.index(x, y)], true
}

// Set writes the pixel at (x, y). It is a no-op (returns false) if
// (x, y) is out of bounds.
func (g *Grid) Set(x, y int, p hsla.Pixel) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.pixel[g.index(x, y)] = p
	return true
}

// Resize returns a new grid of the given dimensions, preserving pixels
// that overlap the original extent. New cells (from extension) are
// filled with opaque white.
func (g *Grid) Resize(w, h int) *Grid {
	out := New(w, h)
	overlapW := min(w, g.w)
	overlapH := min(h, g.h)
	for y := 0; y < overlapH; y++ {
		for x := 0; x < overlapW; x++ {
			p, _ := g.At(x, y)
			out.Set(x, y, p)
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Equal reports whether g and o have the same dimensions and are
// pixel-wise similar under the default HSLA equality threshold.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.w != o.w || g.h != o.h {
		return false
	}
	for i, p := range g.pixel {
		if !hsla.Equal(p, o.pixel[i]) {
			return false
		}
	}
	return true
}
