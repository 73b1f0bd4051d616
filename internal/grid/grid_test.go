package grid

import (
	"testing"

	"github.com/tgvox/tgvox/internal/hsla"
)

func TestNewDefaultsToOpaqueWhite(t *testing.T) {
	g := New(3, 2)
	p, ok := g.At(1, 1)
	if !ok {
		t.Fatal("expected in-bounds read to succeed")
	}
	want := hsla.Pixel{H: 0, S: 0, L: 1, A: 1}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestOutOfBoundsAccessReturnsFalse(t *testing.T) {
	g := New(2, 2)
	if _, ok := g.At(-1, 0); ok {
		t.Error("expected false for negative x")
	}
	if _, ok := g.At(2, 0); ok {
		t.Error("expected false for x == width")
	}
	if ok := g.Set(5, 5, hsla.Pixel{}); ok {
		t.Error("expected Set to report false out of bounds")
	}
}

func TestSetThenGet(t *testing.T) {
	g := New(4, 4)
	want := hsla.Pixel{H: 200, S: 0.5, L: 0.3, A: 1}
	g.Set(2, 3, want)
	got, ok := g.At(2, 3)
	if !ok || got != want {
		t.Errorf("got %+v, ok=%v; want %+v", got, ok, want)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := New(2, 2)
	g.Set(0, 0, hsla.Pixel{H: 10, S: 1, L: 0.5, A: 1})
	g.Set(1, 1, hsla.Pixel{H: 20, S: 1, L: 0.5, A: 1})

	grown := g.Resize(3, 3)
	if grown.Width() != 3 || grown.Height() != 3 {
		t.Fatalf("unexpected dims %dx%d", grown.Width(), grown.Height())
	}
	p00, _ := grown.At(0, 0)
	if p00.H != 10 {
		t.Errorf("expected overlap preserved at (0,0), got %+v", p00)
	}
	p22, _ := grown.At(2, 2)
	want := hsla.Pixel{H: 0, S: 0, L: 1, A: 1}
	if p22 != want {
		t.Errorf("expected new cell defaulted to opaque white, got %+v", p22)
	}

	shrunk := g.Resize(1, 1)
	p0, _ := shrunk.At(0, 0)
	if p0.H != 10 {
		t.Errorf("expected cropped cell preserved, got %+v", p0)
	}
}

func TestEqual(t *testing.T) {
	a := New(2, 2)
	b := New(2, 2)
	if !a.Equal(b) {
		t.Error("two fresh grids of the same size should be equal")
	}
	b.Set(0, 0, hsla.Pixel{H: 90, S: 1, L: 0.1, A: 1})
	if a.Equal(b) {
		t.Error("grids differing in one pixel should not be equal")
	}
	c := New(3, 2)
	if a.Equal(c) {
		t.Error("grids of different dimensions should not be equal")
	}
}
