package stats

import (
	"math"
	"testing"

	"github.com/tgvox/tgvox/internal/grid"
	"github.com/tgvox/tgvox/internal/hsla"
)

func uniformGrid(w, h int, p hsla.Pixel) *grid.Grid {
	g := grid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, p)
		}
	}
	return g
}

func TestAreaMatchesPixelCount(t *testing.T) {
	g := uniformGrid(5, 4, hsla.Pixel{H: 10, S: 0.5, L: 0.5, A: 1})
	in := Build(g)

	rects := []Rect{
		{0, 0, 4, 3},
		{1, 1, 3, 2},
		{0, 0, 0, 0},
		{4, 3, 4, 3},
	}
	for _, r := range rects {
		want := (r.LRX - r.ULX + 1) * (r.LRY - r.ULY + 1)
		if got := in.Area(r); got != want {
			t.Errorf("Area(%+v) = %d, want %d", r, got, want)
		}
	}
}

func TestHueHistogramMatchesNaiveCount(t *testing.T) {
	g := grid.New(6, 6)
	hues := []float64{0, 15, 95, 200, 359, 42}
	i := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			h := hues[i%len(hues)]
			i++
			g.Set(x, y, hsla.Pixel{H: h, S: 0.5, L: 0.5, A: 1})
		}
	}
	in := Build(g)

	r := Rect{ULX: 1, ULY: 1, LRX: 4, LRY: 4}
	got := in.HueHistogram(r)

	var naive [HueBins]int64
	for y := r.ULY; y <= r.LRY; y++ {
		for x := r.ULX; x <= r.LRX; x++ {
			p, _ := g.At(x, y)
			bin := int(math.Floor(p.H / 10))
			if bin > HueBins-1 {
				bin = HueBins - 1
			}
			naive[bin]++
		}
	}
	if got != naive {
		t.Errorf("HueHistogram = %v, want %v", got, naive)
	}

	var sum int64
	for _, c := range got {
		sum += c
	}
	if int(sum) != r.Area() {
		t.Errorf("histogram sum = %d, want area %d", sum, r.Area())
	}
}

func TestUniformImageZeroEntropyAndMeanEqualsPixel(t *testing.T) {
	p := hsla.Pixel{H: 123, S: 0.4, L: 0.6, A: 1}
	g := uniformGrid(5, 5, p)
	in := Build(g)

	rects := []Rect{
		{0, 0, 4, 4},
		{1, 1, 3, 3},
		{2, 2, 2, 2},
	}
	for _, r := range rects {
		if e := in.Entropy(r); e != 0 {
			t.Errorf("Entropy(%+v) = %v, want 0", r, e)
		}
		mean := in.MeanColor(r)
		if math.Abs(mean.H-p.H) > 1e-9 || math.Abs(mean.S-p.S) > 1e-9 || math.Abs(mean.L-p.L) > 1e-9 {
			t.Errorf("MeanColor(%+v) = %+v, want %+v", r, mean, p)
		}
	}
}

func TestGradientMeanColorLowSaturationHighEntropy(t *testing.T) {
	g := grid.New(16, 1)
	for x := 0; x < 16; x++ {
		h := float64(x) * 359.0 / 15.0
		g.Set(x, 0, hsla.Pixel{H: h, S: 1.0, L: 0.5, A: 1})
	}
	in := Build(g)
	r := Rect{0, 0, 15, 0}

	mean := in.MeanColor(r)
	if mean.S > 0.1 {
		t.Errorf("expected near-zero saturation from hue cancellation, got %v", mean.S)
	}

	e := in.Entropy(r)
	if e < 3.5 || e > 4.1 {
		t.Errorf("expected entropy near log2(16)=4, got %v", e)
	}
}

func TestEntropyOfEmptyRectIsZero(t *testing.T) {
	in := &Integral{w: 0, h: 0}
	if e := in.Entropy(Rect{0, 0, -1, -1}); e != 0 {
		t.Errorf("expected 0 entropy for empty rect, got %v", e)
	}
}
