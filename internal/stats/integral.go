// Package stats builds the integral-image (summed-area table) structure
// that gives the tree builder O(1) mean-color and hue-entropy queries
// over any axis-aligned rectangle (spec §4.C).
package stats

import (
	"math"

	"github.com/tgvox/tgvox/internal/grid"
	"github.com/tgvox/tgvox/internal/hsla"
)

// HueBins is the number of hue-histogram bins (one per 10 degrees).
const HueBins = 36

// Rect is an inclusive, axis-aligned rectangle: 0 <= ULX <= LRX < W,
// 0 <= ULY <= LRY < H.
type Rect struct {
	ULX, ULY, LRX, LRY int
}

// Area returns the pixel count covered by r.
func (r Rect) Area() int {
	return (r.LRX - r.ULX + 1) * (r.LRY - r.ULY + 1)
}

// Integral holds prefix-sum tables over an HSLA grid, built once and
// queried any number of times in O(1) per rectangle. Immutable after
// construction; queries are pure and safe to call concurrently.
type Integral struct {
	w, h int

	hx, hy, sat, lum []float64        // W*H prefix sums
	hist             [][HueBins]int32 // W*H prefix sums, one histogram per cell
}

// Build computes the integral-statistics tables for g in a single
// row-major sweep, per spec §4.C.
func Build(g *grid.Grid) *Integral {
	w, h := g.Width(), g.Height()
	in := &Integral{
		w: w, h: h,
		hx:   make([]float64, w*h),
		hy:   make([]float64, w*h),
		sat:  make([]float64, w*h),
		lum:  make([]float64, w*h),
		hist: make([][HueBins]int32, w*h),
	}
	if w == 0 || h == 0 {
		return in
	}

	idx := func(x, y int) int { return y*w + x }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, _ := g.At(x, y)
			rad := p.H * math.Pi / 180
			hx := p.S * math.Cos(rad)
			hy := p.S * math.Sin(rad)
			bin := int(math.Floor(p.H / 10))
			if bin > HueBins-1 {
				bin = HueBins - 1
			}
			if bin < 0 {
				bin = 0
			}

			var left, top, topLeft int
			haveLeft := x > 0
			haveTop := y > 0
			if haveLeft {
				left = idx(x-1, y)
			}
			if haveTop {
				top = idx(x, y-1)
			}
			haveTopLeft := haveLeft && haveTop
			if haveTopLeft {
				topLeft = idx(x-1, y-1)
			}

			i := idx(x, y)

			addf := func(table []float64, contribution float64) {
				var l, t, tl float64
				if haveLeft {
					l = table[left]
				}
				if haveTop {
					t = table[top]
				}
				if haveTopLeft {
					tl = table[topLeft]
				}
				table[i] = contribution + l + t - tl
			}
			addf(in.hx, hx)
			addf(in.hy, hy)
			addf(in.sat, p.S)
			addf(in.lum, p.L)

			var hbin [HueBins]int32
			for b := 0; b < HueBins; b++ {
				var l, t, tl int32
				if haveLeft {
					l = in.hist[left][b]
				}
				if haveTop {
					t = in.hist[top][b]
				}
				if haveTopLeft {
					tl = in.hist[topLeft][b]
				}
				hbin[b] = l + t - tl
			}
			hbin[bin]++
			in.hist[i] = hbin
		}
	}
	return in
}

// rectSumF computes the rectangle sum of a scalar prefix-sum table via
// inclusion-exclusion, treating out-of-bounds neighbors as 0.
func (in *Integral) rectSumF(table []float64, r Rect) float64 {
	idx := func(x, y int) int { return y*in.w + x }

	total := table[idx(r.LRX, r.LRY)]
	if r.ULX > 0 {
		total -= table[idx(r.ULX-1, r.LRY)]
	}
	if r.ULY > 0 {
		total -= table[idx(r.LRX, r.ULY-1)]
	}
	if r.ULX > 0 && r.ULY > 0 {
		total += table[idx(r.ULX-1, r.ULY-1)]
	}
	return total
}

// MeanColor returns the saturation-weighted-unit-vector mean HSLA color
// of r (spec §4.C). Alpha is always 1.0.
func (in *Integral) MeanColor(r Rect) hsla.Pixel {
	n := float64(r.Area())
	sumHx := in.rectSumF(in.hx, r)
	sumHy := in.rectSumF(in.hy, r)
	sumS := in.rectSumF(in.sat, r)
	sumL := in.rectSumF(in.lum, r)

	hx := sumHx / n
	hy := sumHy / n
	s := sumS / n
	l := sumL / n

	h := math.Atan2(hy, hx) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return hsla.Pixel{H: h, S: s, L: l, A: 1.0}
}

// HueHistogram returns the length-HueBins vector of per-bin pixel
// counts over r. The sum of the returned counts equals r.Area().
func (in *Integral) HueHistogram(r Rect) [HueBins]int64 {
	idx := func(x, y int) int { return y*in.w + x }

	var out [HueBins]int64
	lr := in.hist[idx(r.LRX, r.LRY)]
	for b := 0; b < HueBins; b++ {
		out[b] = int64(lr[b])
	}
	if r.ULX > 0 {
		ul := in.hist[idx(r.ULX-1, r.LRY)]
		for b := 0; b < HueBins; b++ {
			out[b] -= int64(ul[b])
		}
	}
	if r.ULY > 0 {
		ur := in.hist[idx(r.LRX, r.ULY-1)]
		for b := 0; b < HueBins; b++ {
			out[b] -= int64(ur[b])
		}
	}
	if r.ULX > 0 && r.ULY > 0 {
		uul := in.hist[idx(r.ULX-1, r.ULY-1)]
		for b := 0; b < HueBins; b++ {
			out[b] += int64(uul[b])
		}
	}
	return out
}

// Entropy returns the Shannon entropy in bits of r's hue-bin
// distribution. Returns 0 for an empty (non-positive area) rectangle.
func (in *Integral) Entropy(r Rect) float64 {
	n := r.Area()
	if n <= 0 {
		return 0
	}
	hist := in.HueHistogram(r)
	nf := float64(n)
	var e float64
	for _, c := range hist {
		if c <= 0 {
			continue
		}
		pb := float64(c) / nf
		e -= pb * math.Log2(pb)
	}
	return e
}

// Area returns the rectangle's pixel count (spec §8 property 3).
func (in *Integral) Area(r Rect) int {
	return r.Area()
}
