// Package hsla implements the perceptual color model the compressor
// operates on: hue/saturation/luminance/alpha pixels, RGBA conversion,
// and the two distinct distance metrics used elsewhere in the pipeline.
package hsla

import "math"

// epsilon guards the RGB→HSLA chroma test against float rounding noise.
const epsilon = 1e-10

// PixelEqualityThreshold is the default similarity threshold used when
// two HSLA pixels are compared for equality (grid/pixel-level use).
const PixelEqualityThreshold = 0.007

// Pixel is an HSLA color: Hue in [0,360), Saturation/Luminance/Alpha in [0,1].
type Pixel struct {
	H, S, L, A float64
}

// RGBA is an 8-bit-per-channel color as decoded from a raster.
type RGBA struct {
	R, G, B, A uint8
}

// FromRGBA converts an 8-bit RGBA pixel to HSLA per spec §4.A.
func FromRGBA(p RGBA) Pixel {
	r := float64(p.R) / 255
	g := float64(p.G) / 255
	b := float64(p.B) / 255
	a := float64(p.A) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	l := (max + min) / 2

	if delta < epsilon {
		return Pixel{H: 0, S: 0, L: l, A: a}
	}

	var s float64
	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default: // max == b
		h = (r-g)/delta + 4
	}
	h *= 60

	return Normalize(Pixel{H: h, S: s, L: l, A: a})
}

// ToRGBA converts an HSLA pixel back to 8-bit RGBA per spec §4.A.
func ToRGBA(p Pixel) RGBA {
	if p.S < epsilon {
		v := round8(p.L * 255)
		return RGBA{R: v, G: v, B: v, A: round8(p.A * 255)}
	}

	var q float64
	if p.L < 0.5 {
		q = p.L * (1 + p.S)
	} else {
		q = p.L + p.S - p.L*p.S
	}
	pr := 2*p.L - q
	h := p.H / 360

	r := hueToRGB(pr, q, h+1.0/3)
	g := hueToRGB(pr, q, h)
	b := hueToRGB(pr, q, h-1.0/3)

	return RGBA{
		R: round8(r * 255),
		G: round8(g * 255),
		B: round8(b * 255),
		A: round8(p.A * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func round8(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}

// Normalize reduces hue into [0,360) and clamps S, L, A into [0,1].
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(p Pixel) Pixel {
	h := math.Mod(p.H, 360)
	if h < 0 {
		h += 360
	}
	return Pixel{
		H: h,
		S: clamp01(p.S),
		L: clamp01(p.L),
		A: clamp01(p.A),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// conePoint projects an HSLA pixel into the 3-D cone coordinates used by
// PixelDistance: (sin H * S * L, cos H * S * L, L).
func conePoint(p Pixel) (x, y, z float64) {
	rad := p.H * math.Pi / 180
	x = math.Sin(rad) * p.S * p.L
	y = math.Cos(rad) * p.S * p.L
	z = p.L
	return
}

// PixelDistance is the cone-projection perceptual distance used for pixel
// equality (spec §4.A). It is distinct from PruneDistance and must not be
// substituted for it.
func PixelDistance(a, b Pixel) float64 {
	ax, ay, az := conePoint(a)
	bx, by, bz := conePoint(b)
	dx, dy, dz := ax-bx, ay-by, az-bz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Similar reports whether two pixels are within threshold under
// PixelDistance. Equality is Similar(a, b, PixelEqualityThreshold).
func Similar(a, b Pixel, threshold float64) bool {
	return PixelDistance(a, b) < threshold
}

// Equal is pixel equality at the default threshold (spec §4.A).
func Equal(a, b Pixel) bool {
	return Similar(a, b, PixelEqualityThreshold)
}

// PruneDistance is the HSL-diff color distance used during tree pruning
// (spec §4.A, §4.D). It is distinct from PixelDistance and must not be
// substituted for it.
func PruneDistance(a, b Pixel) float64 {
	dh := math.Abs(a.H - b.H)
	if dh > 180 {
		dh = 360 - dh
	}
	dh /= 180
	ds := a.S - b.S
	dl := a.L - b.L
	return math.Sqrt(dh*dh + ds*ds + dl*dl)
}
