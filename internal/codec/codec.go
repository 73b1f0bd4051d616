// Package codec is the external decoder/encoder collaborator described
// in spec §6: it converts between on-disk raster files and the HSLA
// pixel grids the compressor operates on. Decoding/encoding pixels is
// plumbing, not part of the compression algorithm itself.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tgvox/tgvox/internal/grid"
	"github.com/tgvox/tgvox/internal/hsla"
)

// Decode reads an image file at path and converts it to an HSLA grid.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized by the registered
// standard-library and golang.org/x/image decoders; the CLI front-end
// (spec §6) only ever selects .png files from a directory scan, but
// this boundary accepts whatever the stack can decode.
func Decode(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image.Image into an HSLA grid.
func FromImage(img image.Image) *grid.Grid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g := grid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Color.RGBA() is alpha-premultiplied; converting through
			// NRGBAModel yields the straight 8-bit channels HSLA expects.
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, hsla.FromRGBA(hsla.RGBA{
				R: c.R,
				G: c.G,
				B: c.B,
				A: c.A,
			}))
		}
	}
	return g
}

// EncodePNG encodes an HSLA grid as a PNG file at path. PNG is the
// lossless container the compressor re-encodes through (spec §1 "does
// not guarantee monotonic file-size reduction").
func EncodePNG(g *grid.Grid, path string) error {
	data, err := EncodePNGBytes(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EncodePNGBytes encodes an HSLA grid to PNG bytes in memory.
func EncodePNGBytes(g *grid.Grid) ([]byte, error) {
	img := ToImage(g)
	var buf bytes.Buffer
	buf.Grow(64 * 1024)
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes an HSLA grid as a JPEG file at the given quality
// (1-100). Provided alongside PNG for callers that need a lossy
// container for already-compressed previews; the CLI front-end always
// writes PNG per spec §6.
func EncodeJPEG(g *grid.Grid, path string, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return jpeg.Encode(f, ToImage(g), &jpeg.Options{Quality: quality})
}

// ToImage converts an HSLA grid to a standard library RGBA image.
func ToImage(g *grid.Grid) *image.NRGBA {
	w, h := g.Width(), g.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, _ := g.At(x, y)
			rgba := hsla.ToRGBA(p)
			off := img.PixOffset(x, y)
			img.Pix[off+0] = rgba.R
			img.Pix[off+1] = rgba.G
			img.Pix[off+2] = rgba.B
			img.Pix[off+3] = rgba.A
		}
	}
	return img
}
