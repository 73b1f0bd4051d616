package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tgvox/tgvox/internal/compress"
)

func writeSolidPNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestRunCompressesDirectoryOfPNGs(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	writeSolidPNG(t, filepath.Join(inDir, "a.png"), 8, 8, color.NRGBA{R: 200, G: 20, B: 20, A: 255})
	writeSolidPNG(t, filepath.Join(inDir, "b.PNG"), 4, 4, color.NRGBA{R: 10, G: 10, B: 200, A: 255})
	// Non-PNG files must be ignored.
	os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("hello"), 0o644)

	p := New(Config{
		InputDir:      inDir,
		OutputDir:     outDir,
		Quality:       compress.FromScalar(0.5),
		QualityLabel:  "0.50",
		QualitySuffix: "0.50",
		Workers:       2,
	})

	r, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(r.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d: %+v", len(r.Assets), r.Assets)
	}

	for _, name := range []string{"a", "b"} {
		a, ok := r.Assets[name]
		if !ok {
			t.Fatalf("missing asset %q in report: %+v", name, r.Assets)
		}
		if a.CompressedRegions < 1 {
			t.Errorf("asset %q: expected at least 1 region, got %d", name, a.CompressedRegions)
		}
		outPath := filepath.Join(outDir, a.OutputPath)
		if _, err := os.Stat(outPath); err != nil {
			t.Errorf("expected output file %s to exist: %v", outPath, err)
		}
	}

	if r.Stats.TotalAssets != 2 {
		t.Errorf("report stats total assets = %d, want 2", r.Stats.TotalAssets)
	}
}

func TestRunErrorsOnEmptyDirectory(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	p := New(Config{
		InputDir:      inDir,
		OutputDir:     outDir,
		Quality:       compress.FromScalar(0.5),
		QualitySuffix: "0.50",
	})
	if _, err := p.Run(); err == nil {
		t.Error("expected an error for an empty input directory")
	}
}
