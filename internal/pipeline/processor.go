package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tgvox/tgvox/internal/codec"
	"github.com/tgvox/tgvox/internal/compress"
	"github.com/tgvox/tgvox/internal/hasher"
	"github.com/tgvox/tgvox/internal/report"
)

// processResult holds the result of compressing a single source image.
type processResult struct {
	key   string
	asset report.Asset
	err   error
}

// processImage handles a single source image: decode, compress, encode.
func processImage(src Source, cfg Config) processResult {
	result := processResult{key: src.Stem}

	g, err := codec.Decode(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	res, err := compress.Compress(g, cfg.Quality)
	if err != nil {
		result.err = fmt.Errorf("compress %s: %w", src.RelPath, err)
		return result
	}

	data, err := codec.EncodePNGBytes(res.Grid)
	if err != nil {
		result.err = fmt.Errorf("encode %s: %w", src.RelPath, err)
		return result
	}

	outDir := filepath.Dir(filepath.Join(cfg.OutputDir, src.RelPath))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		result.err = fmt.Errorf("create output dir: %w", err)
		return result
	}

	relDir := filepath.Dir(src.RelPath)
	fileName := fmt.Sprintf("%s_q%s.png", src.Stem, cfg.QualitySuffix)
	relOutPath := filepath.ToSlash(filepath.Join(relDir, fileName))
	outPath := filepath.Join(cfg.OutputDir, relOutPath)

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relOutPath, err)
		return result
	}

	result.asset = report.Asset{
		Original: report.OriginalInfo{
			Width:  g.Width(),
			Height: g.Height(),
			Size:   src.Size,
		},
		CompressedRegions:     res.CompressedRegions,
		CompressionRatio:      res.CompressionRatio,
		ProcessingTimeSeconds: res.ProcessingTimeSeconds,
		OutputPath:            relOutPath,
		OutputSize:            int64(len(data)),
		OutputHash:            hasher.ContentHash(data, 16),
	}
	return result
}
