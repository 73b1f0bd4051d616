package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/tgvox/tgvox/internal/compress"
	"github.com/tgvox/tgvox/internal/report"
)

// Config holds all parameters for a compression batch run.
type Config struct {
	InputDir      string
	OutputDir     string
	Quality       compress.Quality
	QualityLabel  string // human-readable descriptor, recorded in the report
	QualitySuffix string // e.g. "0.50" or "highest", used in output filenames
	Workers       int
	Verbose       bool
}

// Pipeline orchestrates batch compression of a directory of PNGs.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full compress pipeline and returns the batch report.
func (p *Pipeline) Run() (*report.Report, error) {
	sources, err := ScanPNGs(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no png images found in %s", p.cfg.InputDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[tgvox] found %d images\n", len(sources))
	}

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[tgvox] compressing: %s\n", s.RelPath)
			}

			results[idx] = processImage(s, p.cfg)

			if p.cfg.Verbose && results[idx].err == nil {
				fmt.Fprintf(os.Stderr, "[tgvox] done: %s (%d regions, ratio %.4f)\n",
					s.RelPath, results[idx].asset.CompressedRegions, results[idx].asset.CompressionRatio)
			}
		}(i, src)
	}
	wg.Wait()

	r := report.New(p.cfg.QualityLabel)

	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		r.Assets[res.key] = res.asset
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[tgvox] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to compress", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[tgvox] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	r.BuildInfo = &report.BuildInfo{Workers: p.cfg.Workers}
	r.ComputeStats()
	return r, nil
}
