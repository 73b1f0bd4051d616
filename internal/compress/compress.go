// Package compress is the compression facade: it maps a quality scalar
// or named level to pruning parameters and orchestrates
// build → prune → render over a pixel grid (spec §4.E).
package compress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tgvox/tgvox/internal/grid"
	"github.com/tgvox/tgvox/internal/stats"
	"github.com/tgvox/tgvox/internal/tree"
)

// Level is one of the five named quality bands (spec §4.E).
type Level string

const (
	Highest Level = "highest"
	High    Level = "high"
	Medium  Level = "medium"
	Low     Level = "low"
	Lowest  Level = "lowest"
)

// levelConfigs are the fixed (similarity, tolerance) pairs per named level.
var levelConfigs = map[Level]tree.Config{
	Highest: {MinimumSimilarityPercentage: 0.99, ColorToleranceThreshold: 0.025},
	High:    {MinimumSimilarityPercentage: 0.99, ColorToleranceThreshold: 0.05},
	Medium:  {MinimumSimilarityPercentage: 0.99, ColorToleranceThreshold: 0.1},
	Low:     {MinimumSimilarityPercentage: 0.95, ColorToleranceThreshold: 0.15},
	Lowest:  {MinimumSimilarityPercentage: 0.90, ColorToleranceThreshold: 0.2},
}

// ConfigForLevel returns the fixed pruning configuration for a named level.
func ConfigForLevel(l Level) (tree.Config, bool) {
	cfg, ok := levelConfigs[l]
	return cfg, ok
}

// ConfigForQuality maps a scalar quality in [0,1] to pruning parameters
// (spec §4.E). q is clamped into [0,1] before the mapping is applied.
func ConfigForQuality(q float64) tree.Config {
	q = clamp01(q)
	similarity := 0.85 + 0.145*math.Pow(q, 1.5)
	tolerance := math.Max(0.005, 0.30*math.Pow(1-q, 2))
	return tree.Config{
		MinimumSimilarityPercentage: similarity,
		ColorToleranceThreshold:     tolerance,
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

// NameForQuality returns the named band a scalar quality falls into
// (spec §4.E).
func NameForQuality(q float64) Level {
	switch {
	case q >= 0.9:
		return Highest
	case q >= 0.7:
		return High
	case q >= 0.3:
		return Medium
	case q >= 0.1:
		return Low
	default:
		return Lowest
	}
}

// ParseQuality parses a CLI-supplied quality string: a decimal in
// [0.0, 1.0], or one of the named labels. Anything else, or an
// out-of-range decimal, falls back to 0.5 with ok=false so the caller
// can emit a non-fatal warning (spec §6/§7).
func ParseQuality(s string) (q float64, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0.5, false
	}
	for _, l := range []Level{Highest, High, Medium, Low, Lowest} {
		if s == string(l) {
			return levelToScalar(l), true
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return 0.5, false
	}
	return v, true
}

// levelToScalar returns a representative scalar for a named level, used
// only so ParseQuality can report a single quality number for named
// input (named levels otherwise bypass the scalar mapping entirely via
// ConfigForLevel).
func levelToScalar(l Level) float64 {
	switch l {
	case Highest:
		return 0.95
	case High:
		return 0.8
	case Medium:
		return 0.5
	case Low:
		return 0.2
	default:
		return 0.05
	}
}

// Result is the output of a compression run: the reconstructed grid plus
// metrics (spec §3 "Compression result").
type Result struct {
	Grid                  *grid.Grid
	OriginalPixels         int
	CompressedRegions      int
	CompressionRatio       float64
	ProcessingTimeSeconds  float64
}

// Quality is a tagged union over the three ways a caller may specify
// quality: a scalar, a named level, or an explicit config.
type Quality struct {
	scalar  *float64
	level   *Level
	cfg     *tree.Config
}

// FromScalar builds a Quality from a quality scalar in [0,1].
func FromScalar(q float64) Quality { return Quality{scalar: &q} }

// FromLevel builds a Quality from a named level.
func FromLevel(l Level) Quality { return Quality{level: &l} }

// FromConfig builds a Quality from an explicit pruning configuration,
// bypassing the quality mapping entirely.
func FromConfig(cfg tree.Config) Quality { return Quality{cfg: &cfg} }

// resolve converts a Quality into a concrete pruning Config.
func (q Quality) resolve() (tree.Config, error) {
	switch {
	case q.cfg != nil:
		return *q.cfg, nil
	case q.level != nil:
		cfg, ok := ConfigForLevel(*q.level)
		if !ok {
			return tree.Config{}, fmt.Errorf("unknown quality level %q", *q.level)
		}
		return cfg, nil
	case q.scalar != nil:
		return ConfigForQuality(*q.scalar), nil
	default:
		return tree.Config{}, fmt.Errorf("empty Quality value")
	}
}

// nowFunc is overridable in tests that need deterministic timing.
var nowFunc = time.Now

// Compress runs the full pipeline: build integral statistics, build the
// adaptive tree, prune with the resolved configuration, and render
// (spec §4.E "Compression pipeline"). ProcessingTimeSeconds measures
// wall-clock duration from the start of the statistics build to the end
// of rendering.
func Compress(g *grid.Grid, q Quality) (Result, error) {
	cfg, err := q.resolve()
	if err != nil {
		return Result{}, err
	}

	start := nowFunc()

	w, h := g.Width(), g.Height()
	totalPixels := w * h
	if totalPixels == 0 {
		return Result{
			Grid:                  grid.New(0, 0),
			OriginalPixels:        0,
			CompressedRegions:     0,
			CompressionRatio:      0,
			ProcessingTimeSeconds: nowFunc().Sub(start).Seconds(),
		}, nil
	}

	in := stats.Build(g)
	root := tree.Build(in, stats.Rect{ULX: 0, ULY: 0, LRX: w - 1, LRY: h - 1})
	tree.Prune(root, cfg)
	out := tree.Render(root, w, h)
	leafCount := tree.CountLeaves(root)

	elapsed := nowFunc().Sub(start).Seconds()

	return Result{
		Grid:                  out,
		OriginalPixels:        totalPixels,
		CompressedRegions:     leafCount,
		CompressionRatio:      float64(leafCount) / float64(totalPixels),
		ProcessingTimeSeconds: elapsed,
	}, nil
}
