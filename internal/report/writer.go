package report

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty report for the given quality descriptor
// (a formatted scalar or a named level).
func New(quality string) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Quality:     quality,
		BasePath:    "./",
		Assets:      make(map[string]Asset),
	}
}

// ComputeStats recalculates aggregate statistics from assets.
func (r *Report) ComputeStats() {
	var s Stats
	s.TotalAssets = len(r.Assets)
	var ratioSum float64
	for _, a := range r.Assets {
		s.TotalInputBytes += a.Original.Size
		s.TotalOutputBytes += a.OutputSize
		s.TotalRegions += a.CompressedRegions
		ratioSum += a.CompressionRatio
	}
	if s.TotalAssets > 0 {
		s.AverageRatio = ratioSum / float64(s.TotalAssets)
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file with stable, indented
// formatting.
func WriteJSON(r *Report, path string) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
