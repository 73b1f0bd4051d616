// Package report defines and writes the batch summary a `tgvox
// compress` run produces: one entry per processed image plus
// aggregate totals, modeled on the teacher's asset manifest.
package report

// Report is the top-level output of a compression batch.
type Report struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Quality     string           `json:"quality"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures batch-level parameters for diagnostics.
type BuildInfo struct {
	Workers int `json:"workers"`
}

// Asset describes one compressed image.
type Asset struct {
	Original              OriginalInfo `json:"original"`
	CompressedRegions      int          `json:"compressed_regions"`
	CompressionRatio       float64      `json:"compression_ratio"`
	ProcessingTimeSeconds  float64      `json:"processing_time_seconds"`
	OutputPath             string       `json:"output_path"`
	OutputSize             int64        `json:"output_size"`
	OutputHash             string       `json:"output_hash"` // xxHash64, 16 hex chars
}

// OriginalInfo holds metadata about the source image.
type OriginalInfo struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Size   int64 `json:"size"`
}

// Stats aggregates batch metrics.
type Stats struct {
	TotalAssets      int     `json:"total_assets"`
	TotalInputBytes  int64   `json:"total_input_bytes"`
	TotalOutputBytes int64   `json:"total_output_bytes"`
	TotalRegions     int     `json:"total_regions"`
	AverageRatio     float64 `json:"average_compression_ratio"`
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
