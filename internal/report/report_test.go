package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReportRoundtrip(t *testing.T) {
	r := New("0.50")
	r.BuildInfo = &BuildInfo{Workers: 4}
	r.Assets["banner"] = Asset{
		Original:              OriginalInfo{Width: 64, Height: 64, Size: 12000},
		CompressedRegions:     37,
		CompressionRatio:      37.0 / (64 * 64),
		ProcessingTimeSeconds: 0.012,
		OutputPath:            "banner_q0.50.png",
		OutputHash:            "abcd1234abcd1234",
	}
	r.ComputeStats()

	dir := t.TempDir()
	path := filepath.Join(dir, "tgvox.report.json")
	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var r2 Report
	if err := json.Unmarshal(data, &r2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r2.Version != SupportedReportVersion {
		t.Errorf("version: got %d, want %d", r2.Version, SupportedReportVersion)
	}
	if r2.Quality != "0.50" {
		t.Errorf("quality: got %q", r2.Quality)
	}
	if r2.BuildInfo == nil || r2.BuildInfo.Workers != 4 {
		t.Errorf("build info: got %+v", r2.BuildInfo)
	}
	if r2.Stats.TotalAssets != 1 {
		t.Errorf("total assets: got %d, want 1", r2.Stats.TotalAssets)
	}
	if r2.Stats.TotalRegions != 37 {
		t.Errorf("total regions: got %d, want 37", r2.Stats.TotalRegions)
	}
}

func TestComputeStatsAveragesRatio(t *testing.T) {
	r := New("highest")
	r.Assets["a"] = Asset{CompressionRatio: 0.2, CompressedRegions: 10}
	r.Assets["b"] = Asset{CompressionRatio: 0.4, CompressedRegions: 20}
	r.ComputeStats()

	if r.Stats.TotalAssets != 2 {
		t.Errorf("total assets = %d, want 2", r.Stats.TotalAssets)
	}
	want := 0.3
	if diff := r.Stats.AverageRatio - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("average ratio = %v, want %v", r.Stats.AverageRatio, want)
	}
}
