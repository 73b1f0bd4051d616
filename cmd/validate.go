package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tgvox/tgvox/internal/hasher"
	"github.com/tgvox/tgvox/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report_path>",
	Short: "Validate a tgvox.report.json and check referenced output files",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	reportPath := args[0]

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	baseDir := filepath.Dir(reportPath)
	errs := validateReport(&r, baseDir)

	if len(errs) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d assets, %d regions — all output files present and consistent\n",
			r.Stats.TotalAssets, r.Stats.TotalRegions)
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

// validateReport checks a report's internal consistency and cross-checks
// every asset's output file against disk: existence, size, and content
// hash.
func validateReport(r *report.Report, baseDir string) []string {
	var errs []string

	if r.Version != report.SupportedReportVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	for key, a := range r.Assets {
		if a.Original.Width <= 0 || a.Original.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid original dimensions %dx%d",
				key, a.Original.Width, a.Original.Height))
		}
		if a.CompressedRegions <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: non-positive region count %d", key, a.CompressedRegions))
		}
		if a.CompressionRatio <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid compression ratio %.4f", key, a.CompressionRatio))
		}
		if a.OutputPath == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing output path", key))
			continue
		}

		fullPath := filepath.Join(baseDir, a.OutputPath)
		fileData, err := os.ReadFile(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: output file not found: %s", key, a.OutputPath))
			continue
		}
		if a.OutputSize > 0 && int64(len(fileData)) != a.OutputSize {
			errs = append(errs, fmt.Sprintf("asset %q: size mismatch: report=%d, disk=%d",
				key, a.OutputSize, len(fileData)))
		}
		if a.OutputHash != "" {
			if got := hasher.ContentHash(fileData, len(a.OutputHash)); got != a.OutputHash {
				errs = append(errs, fmt.Sprintf("asset %q: hash mismatch: report=%s, disk=%s",
					key, a.OutputHash, got))
			}
		}
	}

	assetCount := len(r.Assets)
	regionCount := 0
	for _, a := range r.Assets {
		regionCount += a.CompressedRegions
	}
	if r.Stats.TotalAssets != assetCount {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", r.Stats.TotalAssets, assetCount))
	}
	if r.Stats.TotalRegions != regionCount {
		errs = append(errs, fmt.Sprintf("stats.total_regions mismatch: %d != %d", r.Stats.TotalRegions, regionCount))
	}

	return errs
}
