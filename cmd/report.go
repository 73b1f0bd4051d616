package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tgvox/tgvox/internal/report"
)

var reportTopN int

var reportCmd = &cobra.Command{
	Use:   "report <report_path_or_dir>",
	Short: "Print a summary of a tgvox.report.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportTopN, "top", "n", 5, "show the N assets with the worst compression ratio")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	path := args[0]
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "tgvox.report.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	printReportSummary(&r)
	return nil
}

func printReportSummary(r *report.Report) {
	fmt.Println()
	fmt.Println("  tgvox report")
	fmt.Println()
	fmt.Printf("  Generated:   %s\n", r.GeneratedAt)
	fmt.Printf("  Quality:     %s\n", r.Quality)
	fmt.Printf("  Assets:      %d\n", r.Stats.TotalAssets)
	fmt.Printf("  Regions:     %d\n", r.Stats.TotalRegions)
	fmt.Printf("  Avg ratio:   %.4f\n", r.Stats.AverageRatio)
	fmt.Printf("  Input size:  %s\n", formatBytes(r.Stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(r.Stats.TotalOutputBytes))
	if r.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", r.BuildInfo.Workers)
	}
	fmt.Println()

	type row struct {
		key   string
		asset report.Asset
	}
	rows := make([]row, 0, len(r.Assets))
	for k, a := range r.Assets {
		rows = append(rows, row{k, a})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].asset.CompressionRatio > rows[j].asset.CompressionRatio
	})

	n := reportTopN
	if n > len(rows) {
		n = len(rows)
	}
	if n > 0 {
		fmt.Printf("  Worst %d ratios:\n", n)
		for _, row := range rows[:n] {
			fmt.Printf("    %-24s  ratio=%.4f  regions=%d\n", row.key, row.asset.CompressionRatio, row.asset.CompressedRegions)
		}
		fmt.Println()
	}
}
