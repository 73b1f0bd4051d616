package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tgvox/tgvox/internal/compress"
	"github.com/tgvox/tgvox/internal/pipeline"
	"github.com/tgvox/tgvox/internal/report"
)

var compressWorkers int

var compressCmd = &cobra.Command{
	Use:   "compress <input_dir> <output_dir> [quality]",
	Short: "Recompress a directory of PNGs and write a batch report",
	Long: `Scans input_dir for regular files with a case-insensitive .png
extension, recompresses each with the adaptive region partitioner, and
writes every result to output_dir as <stem>_q<suffix>.png.

quality is a decimal in [0.0, 1.0] or one of the named levels
(highest, high, medium, low, lowest). An out-of-range or unrecognized
value falls back to 0.5 with a warning.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().IntVarP(&compressWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	outputDir := args[1]

	qualityArg := "0.5"
	if len(args) == 3 {
		qualityArg = args[2]
	}

	q, label, suffix := resolveQuality(qualityArg)

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("quality: %s", label)

	if err := ensureDir(absOutput); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	start := time.Now()

	p := pipeline.New(pipeline.Config{
		InputDir:      absInput,
		OutputDir:     absOutput,
		Quality:       q,
		QualityLabel:  label,
		QualitySuffix: suffix,
		Workers:       compressWorkers,
		Verbose:       verbose,
	})

	r, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	reportPath := filepath.Join(absOutput, "tgvox.report.json")
	if err := report.WriteJSON(r, reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printCompressReport(r, time.Since(start))
	return nil
}

// resolveQuality parses a CLI quality argument into a compress.Quality,
// a human-readable label for the report, and a filename suffix, per
// spec §6. Named levels bypass the scalar quality→config mapping
// entirely and use their fixed configuration.
func resolveQuality(raw string) (compress.Quality, string, string) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, l := range []compress.Level{compress.Highest, compress.High, compress.Medium, compress.Low, compress.Lowest} {
		if name == string(l) {
			return compress.FromLevel(l), string(l), string(l)
		}
	}

	q, ok := compress.ParseQuality(raw)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: invalid quality %q, falling back to 0.5\n", raw)
	}
	return compress.FromScalar(q), fmt.Sprintf("%.2f", q), fmt.Sprintf("%.2f", q)
}

func printCompressReport(r *report.Report, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("  tgvox compress complete")
	fmt.Println()
	fmt.Printf("  Images:      %d\n", r.Stats.TotalAssets)
	fmt.Printf("  Regions:     %d\n", r.Stats.TotalRegions)
	fmt.Printf("  Avg ratio:   %.4f\n", r.Stats.AverageRatio)
	fmt.Printf("  Input size:  %s\n", formatBytes(r.Stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(r.Stats.TotalOutputBytes))
	fmt.Printf("  Quality:     %s\n", r.Quality)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}
