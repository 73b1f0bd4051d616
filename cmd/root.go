package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tgvox",
	Short: "Content-aware lossy raster compressor",
	Long: `tgvox recompresses raster images by partitioning them into a small
number of axis-aligned, single-color rectangles: uniform areas collapse
into large regions, detailed areas stay finely subdivided.

A scalar quality in [0,1] (or a named level: highest, high, medium, low,
lowest) controls how aggressively similar regions are merged.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"tgvox %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[tgvox] "+format+"\n", args...)
	}
}
