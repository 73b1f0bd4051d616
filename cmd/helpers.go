package cmd

import (
	"fmt"
	"os"
)

// ensureDir creates dir (and any parents) if it does not already exist.
func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
