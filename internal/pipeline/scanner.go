package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered PNG file to compress.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Stem is the filename without its extension.
	Stem string
	// Size is the file size in bytes.
	Size int64
}

// ScanPNGs walks inputDir and returns every regular file with a
// case-insensitive .png extension (spec §6).
func ScanPNGs(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Skip hidden directories.
			if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".png" {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Stem:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
