package utils

import (
	"os"
	"path/filepath"
)

// FindPackageRoot walks up from a file or directory path to the nearest
// directory containing a pubspec.yaml. Returns an empty string when no
// manifest is found.
func FindPackageRoot(path string) string {
	// Convert to absolute path if relative
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	iterations := 0
	maxIterations := 20 // Prevent infinite loop

	for iterations < maxIterations {
		iterations++

		if _, err := os.Stat(filepath.Join(dir, "pubspec.yaml")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
