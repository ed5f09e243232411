package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// sourceRoots are the standard directories of a Dart package that hold source
// files.
var sourceRoots = []string{"lib", "bin", "test", "example", "tool"}

// IsDartFile checks if a file is a Dart source file.
func IsDartFile(filename string) bool {
	return strings.HasSuffix(filename, ".dart")
}

// IsGeneratedDartFile checks if a file is tool-generated Dart output, which is
// never rewritten.
func IsGeneratedDartFile(filename string) bool {
	for _, suffix := range []string{".g.dart", ".freezed.dart", ".gr.dart", ".mocks.dart"} {
		if strings.HasSuffix(filename, suffix) {
			return true
		}
	}
	return false
}

// FindDartFiles finds all Dart source files under the standard source roots of
// a package directory, in directory-listing order.
func FindDartFiles(packageDir string) ([]string, error) {
	var dartFiles []string

	for _, root := range sourceRoots {
		dir := filepath.Join(packageDir, root)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}

		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Skip hidden directories and build output (but not the root directory)
			if info.IsDir() && path != dir {
				name := filepath.Base(path)
				if name == "build" || strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.IsDir() && IsDartFile(filepath.Base(path)) {
				dartFiles = append(dartFiles, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return dartFiles, nil
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
