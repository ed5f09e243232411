package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtils_IsDartFile(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"dart file", "main.dart", true},
		{"nested dart file", "lib/src/app.dart", true},
		{"generated dart file", "model.g.dart", true},
		{"go file", "main.go", false},
		{"yaml file", "pubspec.yaml", false},
		{"no extension", "Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, IsDartFile(tt.filename), "IsDartFile(%q)", tt.filename)
		})
	}
}

func TestUtils_IsGeneratedDartFile(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"build_runner output", "model.g.dart", true},
		{"freezed output", "model.freezed.dart", true},
		{"auto_route output", "router.gr.dart", true},
		{"mockito output", "service.mocks.dart", true},
		{"plain dart file", "model.dart", false},
		{"dotted but not generated", "model.view.dart", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, IsGeneratedDartFile(tt.filename), "IsGeneratedDartFile(%q)", tt.filename)
		})
	}
}

func TestUtils_FindDartFiles(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(tempDir, rel)
		req.NoError(os.MkdirAll(filepath.Dir(path), 0755))
		req.NoError(os.WriteFile(path, []byte("// dart"), 0644))
	}

	write("lib/main.dart")
	write("lib/src/app.dart")
	write("bin/run.dart")
	write("test/app_test.dart")
	write("lib/.hidden/skipped.dart")
	write("lib/build/skipped.dart")
	write("root_level.dart")     // outside the standard source roots
	write("lib/readme.md")       // not a Dart file
	write("packages/pkg/a.dart") // not a standard source root

	files, err := FindDartFiles(tempDir)
	req.NoError(err)

	var rels []string
	for _, f := range files {
		rel, err := filepath.Rel(tempDir, f)
		req.NoError(err)
		rels = append(rels, filepath.ToSlash(rel))
	}

	req.ElementsMatch([]string{
		"lib/main.dart",
		"lib/src/app.dart",
		"bin/run.dart",
		"test/app_test.dart",
	}, rels)
}

func TestUtils_FindDartFiles_emptyPackage(t *testing.T) {
	req := require.New(t)

	files, err := FindDartFiles(t.TempDir())
	req.NoError(err)
	req.Empty(files)
}

func TestUtils_IsDirectory(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	file := filepath.Join(tempDir, "a.dart")
	req.NoError(os.WriteFile(file, []byte("// dart"), 0644))

	isDir, err := IsDirectory(tempDir)
	req.NoError(err)
	req.True(isDir)

	isDir, err = IsDirectory(file)
	req.NoError(err)
	req.False(isDir)

	_, err = IsDirectory(filepath.Join(tempDir, "missing"))
	req.Error(err)
}
