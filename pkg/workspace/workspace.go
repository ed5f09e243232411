// Package workspace resolves the member packages of a pub workspace: a root
// pubspec.yaml whose workspace key lists member directories, possibly via
// glob patterns.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dartutils/dart-imports-group/pkg/errors"
	"github.com/dartutils/dart-imports-group/pkg/pubspec"
)

// Member is one package of a workspace.
type Member struct {
	Manifest *pubspec.Pubspec
	Dir      string
}

// Resolve expands the workspace member patterns of a root manifest into the
// member packages, in manifest-declared pattern order. Glob matches within one
// pattern are visited in sorted order so runs are deterministic. Directories
// without a pubspec.yaml are skipped silently; a member manifest that exists
// but cannot be parsed is an error.
func Resolve(root *pubspec.Pubspec) ([]Member, error) {
	var members []Member
	seen := make(map[string]bool)

	for _, pattern := range root.Workspace {
		dirs, err := memberDirs(root.Dir, pattern)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", errors.ErrMsgBadWorkspacePattern, pattern, err)
		}
		for _, dir := range dirs {
			if seen[dir] {
				continue
			}
			seen[dir] = true

			if _, err := os.Stat(filepath.Join(dir, pubspec.FileName)); err != nil {
				continue
			}
			manifest, err := pubspec.Load(dir)
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Manifest: manifest, Dir: dir})
		}
	}
	return members, nil
}

// SiblingNames returns the package names of every workspace member except the
// one named self.
func SiblingNames(members []Member, self string) []string {
	var names []string
	for _, m := range members {
		if m.Manifest.Name != "" && m.Manifest.Name != self {
			names = append(names, m.Manifest.Name)
		}
	}
	return names
}

// memberDirs expands one workspace pattern to existing directories.
func memberDirs(rootDir, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(rootDir, pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var dirs []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, match)
	}
	return dirs, nil
}
