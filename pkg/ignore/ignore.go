// Package ignore matches package-relative file paths against glob patterns
// from the ignored_files configuration.
package ignore

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a file path is excluded from processing.
type Matcher struct {
	patterns []string
}

// NewMatcher compiles a set of glob patterns. Patterns use forward slashes and
// are matched against paths relative to the package root; ** crosses directory
// boundaries.
func NewMatcher(patterns []string) *Matcher {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = Normalize(p)
		if p != "" {
			normalized = append(normalized, p)
		}
	}
	return &Matcher{patterns: normalized}
}

// Match reports whether the package-relative path matches any pattern.
func (m *Matcher) Match(relPath string) bool {
	relPath = Normalize(relPath)
	for _, pattern := range m.patterns {
		if Matches(pattern, relPath) {
			return true
		}
	}
	return false
}

// Matches reports whether a single glob pattern matches a normalized
// forward-slash relative path. A malformed pattern matches nothing.
func Matches(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

// Normalize converts a path to forward slashes and strips a leading "./".
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return strings.TrimPrefix(p, "/")
}
