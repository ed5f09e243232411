package ignore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"double star crosses directories", "lib/generated/**", "lib/generated/a/b.dart", true},
		{"double star prefix", "**/*.g.dart", "lib/src/model.g.dart", true},
		{"single star stays in directory", "test/*", "test/app_test.dart", true},
		{"single star does not descend", "test/*", "test/sub/app_test.dart", false},
		{"exact file", "lib/main.dart", "lib/main.dart", true},
		{"no match", "lib/**", "bin/run.dart", false},
		{"malformed pattern matches nothing", "[", "lib/main.dart", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, Matches(tt.pattern, tt.path), "Matches(%q, %q)", tt.pattern, tt.path)
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	req := require.New(t)
	m := NewMatcher([]string{"lib/generated/**", "**/*.mocks.dart", ""})

	req.True(m.Match("lib/generated/schema.dart"))
	req.True(m.Match("test/service.mocks.dart"))
	req.False(m.Match("lib/main.dart"))

	// Windows-style and ./-prefixed paths are normalized before matching
	req.True(m.Match("lib\\generated\\schema.dart"))
	req.True(m.Match("./lib/generated/schema.dart"))
}

func TestMatcher_Empty(t *testing.T) {
	req := require.New(t)
	m := NewMatcher(nil)

	req.False(m.Match("lib/main.dart"))
}

func TestNormalize(t *testing.T) {
	req := require.New(t)

	req.Equal("lib/a.dart", Normalize("./lib/a.dart"))
	req.Equal("lib/a.dart", Normalize("lib\\a.dart"))
	req.Equal("lib/a.dart", Normalize("/lib/a.dart"))
}
