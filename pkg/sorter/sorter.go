// Package sorter rewrites the import/export header of a Dart source file into
// a canonical, deterministically ordered and grouped form. Everything outside
// the header zone is preserved byte for byte, and applying the rewrite to its
// own output is always a no-op.
package sorter

import (
	"strings"
)

// Result is the outcome of one rewrite. Changed is true iff Text differs from
// the original content byte for byte. Skipped is true when the header could
// not be parsed safely and the file was left alone.
type Result struct {
	Changed bool
	Text    string
	Skipped bool
}

// Sort rewrites the import/export header of src into canonical form. The
// original content is returned unchanged when the file has no directives or
// when its header cannot be parsed safely (for example a directive whose
// terminator is never found); a file this tool cannot rewrite losslessly is
// left alone.
func Sort(src string, ctx Context, opts Options) Result {
	lines := strings.Split(src, "\n")

	res := parse(lines)
	if !res.ok {
		return Result{Changed: false, Text: src, Skipped: true}
	}
	if len(res.directives) == 0 {
		return Result{Changed: false, Text: src}
	}

	for i := range res.directives {
		res.directives[i].Category = Classify(res.directives[i].Target, ctx)
	}

	text := strings.Join(serialize(res, opts), "\n")
	return Result{Changed: text != src, Text: text}
}
