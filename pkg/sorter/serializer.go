package sorter

import (
	"sort"
	"strings"
)

// Options controls how the canonical header zone is rendered.
type Options struct {
	InsertHeaders bool // emit a group header comment above each non-empty category
	EmojiHeaders  bool // decorate group headers with a per-category emoji
	StripComments bool // drop user comments attached to directives
}

// serialize renders the canonical text for a parsed file: the prefix, the
// directives grouped in fixed category order and sorted within each group,
// and the verbatim remainder separated by exactly one blank line.
func serialize(res parseResult, opts Options) []string {
	var out []string

	if len(res.prefix) > 0 {
		out = append(out, res.prefix...)
		out = append(out, "")
	}

	for cat := Category(0); cat < categoryCount; cat++ {
		group := groupFor(res.directives, cat)
		if len(group) == 0 {
			continue
		}
		sortGroup(group)
		if opts.InsertHeaders {
			out = append(out, cat.headerComment(opts.EmojiHeaders))
		}
		for _, d := range group {
			out = appendDirective(out, d, opts)
		}
		out = append(out, "")
	}

	// The blank line closing the last category block doubles as the trailing
	// newline when nothing follows the header zone.
	out = append(out, res.remainder...)
	return out
}

func groupFor(directives []Directive, cat Category) []Directive {
	var group []Directive
	for _, d := range directives {
		if d.Category == cat {
			group = append(group, d)
		}
	}
	return group
}

// sortGroup orders directives by target reference, case-insensitive, keeping
// the original relative order on ties so repeated runs are stable.
func sortGroup(group []Directive) {
	sort.SliceStable(group, func(i, j int) bool {
		a := strings.ToLower(group[i].Target)
		b := strings.ToLower(group[j].Target)
		if a != b {
			return a < b
		}
		return group[i].seq < group[j].seq
	})
}

// appendDirective emits one directive with its attached comments. When comment
// stripping is on, leading and trailing user comments are dropped; the
// directive's own lines are always emitted verbatim otherwise.
func appendDirective(out []string, d Directive, opts Options) []string {
	if !opts.StripComments {
		out = append(out, d.LeadingComments...)
	}
	if opts.StripComments && d.TrailingComment != "" {
		last := len(d.Lines) - 1
		out = append(out, d.Lines[:last]...)
		trimmed := strings.TrimRight(strings.TrimSuffix(d.Lines[last], d.TrailingComment), " \t")
		return append(out, trimmed)
	}
	return append(out, d.Lines...)
}
