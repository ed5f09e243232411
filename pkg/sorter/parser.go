package sorter

import (
	"strings"
)

// parseResult carries the decomposition of a file into its header zone and the
// untouched remainder.
type parseResult struct {
	prefix     []string // library/part-of declarations and top-of-file comment blocks
	directives []Directive
	remainder  []string // everything after the header zone, verbatim
	ok         bool     // false when the header could not be parsed safely
}

// parse scans the file lines and extracts the header zone: an optional prefix
// (library or part-of declaration, leading comment blocks), the import/export
// directives with their attached comments, and the verbatim remainder.
//
// Comments directly above a directive with no blank line in between travel with
// it. A comment block followed by a blank line after directives have begun ends
// the header zone, as does the first statement that is not a directive.
func parse(lines []string) parseResult {
	var (
		prefix     []string
		directives []Directive
		pending    []string
	)
	pendingStart := -1
	seenDirective := false
	i := 0

scan:
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			if len(pending) > 0 {
				if seenDirective {
					// Floating comment block between directives: stop here so it
					// stays with whatever follows it.
					break scan
				}
				prefix = append(prefix, dropGeneratedHeaders(pending)...)
				prefix = append(prefix, "")
				pending = nil
				pendingStart = -1
			}
			i++

		case isLineComment(trimmed):
			if len(pending) == 0 {
				pendingStart = i
			}
			pending = append(pending, line)
			i++

		case isDirectiveStart(trimmed):
			d, next, terminated := consumeDirective(lines, i)
			if !terminated {
				return parseResult{ok: false}
			}
			d.LeadingComments = dropGeneratedHeaders(pending)
			d.seq = len(directives)
			directives = append(directives, d)
			pending = nil
			pendingStart = -1
			seenDirective = true
			i = next

		case !seenDirective && isPrefixStatement(trimmed, i == 0):
			prefix = append(prefix, dropGeneratedHeaders(pending)...)
			pending = nil
			pendingStart = -1
			if strings.HasPrefix(trimmed, "#!") {
				prefix = append(prefix, line)
				i++
				continue
			}
			next, terminated := consumeStatement(lines, i, &prefix)
			if !terminated {
				return parseResult{ok: false}
			}
			i = next

		default:
			break scan
		}
	}

	remStart := i
	if len(pending) > 0 {
		remStart = pendingStart
	}
	return parseResult{
		prefix:     trimTrailingBlank(prefix),
		directives: directives,
		remainder:  lines[remStart:],
		ok:         true,
	}
}

// consumeDirective reads one directive starting at index i, spanning physical
// lines until the statement terminator. Returns the directive, the index of
// the first line after it, and whether the terminator was found.
func consumeDirective(lines []string, i int) (Directive, int, bool) {
	d := Directive{Keyword: keywordOf(strings.TrimSpace(lines[i]))}
	for j := i; j < len(lines); j++ {
		d.Lines = append(d.Lines, lines[j])
		code, comment := splitTrailingComment(lines[j])
		if strings.HasSuffix(strings.TrimSpace(code), ";") {
			d.TrailingComment = comment
			d.Target = extractTarget(d.Lines)
			return d, j + 1, true
		}
	}
	return Directive{}, len(lines), false
}

// consumeStatement appends a non-directive header statement (library, part of)
// to dst, spanning lines until the terminator.
func consumeStatement(lines []string, i int, dst *[]string) (int, bool) {
	for j := i; j < len(lines); j++ {
		*dst = append(*dst, lines[j])
		code, _ := splitTrailingComment(lines[j])
		if strings.HasSuffix(strings.TrimSpace(code), ";") {
			return j + 1, true
		}
	}
	return len(lines), false
}

func isLineComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//")
}

// isDirectiveStart reports whether a trimmed line begins an import or export
// directive.
func isDirectiveStart(trimmed string) bool {
	return keywordOf(trimmed) != ""
}

func keywordOf(trimmed string) string {
	for _, kw := range []string{"import", "export"} {
		rest, found := strings.CutPrefix(trimmed, kw)
		if found && rest != "" && (rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\'' || rest[0] == '"') {
			return kw
		}
	}
	return ""
}

// isPrefixStatement reports whether a trimmed line starts a declaration that
// belongs to the file prefix rather than the sortable directives.
func isPrefixStatement(trimmed string, firstLine bool) bool {
	if firstLine && strings.HasPrefix(trimmed, "#!") {
		return true
	}
	if rest, found := strings.CutPrefix(trimmed, "library"); found {
		return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == ';'
	}
	return strings.HasPrefix(trimmed, "part of ") || strings.HasPrefix(trimmed, "part of\t")
}

// splitTrailingComment splits a line into its code portion and a trailing line
// comment, honoring string literals so that // inside a quoted target does not
// count as a comment.
func splitTrailingComment(line string) (code, comment string) {
	var quote byte
	for k := 0; k < len(line); k++ {
		c := line[k]
		switch {
		case quote != 0:
			if c == '\\' {
				k++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '/' && k+1 < len(line) && line[k+1] == '/':
			return line[:k], line[k:]
		}
	}
	return line, ""
}

// extractTarget returns the first quoted reference in a directive's text, which
// is the target used for classification and ordering. Conditional directives
// keep their platform alternatives verbatim; only the default target matters
// for grouping.
func extractTarget(lines []string) string {
	text := strings.Join(lines, "\n")
	q := strings.IndexAny(text, `'"`)
	if q < 0 {
		return ""
	}
	end := strings.IndexByte(text[q+1:], text[q])
	if end < 0 {
		return ""
	}
	return text[q+1 : q+1+end]
}

// isGeneratedHeader recognizes the group header comments this tool emits, so
// they are replaced rather than accumulated on repeated runs. Only the exact
// generated forms match; a user comment that merely ends in a group label is
// not ours to remove.
func isGeneratedHeader(trimmed string) bool {
	for cat := Category(0); cat < categoryCount; cat++ {
		if trimmed == cat.headerComment(false) || trimmed == cat.headerComment(true) {
			return true
		}
	}
	return false
}

func dropGeneratedHeaders(comments []string) []string {
	var kept []string
	for _, c := range comments {
		if !isGeneratedHeader(strings.TrimSpace(c)) {
			kept = append(kept, c)
		}
	}
	return kept
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
