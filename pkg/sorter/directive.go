package sorter

// Directive represents a single import or export statement, including any
// continuation lines and the comments attached to it.
type Directive struct {
	Keyword         string   // "import" or "export"
	Target          string   // target reference, e.g. dart:io or package:flutter/material.dart
	Lines           []string // the directive's physical lines, verbatim
	LeadingComments []string // comment lines directly above, no blank line in between
	TrailingComment string   // same-line comment after the terminator, empty if none
	Category        Category
	seq             int // original position, used as a stable-sort tie-break
}

// Category represents a directive group. The declaration order below is the
// canonical output order.
type Category int

const (
	DartCategory Category = iota
	FlutterCategory
	PackageCategory
	WorkspaceCategory
	ProjectCategory
	RelativeCategory

	categoryCount
)

// categoryLabels are the group header comments emitted above each non-empty
// category when headers are enabled.
var categoryLabels = [categoryCount]string{
	DartCategory:      "Dart imports:",
	FlutterCategory:   "Flutter imports:",
	PackageCategory:   "Package imports:",
	WorkspaceCategory: "Workspace imports:",
	ProjectCategory:   "Project imports:",
	RelativeCategory:  "Relative imports:",
}

// categoryEmojis decorate the header comments when emoji output is enabled.
var categoryEmojis = [categoryCount]string{
	DartCategory:      "\U0001F3AF",       // dart board
	FlutterCategory:   "\U0001F426",       // bird
	PackageCategory:   "\U0001F4E6",       // package
	WorkspaceCategory: "\U0001F3D8️", // houses
	ProjectCategory:   "\U0001F30E",       // globe
	RelativeCategory:  "\U0001F4C1",       // folder
}

// headerComment renders the group header comment for a category.
func (c Category) headerComment(emoji bool) string {
	if emoji {
		return "// " + categoryEmojis[c] + " " + categoryLabels[c]
	}
	return "// " + categoryLabels[c]
}
