package sorter

import (
	"strings"
)

const (
	dartPrefix    = "dart:"
	packagePrefix = "package:"
	flutterPrefix = "package:flutter/"
)

// Context carries the package identity used to classify directives. It is
// built once per file-processing call and never mutated.
type Context struct {
	PackageName string              // the pubspec name of the package being processed
	Siblings    map[string]struct{} // names of the other packages in the same workspace
	HasFlutter  bool                // whether the package depends on Flutter
}

// NewContext builds a classification context from a package name and its
// workspace sibling names.
func NewContext(packageName string, siblingNames []string, hasFlutter bool) Context {
	siblings := make(map[string]struct{}, len(siblingNames))
	for _, name := range siblingNames {
		if name != "" && name != packageName {
			siblings[name] = struct{}{}
		}
	}
	return Context{
		PackageName: packageName,
		Siblings:    siblings,
		HasFlutter:  hasFlutter,
	}
}

// Classify determines which category a directive target belongs to. Rules are
// checked in order; the first match wins:
//
//  1. dart: SDK targets
//  2. package:flutter/ targets, when the package depends on Flutter
//  3. package: targets naming the package itself
//  4. package: targets naming a workspace sibling
//  5. any other package: target (published dependency)
//  6. everything else, including empty or malformed targets (relative path)
//
// Workspace siblings are separated from published dependencies so a reviewer
// can see at a glance which imports cross internal package boundaries.
func Classify(target string, ctx Context) Category {
	if strings.HasPrefix(target, dartPrefix) {
		return DartCategory
	}
	if ctx.HasFlutter && strings.HasPrefix(target, flutterPrefix) {
		return FlutterCategory
	}
	if strings.HasPrefix(target, packagePrefix) {
		name := packageNameOf(target)
		if name != "" && name == ctx.PackageName {
			return ProjectCategory
		}
		if _, sibling := ctx.Siblings[name]; sibling {
			return WorkspaceCategory
		}
		return PackageCategory
	}
	return RelativeCategory
}

// packageNameOf extracts the package-name component of a package: target,
// e.g. "package:collection/collection.dart" -> "collection".
func packageNameOf(target string) string {
	rest := strings.TrimPrefix(target, packagePrefix)
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		return rest[:slash]
	}
	return rest
}
