// Package pubspec loads and models the pubspec.yaml manifest of a Dart
// package, including the tool's own configuration block.
package pubspec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dartutils/dart-imports-group/pkg/errors"
)

// FileName is the manifest file name of a Dart package.
const FileName = "pubspec.yaml"

// Config is this tool's settings block inside the manifest, under the
// dart_imports_group key:
//
//	dart_imports_group:
//	  emojis: true
//	  comments: false
//	  headers: true
//	  ignored_files:
//	    - lib/generated/**
type Config struct {
	Emojis       *bool    `yaml:"emojis"`
	Comments     *bool    `yaml:"comments"`
	Headers      *bool    `yaml:"headers"`
	IgnoredFiles []string `yaml:"ignored_files"`
}

// Pubspec is the subset of the manifest this tool consumes.
type Pubspec struct {
	Name            string         `yaml:"name"`
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
	Workspace       []string       `yaml:"workspace"`
	Config          *Config        `yaml:"dart_imports_group"`

	// Dir is the directory the manifest was loaded from. Not part of the
	// manifest itself.
	Dir string `yaml:"-"`
}

// Load reads and parses the pubspec.yaml in dir.
func Load(dir string) (*Pubspec, error) {
	path := filepath.Join(dir, FileName)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToReadManifest, path, err)
	}

	var p Pubspec
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToParseManifest, path, err)
	}
	p.Dir = dir
	return &p, nil
}

// HasFlutter reports whether the package depends on the Flutter SDK.
func (p *Pubspec) HasFlutter() bool {
	if _, ok := p.Dependencies["flutter"]; ok {
		return true
	}
	_, ok := p.DevDependencies["flutter"]
	return ok
}

// IsWorkspaceRoot reports whether the manifest declares pub workspace members.
func (p *Pubspec) IsWorkspaceRoot() bool {
	return len(p.Workspace) > 0
}

// EffectiveConfig returns the manifest's tool configuration, falling back to
// the given parent configuration (the workspace root's) for unset fields.
func (p *Pubspec) EffectiveConfig(parent *Config) Config {
	merged := Config{}
	for _, c := range []*Config{parent, p.Config} {
		if c == nil {
			continue
		}
		if c.Emojis != nil {
			merged.Emojis = c.Emojis
		}
		if c.Comments != nil {
			merged.Comments = c.Comments
		}
		if c.Headers != nil {
			merged.Headers = c.Headers
		}
		if len(c.IgnoredFiles) > 0 {
			merged.IgnoredFiles = c.IgnoredFiles
		}
	}
	return merged
}
