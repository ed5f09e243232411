// Package runner drives the rewrite over a package or a whole pub workspace:
// it loads manifests, resolves workspace members, discovers Dart files and
// applies the sorter to each one in turn.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/dartutils/dart-imports-group/pkg/errors"
	"github.com/dartutils/dart-imports-group/pkg/ignore"
	"github.com/dartutils/dart-imports-group/pkg/pubspec"
	"github.com/dartutils/dart-imports-group/pkg/sorter"
	"github.com/dartutils/dart-imports-group/pkg/utils"
	"github.com/dartutils/dart-imports-group/pkg/workspace"
)

// Overrides are formatting settings forced from the command line. Nil fields
// fall back to the manifest configuration.
type Overrides struct {
	Emojis        *bool
	StripComments *bool
	Headers       *bool
}

// RunConfig configures one run of the tool.
type RunConfig struct {
	Path         string   // file or directory inside the package or workspace
	CheckOnly    bool     // report files that would change instead of writing
	Verbose      bool     // debug logging
	ExtraIgnores []string // glob patterns added to the manifest's ignored_files
	Overrides    Overrides
}

// Stats accumulates per-file outcomes across a run. It is threaded through
// and returned by each processing call; the runner itself holds no state
// between invocations.
type Stats struct {
	Sorted    int // files rewritten, or that would change in check mode
	Unchanged int // files already in canonical form
	Skipped   int // ignored, generated or unparsable files
	Errors    int // files that could not be read or written
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Sorted:    s.Sorted + o.Sorted,
		Unchanged: s.Unchanged + o.Unchanged,
		Skipped:   s.Skipped + o.Skipped,
		Errors:    s.Errors + o.Errors,
	}
}

var (
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Runner processes packages strictly sequentially; each file's result is a
// pure function of its own content and the package's classification context.
type Runner struct {
	config RunConfig
	logger *log.Logger
	out    io.Writer
	single string // absolute path when only one file is targeted
}

// New creates a Runner for the given configuration.
func New(config RunConfig) *Runner {
	logger := log.New(os.Stderr)
	if config.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return &Runner{
		config: config,
		logger: logger,
		out:    os.Stdout,
	}
}

// Run resolves the package or workspace containing the configured path and
// rewrites every Dart file in it. In check mode nothing is written and an
// error is returned when any file would change.
func (r *Runner) Run() (Stats, error) {
	root := utils.FindPackageRoot(r.config.Path)
	if root == "" {
		return Stats{}, fmt.Errorf(errors.ErrMsgNoManifestFound, r.config.Path)
	}

	// A path naming a single file restricts the run to that file, inside its
	// package's classification context.
	if isDir, err := utils.IsDirectory(r.config.Path); err == nil && !isDir {
		if abs, err := filepath.Abs(r.config.Path); err == nil {
			r.single = abs
		}
	}

	manifest, err := pubspec.Load(root)
	if err != nil {
		return Stats{}, err
	}

	var totals Stats
	if manifest.IsWorkspaceRoot() {
		members, err := workspace.Resolve(manifest)
		if err != nil {
			return Stats{}, err
		}
		// The root package itself participates, with every member as sibling.
		totals = r.processPackage(manifest, workspace.SiblingNames(members, manifest.Name), nil)
		for _, m := range members {
			siblings := workspace.SiblingNames(members, m.Manifest.Name)
			totals = totals.add(r.processPackage(m.Manifest, siblings, manifest.Config))
		}
	} else {
		totals = r.processPackage(manifest, nil, nil)
	}

	r.printSummary(totals)

	if totals.Errors > 0 {
		return totals, fmt.Errorf(errors.ErrMsgFilesFailedToProcess, totals.Errors)
	}
	if r.config.CheckOnly && totals.Sorted > 0 {
		return totals, fmt.Errorf(errors.ErrMsgFilesWouldChange, totals.Sorted)
	}
	return totals, nil
}

// processPackage rewrites every discovered Dart file of one package. A file
// that fails never aborts the rest of the package.
func (r *Runner) processPackage(manifest *pubspec.Pubspec, siblings []string, parentCfg *pubspec.Config) Stats {
	cfg := manifest.EffectiveConfig(parentCfg)
	opts := r.resolveOptions(cfg)
	ctx := sorter.NewContext(manifest.Name, siblings, manifest.HasFlutter())
	matcher := ignore.NewMatcher(append(cfg.IgnoredFiles, r.config.ExtraIgnores...))

	files, err := utils.FindDartFiles(manifest.Dir)
	if err != nil {
		r.logger.Error(errors.ErrMsgFailedToFindDartFiles, "package", manifest.Name, "err", err)
		return Stats{Errors: 1}
	}
	if len(files) == 0 {
		r.logger.Debug(fmt.Sprintf(errors.InfoMsgNoDartFilesFound, manifest.Name))
		return Stats{}
	}

	r.logger.Debug(fmt.Sprintf(errors.InfoMsgProcessingPackage, manifest.Name, len(files)))

	var stats Stats
	for _, file := range files {
		if !r.selected(file) {
			continue
		}
		stats = stats.add(r.processFile(file, manifest.Dir, ctx, opts, matcher))
	}
	return stats
}

func (r *Runner) selected(path string) bool {
	if r.single == "" {
		return true
	}
	abs, err := filepath.Abs(path)
	return err == nil && abs == r.single
}

// processFile rewrites a single file and reports its outcome.
func (r *Runner) processFile(path, packageDir string, ctx sorter.Context, opts sorter.Options, matcher *ignore.Matcher) Stats {
	rel, err := filepath.Rel(packageDir, path)
	if err != nil {
		rel = path
	}

	if utils.IsGeneratedDartFile(path) || matcher.Match(rel) {
		r.logger.Debug("ignored", "file", rel)
		return Stats{Skipped: 1}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.out, errors.InfoMsgErrorProcessing+"\n", rel, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err))
		return Stats{Errors: 1}
	}

	res := sorter.Sort(string(content), ctx, opts)
	switch {
	case res.Skipped:
		fmt.Fprintf(r.out, errors.InfoMsgSkippedUnparsable+"\n", rel)
		return Stats{Skipped: 1}
	case !res.Changed:
		return Stats{Unchanged: 1}
	case r.config.CheckOnly:
		fmt.Fprintf(r.out, errors.InfoMsgWouldChange+"\n", rel)
		return Stats{Sorted: 1}
	}

	if err := os.WriteFile(path, []byte(res.Text), 0644); err != nil {
		fmt.Fprintf(r.out, errors.InfoMsgErrorProcessing+"\n", rel, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err))
		return Stats{Errors: 1}
	}
	r.logger.Debug(fmt.Sprintf(errors.InfoMsgSortedFile, rel))
	return Stats{Sorted: 1}
}

// resolveOptions merges command-line overrides over the manifest configuration.
// The manifest's comments key means "keep comments", so stripping is its
// negation.
func (r *Runner) resolveOptions(cfg pubspec.Config) sorter.Options {
	keepComments := resolveBool(nil, cfg.Comments, true)
	strip := resolveBool(r.config.Overrides.StripComments, nil, !keepComments)
	return sorter.Options{
		InsertHeaders: resolveBool(r.config.Overrides.Headers, cfg.Headers, true),
		EmojiHeaders:  resolveBool(r.config.Overrides.Emojis, cfg.Emojis, false),
		StripComments: strip,
	}
}

func resolveBool(override, configured *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	if configured != nil {
		return *configured
	}
	return fallback
}

func (r *Runner) printSummary(totals Stats) {
	line := fmt.Sprintf(errors.InfoMsgSummary, totals.Sorted, totals.Unchanged, totals.Skipped)
	style := summaryStyle
	if r.config.CheckOnly && totals.Sorted > 0 {
		style = changedStyle
	}
	fmt.Fprintln(r.out, style.Render(line))
}
