package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dartutils/dart-imports-group/pkg/runner"
	"github.com/dartutils/dart-imports-group/pkg/version"
)

const (
	UseDescription   = "dig [flags] [PATH]"
	ShortDescription = "Dart imports grouper - A tool to group and sort Dart imports"
	LongDescription  = `dig is a command-line tool that groups and sorts the import and export
directives of Dart source files.

Directives are organized into groups:
1. Dart SDK imports
2. Flutter imports
3. Package (published dependency) imports
4. Workspace (sibling package) imports
5. Project (own package) imports
6. Relative imports

PATH is a file or directory inside a Dart package or pub workspace; it
defaults to the current directory. The enclosing pubspec.yaml is located
automatically, and for a workspace root every member package is processed in
manifest order. Files are rewritten in place; everything outside the import
header is left untouched.

Settings can also be declared in pubspec.yaml:

  dart_imports_group:
    emojis: true
    comments: false
    headers: true
    ignored_files:
      - lib/generated/**

Explicit flags take precedence over the manifest.`
)

var (
	emojis        bool
	noComments    bool
	noHeaders     bool
	exitIfChanged bool
	verbose       bool
	ignores       []string
	showVersion   bool
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&emojis, "emojis", false, "Prefix each group header comment with an emoji")
	rootCmd.PersistentFlags().BoolVar(&noComments, "no-comments", false, "Strip user comments attached to import directives")
	rootCmd.PersistentFlags().BoolVar(&noHeaders, "no-headers", false, "Do not emit group header comments")
	rootCmd.PersistentFlags().BoolVar(&exitIfChanged, "exit-if-changed", false, "Do not write files; exit with an error if any file would change")
	rootCmd.PersistentFlags().StringSliceVar(&ignores, "ignore", []string{}, "Glob patterns of files to skip, relative to the package root (e.g., lib/generated/**)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need a path argument
	if showVersion {
		return nil
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Println(version.Get().String())
		return nil
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	r := runner.New(runner.RunConfig{
		Path:         path,
		CheckOnly:    exitIfChanged,
		Verbose:      verbose,
		ExtraIgnores: ignores,
		Overrides:    overridesFromFlags(cmd),
	})
	_, err := r.Run()
	return err
}

// overridesFromFlags turns only the flags the user actually set into manifest
// overrides, so pubspec.yaml settings win for everything left at its default.
func overridesFromFlags(cmd *cobra.Command) runner.Overrides {
	var o runner.Overrides
	if cmd.Flags().Changed("emojis") {
		o.Emojis = &emojis
	}
	if cmd.Flags().Changed("no-comments") {
		strip := noComments
		o.StripComments = &strip
	}
	if cmd.Flags().Changed("no-headers") {
		headers := !noHeaders
		o.Headers = &headers
	}
	return o
}

// Execute runs the root command. moduleVersion is the version reported by the
// build info; it fills in the version package when no ldflags were set.
func Execute(moduleVersion string) error {
	if version.Version == "dev" && moduleVersion != "" {
		version.Version = moduleVersion
	}
	return rootCmd.Execute()
}
