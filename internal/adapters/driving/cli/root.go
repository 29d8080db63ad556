// Package cli provides the cobra command surface for Trident.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trident-labs/trident-cli/internal/adapters/driven/config/file"
	"github.com/trident-labs/trident-cli/internal/adapters/driven/git"
	"github.com/trident-labs/trident-cli/internal/adapters/driven/regexmatch"
	"github.com/trident-labs/trident-cli/internal/adapters/driven/walk"
	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/services"
	"github.com/trident-labs/trident-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	flagNamesOnly   bool
	flagContentOnly bool
	flagLogOnly     bool
	flagLog         bool
	flagIgnoreCase  bool
	flagCaseSens    bool
	flagSmartCase   bool
	flagHidden      bool
	flagNoIgnore    bool
	flagNoIgnoreVCS bool
	flagNoIgnoreDot bool
	flagFileType    string
	flagTypeList    bool
	flagFixedString bool
	flagWordRegexp  bool
	flagGlobs       []string
	flagExcludes    []string
	flagColor       string
	flagWatch       bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "trident [pattern] [path]",
	Short: "Search file names, file contents and git history in one pass",
	Long: `Trident combines three match sources over a directory tree - file
path names, file content lines and git commit history - into one
deterministically ordered report.`,
	Example: `  trident hello              search names and contents under .
  trident -n hello src       names only, under src
  trident -c -i hello        contents only, case-insensitive
  trident -l hello           also search git commit messages
  trident --log-only hello   commit messages only`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	// Search flags are persistent so tui shares them with the root command.
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&flagNamesOnly, "names-only", "n", false, "only search file names")
	flags.BoolVarP(&flagContentOnly, "content-only", "c", false, "only search file contents")
	flags.BoolVar(&flagLogOnly, "log-only", false, "only search git logs")
	flags.BoolVarP(&flagLog, "log", "l", false, "include git log matches")
	flags.BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "case-insensitive search")
	flags.BoolVarP(&flagCaseSens, "case-sensitive", "s", false, "case-sensitive search (overrides all other case flags)")
	flags.BoolVarP(&flagSmartCase, "smart-case", "S", false, "insensitive unless the pattern has uppercase letters")
	flags.BoolVar(&flagHidden, "hidden", false, "include hidden files")
	flags.BoolVar(&flagNoIgnore, "no-ignore", false, "don't respect ignore files of any kind")
	flags.BoolVar(&flagNoIgnoreVCS, "no-ignore-vcs", false, "don't respect .gitignore or .git/info/exclude")
	flags.BoolVar(&flagNoIgnoreDot, "no-ignore-dot", false, "don't respect .ignore files")
	flags.StringVarP(&flagFileType, "type", "t", "", "filter by file type (e.g. rust, python)")
	flags.BoolVarP(&flagFixedString, "fixed-strings", "F", false, "treat the pattern as a literal string, not a regex")
	flags.BoolVarP(&flagWordRegexp, "word-regexp", "w", false, "only match whole words")
	flags.StringArrayVarP(&flagGlobs, "glob", "g", nil, "filter files by glob pattern (repeatable)")
	flags.StringArrayVarP(&flagExcludes, "ignore", "x", nil, "exclude files matching glob pattern (repeatable)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "show detailed output")

	local := rootCmd.Flags()
	local.BoolVar(&flagTypeList, "type-list", false, "list file type definitions and exit")
	local.StringVar(&flagColor, "color", "never", "color mode: never, auto or ansi (rg-compatible)")
	local.BoolVar(&flagWatch, "watch", false, "re-run the search when the tree changes")
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "trident: %v\n", err)
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(flagVerbose)

	if flagTypeList {
		return printTypeList(cmd)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: a search pattern is required", domain.ErrInvalidInput)
	}

	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}
	logger.Dump("request", req)

	svc := newSearchService()
	ctx := cmd.Context()

	if flagColor == "ansi" {
		return runANSI(ctx, cmd, svc, req)
	}

	run := func() error {
		blocks, err := svc.Run(ctx, req)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), blocks, flagColor)
	}

	if flagWatch {
		return runWatch(ctx, req.Root, run)
	}
	return run()
}

// buildRequest derives the immutable search request from arguments, flags
// and configuration defaults. Explicit flags always win over defaults.
func buildRequest(cmd *cobra.Command, args []string) (domain.SearchRequest, error) {
	defaults := loadDefaults()

	root := "."
	if len(args) > 1 {
		root = args[1]
	}

	req := domain.SearchRequest{
		Pattern:     args[0],
		Root:        root,
		NamesOnly:   flagNamesOnly,
		ContentOnly: flagContentOnly,
		LogOnly:     flagLogOnly,
		IncludeLog:  flagLog,
		Literal:     flagFixedString,
		WholeWord:   flagWordRegexp,
		Globs:       flagGlobs,
		Excludes:    flagExcludes,
		FileType:    flagFileType,
		Hidden:      flagHidden,
		NoIgnoreDot: flagNoIgnore || flagNoIgnoreDot,
		NoIgnoreVCS: flagNoIgnore || flagNoIgnoreVCS,
	}

	// Strict precedence: an explicit sensitive override beats ignore-case,
	// which beats smart-case.
	switch {
	case flagCaseSens:
		req.Case = domain.CaseSensitive
	case flagIgnoreCase:
		req.Case = domain.CaseInsensitive
	case flagSmartCase || defaults.SmartCase:
		req.Case = domain.CaseSmart
	}

	if defaults.Hidden && !cmd.Flags().Changed("hidden") {
		req.Hidden = true
	}
	if !req.LogOnly {
		req.Excludes = append(req.Excludes, defaults.Exclude...)
	}
	if defaults.Color != "" && !cmd.Flags().Changed("color") {
		flagColor = defaults.Color
	}

	return req, nil
}

// loadDefaults reads the config file, tolerating its absence. A broken
// config file is reported once but never blocks a search.
func loadDefaults() file.Defaults {
	store, err := file.NewConfigStore(os.Getenv("TRIDENT_CONFIG_DIR"))
	if err != nil {
		logger.Warn("config: %v", err)
		return file.Defaults{}
	}
	defaults, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trident: %v\n", err)
		return file.Defaults{}
	}
	return defaults
}

// newSearchService wires the concrete adapters into the engine.
func newSearchService() *services.Search {
	return services.NewSearch(walk.New(), regexmatch.NewCompiler(), git.New(), stderrSink{})
}

// stderrSink renders collector diagnostics to the error stream.
type stderrSink struct{}

func (stderrSink) Report(_, message string) {
	fmt.Fprintf(os.Stderr, "trident: %s\n", message)
}

func printTypeList(cmd *cobra.Command) error {
	for _, name := range domain.FileTypeNames() {
		globs, _ := domain.FileTypeGlobs(name)
		cmd.Printf("%s: %s\n", name, strings.Join(globs, ", "))
	}
	return nil
}
