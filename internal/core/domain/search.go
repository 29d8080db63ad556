package domain

import "fmt"

// SearchMode identifies which match sources contribute to a run.
type SearchMode int

const (
	// ModeAll searches file names, file contents and, when requested,
	// git history.
	ModeAll SearchMode = iota

	// ModeNames searches file names only.
	ModeNames

	// ModeContent searches file contents only.
	ModeContent

	// ModeLog searches git commit history only.
	ModeLog
)

// String returns a human-readable mode name.
func (m SearchMode) String() string {
	switch m {
	case ModeNames:
		return "names-only"
	case ModeContent:
		return "content-only"
	case ModeLog:
		return "log-only"
	default:
		return "names+content"
	}
}

// CasePolicy selects how case sensitivity is resolved for a run.
type CasePolicy int

const (
	// CaseDefault is case-sensitive matching.
	CaseDefault CasePolicy = iota

	// CaseSensitive forces case-sensitive matching. It wins over every
	// other policy.
	CaseSensitive

	// CaseInsensitive forces case-insensitive matching.
	CaseInsensitive

	// CaseSmart is insensitive only when the raw pattern contains no
	// uppercase letter.
	CaseSmart
)

// SearchRequest captures everything a single run needs. It is derived once
// from user input and never mutated afterwards.
type SearchRequest struct {
	// Pattern is the raw search pattern as the user typed it.
	Pattern string

	// Root is the directory to search. Defaults to ".".
	Root string

	// NamesOnly restricts the run to file-name matching.
	NamesOnly bool

	// ContentOnly restricts the run to file-content matching.
	ContentOnly bool

	// LogOnly restricts the run to git-history matching.
	LogOnly bool

	// IncludeLog adds git-history matches to a names/content run.
	IncludeLog bool

	// Case is the requested case policy.
	Case CasePolicy

	// Literal treats the pattern as a fixed string, not a regex.
	Literal bool

	// WholeWord wraps the pattern in word-boundary assertions.
	WholeWord bool

	// Globs are include globs; a file must match one to be visited.
	Globs []string

	// Excludes are globs that reject matching paths outright.
	Excludes []string

	// FileType names an entry in the built-in type registry.
	FileType string

	// Hidden includes hidden files and directories in the traversal.
	Hidden bool

	// NoIgnoreDot suppresses .ignore files.
	NoIgnoreDot bool

	// NoIgnoreVCS suppresses .gitignore and .git/info/exclude.
	NoIgnoreVCS bool
}

// Mode returns the single active search mode. Valid only after Validate.
func (r SearchRequest) Mode() SearchMode {
	switch {
	case r.LogOnly:
		return ModeLog
	case r.NamesOnly:
		return ModeNames
	case r.ContentOnly:
		return ModeContent
	default:
		return ModeAll
	}
}

// WantsLog reports whether the run should collect git-history matches.
func (r SearchRequest) WantsLog() bool {
	return r.LogOnly || r.IncludeLog
}

// Validate rejects mutually exclusive flag combinations before any matching
// begins. Each conflict names the offending pair.
func (r SearchRequest) Validate() error {
	conflicts := []struct {
		active bool
		a, b   string
	}{
		{r.LogOnly && r.NamesOnly, "--log-only", "--names-only"},
		{r.LogOnly && r.ContentOnly, "--log-only", "--content-only"},
		{r.LogOnly && len(r.Globs) > 0, "--log-only", "--glob"},
		{r.LogOnly && len(r.Excludes) > 0, "--log-only", "--ignore"},
		{r.NamesOnly && r.ContentOnly, "--names-only", "--content-only"},
	}
	for _, c := range conflicts {
		if c.active {
			return fmt.Errorf("%w: %s and %s are mutually exclusive",
				ErrConflictingFlags, c.a, c.b)
		}
	}
	if r.Pattern == "" {
		return fmt.Errorf("%w: a search pattern is required", ErrInvalidInput)
	}
	return nil
}
