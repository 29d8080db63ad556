package driven

import "context"

// WalkOptions configures one traversal of a directory tree.
type WalkOptions struct {
	// Root is the directory to walk.
	Root string

	// Hidden includes hidden files and directories.
	Hidden bool

	// ReadDotIgnore honours .ignore files.
	ReadDotIgnore bool

	// ReadVCSIgnore honours .gitignore files and .git/info/exclude.
	ReadVCSIgnore bool

	// Globs are include globs. When any are present (including TypeGlobs),
	// a file must match at least one to be produced.
	Globs []string

	// TypeGlobs are include globs resolved from a file-type selection.
	TypeGlobs []string

	// Excludes reject matching files and prune matching directories.
	// An exclude always wins over an include for the same path.
	Excludes []string
}

// Entry is a single filesystem entry produced by a traversal.
type Entry struct {
	// Path is the entry's path, rooted at WalkOptions.Root.
	Path string

	// Dir reports whether the entry is a directory.
	Dir bool
}

// WalkFunc receives each traversal outcome: either a valid entry, or a
// recoverable per-entry error with a zero Entry. Returning a non-nil error
// aborts the walk.
type WalkFunc func(entry Entry, err error) error

// Walker produces filesystem entries under a root, honouring layered
// ignore rules and override globs. Invalid globs surface as an error from
// Walk before any entry is produced.
type Walker interface {
	Walk(ctx context.Context, opts WalkOptions, fn WalkFunc) error
}
