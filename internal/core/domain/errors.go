package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflictingFlags indicates a mutually exclusive flag combination.
	ErrConflictingFlags = errors.New("conflicting flags")

	// ErrInvalidPattern indicates the search pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidGlob indicates an include or exclude glob does not compile.
	ErrInvalidGlob = errors.New("invalid glob")

	// ErrUnknownFileType indicates a type name absent from the registry.
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrGitUnavailable indicates the git binary could not be found.
	// Fatal only when the run exclusively requires log results.
	ErrGitUnavailable = errors.New("git is not installed")

	// ErrNoRepository indicates a path is not inside a git working tree.
	ErrNoRepository = errors.New("not a git repository")

	// ErrLogQuery indicates a git log invocation failed for one repository.
	// Recovered locally: that repository's contribution is dropped.
	ErrLogQuery = errors.New("git log query failed")
)
