package driven

import (
	"context"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// VersionControl queries git via its command-line binary.
type VersionControl interface {
	// Toplevel returns the root of the working tree enclosing dir.
	// Returns domain.ErrNoRepository when dir is not inside a working
	// tree and domain.ErrGitUnavailable when the binary is missing.
	Toplevel(ctx context.Context, dir string) (string, error)

	// LogSearch returns commits in repo whose message matches pattern.
	// pattern is an extended regex; insensitive is forwarded to the
	// query. Returns domain.ErrGitUnavailable when the binary is
	// missing and domain.ErrLogQuery when the invocation fails.
	LogSearch(ctx context.Context, repo, pattern string, insensitive bool) ([]domain.LogMatch, error)
}
