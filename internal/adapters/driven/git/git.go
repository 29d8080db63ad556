// Package git implements the version-control adapter by shelling out to
// the git binary. Each query is one blocking subprocess invocation;
// failures are classified from the exit status, never from signals.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
	"github.com/trident-labs/trident-cli/internal/logger"
)

// logFormat produces "hash date message" lines with single-space field
// separators, parsed back by splitting on the first two spaces.
const logFormat = "%h %ad %s"

// logFieldCount is the fixed field count of one formatted log line.
const logFieldCount = 3

// Ensure CLI implements the interface.
var _ driven.VersionControl = (*CLI)(nil)

// CLI runs git commands through the git binary on PATH.
type CLI struct {
	binary string
}

// New creates a git adapter using the default binary name.
func New() *CLI {
	return &CLI{binary: "git"}
}

// Toplevel returns the root of the working tree enclosing dir.
func (g *CLI) Toplevel(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, g.binary, "-C", dir, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		if isNotInstalled(err) {
			return "", domain.ErrGitUnavailable
		}
		return "", fmt.Errorf("%w: %s", domain.ErrNoRepository, dir)
	}
	return strings.TrimSpace(lossy(out)), nil
}

// LogSearch returns commits in repo whose message matches pattern,
// querying a fixed-field log format filtered with --grep.
func (g *CLI) LogSearch(ctx context.Context, repo, pattern string, insensitive bool) ([]domain.LogMatch, error) {
	args := []string{
		"-C", repo,
		"log",
		"--format=" + logFormat,
		"--date=short",
		"-E",
	}
	if insensitive {
		args = append(args, "-i")
	}
	args = append(args, "--grep", pattern)

	logger.Debug("git %s", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, g.binary, args...)
	out, err := cmd.Output()
	if err != nil {
		if isNotInstalled(err) {
			return nil, domain.ErrGitUnavailable
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s: %s",
				domain.ErrLogQuery, repo, strings.TrimSpace(lossy(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLogQuery, repo, err)
	}

	return ParseLog(repo, lossy(out)), nil
}

// ParseLog splits formatted log output into matches. Each line yields
// exactly logFieldCount fields at the first separator occurrences; short
// lines are dropped.
func ParseLog(repo, out string) []domain.LogMatch {
	var matches []domain.LogMatch
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", logFieldCount)
		if len(fields) < logFieldCount {
			continue
		}
		matches = append(matches, domain.LogMatch{
			Repo:    repo,
			Hash:    fields[0],
			Date:    fields[1],
			Message: fields[2],
		})
	}
	return matches
}

// lossy decodes subprocess output, replacing invalid UTF-8 sequences.
func lossy(out []byte) string {
	return strings.ToValidUTF8(string(out), "�")
}

func isNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
