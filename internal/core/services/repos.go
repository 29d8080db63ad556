package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/logger"
)

// discoverRepos locates git repositories relevant to the search root: the
// root's own enclosing working tree, plus any repositories nested one level
// below the root. Entries are deduplicated by canonical path.
//
// When the git binary is missing, discovery fails only if required;
// otherwise it reports once and returns no repositories.
func (s *Search) discoverRepos(ctx context.Context, root string, required bool) ([]domain.Repository, error) {
	var repos []domain.Repository
	seen := make(map[string]struct{})

	add := func(path string) {
		canonical := canonicalPath(path)
		if _, dup := seen[canonical]; dup {
			return
		}
		seen[canonical] = struct{}{}
		repos = append(repos, domain.Repository{Path: path, Canonical: canonical})
	}

	top, err := s.vcs.Toplevel(ctx, root)
	switch {
	case err == nil:
		add(top)
	case errors.Is(err, domain.ErrGitUnavailable):
		if required {
			return nil, err
		}
		s.diags.Report(root, "git not found, skipping log search")
		return nil, nil
	case errors.Is(err, domain.ErrNoRepository):
		// The root is not inside a working tree; children may still be.
	default:
		s.diags.Report(root, err.Error())
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		s.diags.Report(root, err.Error())
		return repos, nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(child, ".git")); err == nil {
			add(child)
		}
	}

	logger.Debug("Discovered %d repositories under %s", len(repos), root)
	return repos, nil
}

// canonicalPath resolves a path for deduplication, insensitive to symlinks
// and relative references. Falls back to the absolute path when resolution
// fails (e.g. a dangling symlink component).
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
