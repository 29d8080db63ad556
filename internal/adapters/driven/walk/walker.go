// Package walk implements the ignore-aware directory traversal adapter.
// It honours layered .gitignore/.ignore files, hidden-file policy and
// override globs, producing entries in deterministic (sorted) order.
package walk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
)

// Ensure Walker implements the interface.
var _ driven.Walker = (*Walker)(nil)

// Walker traverses a directory tree without following symlinks. Each
// directory's entries are visited in name order, so two walks over an
// unchanged tree produce identical sequences.
type Walker struct{}

// New creates a new Walker.
func New() *Walker {
	return &Walker{}
}

// Walk produces entries under opts.Root. Per-entry failures (unreadable
// directories) surface through fn with a non-nil error and the walk
// continues; invalid override globs fail the whole walk before any entry
// is produced.
func (w *Walker) Walk(ctx context.Context, opts driven.WalkOptions, fn driven.WalkFunc) error {
	ov, err := compileOverrides(opts.Globs, opts.TypeGlobs, opts.Excludes)
	if err != nil {
		return err
	}

	var stack ignoreStack
	if opts.ReadVCSIgnore {
		// Lowest-precedence layer: the user-level ignore file
		// (core.excludesFile, or ~/.config/git/ignore).
		if p := globalIgnorePath(); p != "" {
			if ig, err := parseIgnoreFile(p, ""); err == nil {
				stack = stack.push(ig)
			}
		}
	}
	// Layers from directories above the root, when the root is nested
	// inside a repository: toplevel info/exclude, then parent
	// .gitignore/.ignore files outermost first.
	for _, ig := range outerIgnoreFiles(opts.Root, opts.ReadVCSIgnore, opts.ReadDotIgnore) {
		stack = stack.push(ig)
	}
	if opts.ReadVCSIgnore {
		// The repository's private excludes when the root is a toplevel.
		ig, err := parseIgnoreFile(filepath.Join(opts.Root, ".git", "info", "exclude"), "")
		if err == nil {
			stack = stack.push(ig)
		}
	}

	return w.walkDir(ctx, opts, ov, opts.Root, "", stack, fn)
}

func (w *Walker) walkDir(
	ctx context.Context,
	opts driven.WalkOptions,
	ov *overrides,
	dir, rel string,
	stack ignoreStack,
	fn driven.WalkFunc,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.ReadVCSIgnore {
		ig, err := parseIgnoreFile(filepath.Join(dir, ".gitignore"), rel)
		if err != nil {
			if err := fn(driven.Entry{}, fmt.Errorf("%s: %w", dir, err)); err != nil {
				return err
			}
		}
		stack = stack.push(ig)
	}
	if opts.ReadDotIgnore {
		// .ignore outranks .gitignore in the same directory.
		ig, err := parseIgnoreFile(filepath.Join(dir, ".ignore"), rel)
		if err != nil {
			if err := fn(driven.Entry{}, fmt.Errorf("%s: %w", dir, err)); err != nil {
				return err
			}
		}
		stack = stack.push(ig)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fn(driven.Entry{}, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		entryPath := filepath.Join(dir, name)
		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}
		isDir := entry.IsDir()

		if stack.Ignored(entryRel, isDir) {
			continue
		}

		if isDir {
			if ov.dirExcluded(entryRel) {
				continue
			}
			if err := fn(driven.Entry{Path: entryPath, Dir: true}, nil); err != nil {
				return err
			}
			if err := w.walkDir(ctx, opts, ov, entryPath, entryRel, stack, fn); err != nil {
				return err
			}
			continue
		}

		// A symlink to a directory is produced as a directory entry
		// but never descended into.
		if entry.Type()&os.ModeSymlink != 0 {
			if st, err := os.Stat(entryPath); err == nil && st.IsDir() {
				if err := fn(driven.Entry{Path: entryPath, Dir: true}, nil); err != nil {
					return err
				}
				continue
			}
		}

		if !ov.fileAllowed(entryRel) {
			continue
		}
		if err := fn(driven.Entry{Path: entryPath}, nil); err != nil {
			return err
		}
	}
	return nil
}
