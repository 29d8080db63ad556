package domain

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// BlockKind tags an output block's origin for ordering purposes.
type BlockKind int

const (
	// KindFile is a block describing one file (name and/or content matches).
	KindFile BlockKind = iota

	// KindRepoLog is a block holding one repository's git log matches.
	KindRepoLog
)

// BlockKey orders output blocks. A repo-log key sorts after every file key
// inside its own repository subtree but before any lexicographically later
// sibling, so a repository's log section appears immediately after the file
// results from inside that repository.
type BlockKey struct {
	// Path is the file path or repository path.
	Path string

	// Kind distinguishes file blocks from repo-log blocks.
	Kind BlockKind
}

// Compare returns -1, 0 or 1 ordering k against other.
func (k BlockKey) Compare(other BlockKey) int {
	pa, pb := k.Path, other.Path
	if k.Kind == KindRepoLog {
		pa += "/"
	}
	if other.Kind == KindRepoLog {
		pb += "/"
	}
	// A repo-log key dominates everything within its subtree.
	if k.Kind == KindRepoLog && strings.HasPrefix(pb, pa) && pa != pb {
		return 1
	}
	if other.Kind == KindRepoLog && strings.HasPrefix(pa, pb) && pa != pb {
		return -1
	}
	return strings.Compare(pa, pb)
}

// OutputBlock is one unit of the final report: a sort key plus one or more
// display lines. Blocks are ephemeral, constructed fresh per run.
type OutputBlock struct {
	Key   BlockKey
	Lines []string
}

// Multi reports whether the block renders as more than one line.
func (b OutputBlock) Multi() bool {
	return len(b.Lines) > 1
}

// SortBlocks orders blocks by key. The sort is deterministic: keys are
// unique per run (one block per path, one per repository).
func SortBlocks(blocks []OutputBlock) {
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Key.Compare(blocks[j].Key) < 0
	})
}

// WriteBlocks renders sorted blocks to w. A blank line separates two
// adjacent blocks whenever either is multi-line; no blank line precedes the
// first block or follows the last.
func WriteBlocks(w io.Writer, blocks []OutputBlock) error {
	prevMulti := false
	for i, b := range blocks {
		if i > 0 && (b.Multi() || prevMulti) {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, line := range b.Lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		prevMulti = b.Multi()
	}
	return nil
}
