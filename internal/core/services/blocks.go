package services

import (
	"fmt"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// buildFileBlocks merges name and content matches into file blocks. A
// name-only match with no content entry renders as a bare single-line
// block; any path with a content entry (and optionally a name match too)
// renders as a multi-line block.
func buildFileBlocks(
	mode domain.SearchMode,
	names map[string]struct{},
	content map[string][]domain.ContentMatch,
) []domain.OutputBlock {
	var blocks []domain.OutputBlock

	switch mode {
	case domain.ModeNames:
		for path := range names {
			blocks = append(blocks, domain.OutputBlock{
				Key:   domain.BlockKey{Path: path, Kind: domain.KindFile},
				Lines: []string{path},
			})
		}

	case domain.ModeContent:
		for path, matches := range content {
			lines := append([]string{path}, contentLines(matches)...)
			blocks = append(blocks, domain.OutputBlock{
				Key:   domain.BlockKey{Path: path, Kind: domain.KindFile},
				Lines: lines,
			})
		}

	default:
		paths := make(map[string]struct{}, len(names)+len(content))
		for path := range names {
			paths[path] = struct{}{}
		}
		for path := range content {
			paths[path] = struct{}{}
		}
		for path := range paths {
			lines := []string{path}
			if _, ok := names[path]; ok {
				lines = append(lines, "  (name match)")
			}
			if matches, ok := content[path]; ok {
				lines = append(lines, contentLines(matches)...)
			}
			blocks = append(blocks, domain.OutputBlock{
				Key:   domain.BlockKey{Path: path, Kind: domain.KindFile},
				Lines: lines,
			})
		}
	}
	return blocks
}

func contentLines(matches []domain.ContentMatch) []string {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		switch match := m.(type) {
		case domain.LineMatch:
			lines = append(lines, fmt.Sprintf("  %d:%s", match.Number, match.Text))
		case domain.BinaryMatch:
			lines = append(lines, "  (binary file matches)")
		}
	}
	return lines
}
