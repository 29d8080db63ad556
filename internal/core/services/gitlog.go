package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// collectLog runs the log query against every discovered repository. A
// failing query for one repository drops that repository's contribution and
// continues with the rest. A missing git binary is fatal only when log
// results are strictly required.
func (s *Search) collectLog(
	ctx context.Context, root, expr string, insensitive bool, required bool,
) ([]domain.LogMatch, error) {
	repos, err := s.discoverRepos(ctx, root, required)
	if err != nil {
		return nil, err
	}

	var matches []domain.LogMatch
	for _, repo := range repos {
		found, err := s.vcs.LogSearch(ctx, repo.Path, expr, insensitive)
		if err != nil {
			if errors.Is(err, domain.ErrGitUnavailable) {
				if required {
					return nil, err
				}
				s.diags.Report(repo.Path, "git not found, skipping log search")
				return matches, nil
			}
			s.diags.Report(repo.Path, err.Error())
			continue
		}
		matches = append(matches, found...)
	}
	return matches, nil
}

// logBlocks groups log matches by repository into one multi-line block per
// repository, headed by the repository path.
func logBlocks(matches []domain.LogMatch) []domain.OutputBlock {
	byRepo := make(map[string]int)
	var blocks []domain.OutputBlock

	for _, m := range matches {
		i, ok := byRepo[m.Repo]
		if !ok {
			i = len(blocks)
			byRepo[m.Repo] = i
			blocks = append(blocks, domain.OutputBlock{
				Key:   domain.BlockKey{Path: m.Repo, Kind: domain.KindRepoLog},
				Lines: []string{fmt.Sprintf("%s (git log):", m.Repo)},
			})
		}
		line := fmt.Sprintf("  %s %s %s", m.Hash, m.Date, m.Message)
		blocks[i].Lines = append(blocks[i].Lines, line)
	}
	return blocks
}
