package services

import (
	"context"
	"fmt"

	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
	"github.com/trident-labs/trident-cli/internal/core/ports/driving"
	"github.com/trident-labs/trident-cli/internal/logger"
)

// Ensure Search implements the interface.
var _ driving.SearchService = (*Search)(nil)

// Search merges name, content and git-history matches into one ordered
// report. Collectors run strictly in sequence within a single Run; no state
// survives across invocations.
type Search struct {
	walker   driven.Walker
	compiler driven.MatcherCompiler
	vcs      driven.VersionControl
	diags    driven.DiagnosticSink
}

// NewSearch creates a new search service.
func NewSearch(
	walker driven.Walker,
	compiler driven.MatcherCompiler,
	vcs driven.VersionControl,
	diags driven.DiagnosticSink,
) *Search {
	return &Search{
		walker:   walker,
		compiler: compiler,
		vcs:      vcs,
		diags:    diags,
	}
}

// Run executes one complete search and returns the sorted report blocks.
func (s *Search) Run(ctx context.Context, req domain.SearchRequest) ([]domain.OutputBlock, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	expr, insensitive := ResolvePattern(req)
	logger.Section("Search Execution")
	logger.Debug("Pattern: %q -> %q (insensitive=%t)", req.Pattern, expr, insensitive)
	logger.Debug("Mode: %s, root: %s", req.Mode(), req.Root)

	matcher, err := s.compiler.Compile(expr, insensitive)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
	}

	mode := req.Mode()
	if mode == domain.ModeLog {
		matches, err := s.collectLog(ctx, req.Root, expr, insensitive, true)
		if err != nil {
			return nil, err
		}
		blocks := logBlocks(matches)
		domain.SortBlocks(blocks)
		return blocks, nil
	}

	walkOpts, err := BuildWalkOptions(req)
	if err != nil {
		return nil, err
	}

	var names map[string]struct{}
	var content map[string][]domain.ContentMatch

	if mode == domain.ModeAll || mode == domain.ModeNames {
		if names, err = s.collectNames(ctx, walkOpts, matcher); err != nil {
			return nil, err
		}
		logger.Debug("Name matches: %d", len(names))
	}
	if mode == domain.ModeAll || mode == domain.ModeContent {
		if content, err = s.collectContent(ctx, walkOpts, matcher); err != nil {
			return nil, err
		}
		logger.Debug("Files with content matches: %d", len(content))
	}

	blocks := buildFileBlocks(mode, names, content)

	if req.WantsLog() {
		matches, err := s.collectLog(ctx, req.Root, expr, insensitive, false)
		if err != nil {
			return nil, err
		}
		logger.Debug("Log matches: %d", len(matches))
		blocks = append(blocks, logBlocks(matches)...)
	}

	domain.SortBlocks(blocks)
	return blocks, nil
}

// FileMatches pairs one file with its content matches, in traversal order.
type FileMatches struct {
	Path    string
	Matches []domain.ContentMatch
}

// ContentMatches runs a content-only pass and returns raw per-file matches
// instead of report blocks. Renderers that need the individual line matches
// (rather than the merged report) use this. The binary policy is the same
// as the report path: a file that turns binary mid-scan collapses to a lone
// binary marker, its matched bytes are never exposed.
func (s *Search) ContentMatches(ctx context.Context, req domain.SearchRequest) ([]FileMatches, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	expr, insensitive := ResolvePattern(req)
	matcher, err := s.compiler.Compile(expr, insensitive)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
	}

	walkOpts, err := BuildWalkOptions(req)
	if err != nil {
		return nil, err
	}

	var files []FileMatches
	err = s.walker.Walk(ctx, walkOpts, func(entry driven.Entry, err error) error {
		if err != nil {
			s.diags.Report(walkOpts.Root, err.Error())
			return nil
		}
		if entry.Dir {
			return nil
		}
		sink := &contentSink{}
		if err := matcher.SearchFile(entry.Path, sink); err != nil {
			s.diags.Report(entry.Path, err.Error())
			return nil
		}
		if len(sink.matches) == 0 {
			return nil
		}
		matches := sink.matches
		if sink.binary {
			matches = []domain.ContentMatch{domain.BinaryMatch{}}
		}
		files = append(files, FileMatches{Path: entry.Path, Matches: matches})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
