package services

import (
	"context"

	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
)

// collectNames tests every visited path against the matcher and returns the
// set of matching paths. Per-entry traversal errors go to the diagnostic
// sink and the entry is skipped.
func (s *Search) collectNames(
	ctx context.Context, opts driven.WalkOptions, matcher driven.Matcher,
) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	err := s.walker.Walk(ctx, opts, func(entry driven.Entry, err error) error {
		if err != nil {
			s.diags.Report(opts.Root, err.Error())
			return nil
		}
		if entry.Dir {
			return nil
		}
		if matcher.MatchString(entry.Path) {
			names[entry.Path] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// contentSink accumulates per-file state while the matcher streams events.
type contentSink struct {
	matches []domain.ContentMatch
	binary  bool
}

func (c *contentSink) Match(lineNumber int, text string) {
	c.matches = append(c.matches, domain.LineMatch{Number: lineNumber, Text: text})
}

func (c *contentSink) Binary(int64) {
	c.binary = true
}

// collectContent matches file contents line by line. Per file: binary data
// after at least one match collapses the entry to a single binary marker;
// binary data with no prior match drops the file entirely; otherwise the
// accumulated line matches are kept. I/O errors skip the file.
func (s *Search) collectContent(
	ctx context.Context, opts driven.WalkOptions, matcher driven.Matcher,
) (map[string][]domain.ContentMatch, error) {
	results := make(map[string][]domain.ContentMatch)
	err := s.walker.Walk(ctx, opts, func(entry driven.Entry, err error) error {
		if err != nil {
			s.diags.Report(opts.Root, err.Error())
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

		switch {
		case sink.binary && len(sink.matches) > 0:
			// Real matches preceded the binary data. Drop the raw
			// lines and show a summary instead.
			results[entry.Path] = []domain.ContentMatch{domain.BinaryMatch{}}
		case len(sink.matches) > 0:
			results[entry.Path] = sink.matches
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
