package services

import (
	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
)

// BuildWalkOptions translates a request into the traversal configuration
// handed to the walker. Exclude globs are layered after include globs by
// the walker, so an exclude always wins for the same path. An unknown file
// type is a fatal configuration error.
func BuildWalkOptions(req domain.SearchRequest) (driven.WalkOptions, error) {
	opts := driven.WalkOptions{
		Root:          req.Root,
		Hidden:        req.Hidden,
		ReadDotIgnore: !req.NoIgnoreDot,
		ReadVCSIgnore: !req.NoIgnoreVCS,
		Globs:         req.Globs,
		Excludes:      req.Excludes,
	}

	if req.FileType != "" {
		globs, err := domain.FileTypeGlobs(req.FileType)
		if err != nil {
			return driven.WalkOptions{}, err
		}
		opts.TypeGlobs = globs
	}

	return opts, nil
}
