package walk

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// overrideGlob is a validated include or exclude glob. A glob containing a
// path separator matches against the path relative to the walk root;
// otherwise it matches the bare filename.
type overrideGlob struct {
	glob     string
	pathWise bool
}

func (g overrideGlob) match(rel, name string) bool {
	target := name
	if g.pathWise {
		target = rel
	}
	ok, _ := doublestar.Match(g.glob, target)
	return ok
}

// overrides layers exclude globs after include globs: an exclude always
// wins over an include for the same path. Includes only constrain files;
// directories stay traversable so nested matches can be reached.
type overrides struct {
	includes []overrideGlob
	excludes []overrideGlob
}

func compileOverrides(includes, typeGlobs, excludes []string) (*overrides, error) {
	o := &overrides{}
	for _, globs := range [][]string{includes, typeGlobs} {
		for _, g := range globs {
			og, err := compileGlob(g)
			if err != nil {
				return nil, err
			}
			o.includes = append(o.includes, og)
		}
	}
	for _, g := range excludes {
		og, err := compileGlob(g)
		if err != nil {
			return nil, err
		}
		o.excludes = append(o.excludes, og)
	}
	return o, nil
}

func compileGlob(glob string) (overrideGlob, error) {
	if !doublestar.ValidatePattern(glob) {
		return overrideGlob{}, fmt.Errorf("%w: %q", domain.ErrInvalidGlob, glob)
	}
	return overrideGlob{glob: glob, pathWise: strings.Contains(glob, "/")}, nil
}

// fileAllowed reports whether a file at rel survives the override layers.
func (o *overrides) fileAllowed(rel string) bool {
	name := path.Base(rel)
	for _, g := range o.excludes {
		if g.match(rel, name) {
			return false
		}
	}
	if len(o.includes) == 0 {
		return true
	}
	for _, g := range o.includes {
		if g.match(rel, name) {
			return true
		}
	}
	return false
}

// dirExcluded reports whether a directory at rel is pruned outright.
func (o *overrides) dirExcluded(rel string) bool {
	name := path.Base(rel)
	for _, g := range o.excludes {
		if g.match(rel, name) {
			return true
		}
	}
	return false
}
