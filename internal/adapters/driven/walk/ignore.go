package walk

import (
	"bufio"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignorePattern is one parsed line of an ignore file.
type ignorePattern struct {
	glob     string
	negate   bool
	dirOnly  bool
	anchored bool
}

// ignoreFile holds the parsed patterns of a single ignore file. Patterns
// apply to paths relative to the directory containing the file; within a
// file, the last matching pattern wins.
type ignoreFile struct {
	// base is the containing directory, slash-separated and relative to
	// the walk root ("" for the root itself).
	base string
	// prefix maps walk-root-relative paths into this file's frame when
	// the file lives in a directory above the walk root. Mutually
	// exclusive with base.
	prefix   string
	patterns []ignorePattern
}

// parseIgnoreFile reads a .gitignore-syntax file. A missing file is not an
// error; it simply contributes no patterns.
func parseIgnoreFile(filePath, base string) (*ignoreFile, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	ig := &ignoreFile{base: base}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ig.patterns = append(ig.patterns, parsePattern(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ig.patterns) == 0 {
		return nil, nil
	}
	return ig, nil
}

func parsePattern(line string) ignorePattern {
	p := ignorePattern{}
	if strings.HasPrefix(line, "!") {
		p.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		p.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		p.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	// A slash anywhere else also anchors the pattern to the base.
	if strings.Contains(line, "/") {
		p.anchored = true
	}
	p.glob = line
	return p
}

// decide reports whether rel (slash-separated, relative to the walk root)
// is ignored according to this file. matched is false when no pattern in
// the file applies.
func (ig *ignoreFile) decide(rel string, isDir bool) (ignored, matched bool) {
	local := rel
	if ig.prefix != "" {
		local = ig.prefix + "/" + rel
	}
	if ig.base != "" {
		if !strings.HasPrefix(rel, ig.base+"/") {
			return false, false
		}
		local = strings.TrimPrefix(rel, ig.base+"/")
	}

	for _, p := range ig.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		var ok bool
		if p.anchored {
			ok, _ = doublestar.Match(p.glob, local)
		} else {
			ok, _ = doublestar.Match(p.glob, path.Base(local))
		}
		if ok {
			ignored = !p.negate
			matched = true
		}
	}
	return ignored, matched
}

// ignoreStack layers ignore files from the root downwards. Deeper files
// and later entries at the same depth take precedence over earlier ones.
type ignoreStack []*ignoreFile

// Ignored resolves rel against every layer; the most specific matching
// layer's decision wins.
func (s ignoreStack) Ignored(rel string, isDir bool) bool {
	result := false
	for _, ig := range s {
		if ignored, matched := ig.decide(rel, isDir); matched {
			result = ignored
		}
	}
	return result
}

// push returns a new stack with ig layered on top. A nil ig (no file, or
// an empty one) leaves the stack unchanged.
func (s ignoreStack) push(ig *ignoreFile) ignoreStack {
	if ig == nil {
		return s
	}
	next := make(ignoreStack, len(s), len(s)+1)
	copy(next, s)
	return append(next, ig)
}
