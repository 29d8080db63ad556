// Package regexmatch implements the pattern-matching adapter on Go's
// regexp engine. One compiled matcher serves both name matching and
// line-oriented content matching with NUL-byte binary detection.
package regexmatch

import (
	"bytes"
	"os"
	"regexp"

	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
)

// Ensure Compiler implements the interface.
var _ driven.MatcherCompiler = (*Compiler)(nil)

// Compiler compiles effective patterns into matchers.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile builds a matcher for expr, prefixing the case-insensitivity
// flag when requested.
func (*Compiler) Compile(expr string, insensitive bool) (driven.Matcher, error) {
	if insensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &matcher{re: re}, nil
}

type matcher struct {
	re *regexp.Regexp
}

func (m *matcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

// SearchFile streams matching lines into sink. Searching stops at the
// first NUL byte: everything before it (including a final partial line)
// is still matched, then the binary condition is signalled.
func (m *matcher) SearchFile(path string, sink driven.ContentSink) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	binaryAt := int64(-1)
	if i := bytes.IndexByte(data, 0); i >= 0 {
		binaryAt = int64(i)
		data = data[:i]
	}

	lineNumber := 0
	for len(data) > 0 {
		lineNumber++
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSuffix(line, []byte("\r"))
		if m.re.Match(line) {
			sink.Match(lineNumber, string(line))
		}
	}

	if binaryAt >= 0 {
		sink.Binary(binaryAt)
	}
	return nil
}
