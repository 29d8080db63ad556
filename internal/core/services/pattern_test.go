package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

func TestResolvePatternPassthrough(t *testing.T) {
	expr, insensitive := ResolvePattern(domain.SearchRequest{Pattern: "foo.*bar"})
	assert.Equal(t, "foo.*bar", expr)
	assert.False(t, insensitive)
}

func TestResolvePatternLiteralEscapesMetacharacters(t *testing.T) {
	expr, _ := ResolvePattern(domain.SearchRequest{
		Pattern: `println!("hello")`,
		Literal: true,
	})

	re, err := regexp.Compile(expr)
	require.NoError(t, err)
	assert.True(t, re.MatchString(`println!("hello")`))
	assert.False(t, re.MatchString(`printlnX("hello")`))
}

func TestResolvePatternLiteralParen(t *testing.T) {
	expr, _ := ResolvePattern(domain.SearchRequest{Pattern: "(", Literal: true})

	re, err := regexp.Compile(expr)
	require.NoError(t, err)
	assert.True(t, re.MatchString(`println!("hello")`))
	assert.False(t, re.MatchString("no parens here"))
}

func TestResolvePatternWholeWord(t *testing.T) {
	expr, _ := ResolvePattern(domain.SearchRequest{Pattern: "ello", WholeWord: true})
	re := regexp.MustCompile(expr)
	assert.False(t, re.MatchString("hello world"))

	expr, _ = ResolvePattern(domain.SearchRequest{Pattern: "hello", WholeWord: true})
	re = regexp.MustCompile(expr)
	assert.True(t, re.MatchString("say hello there"))
}

func TestResolvePatternLiteralThenWord(t *testing.T) {
	// Escaping happens before word boundaries are added.
	expr, _ := ResolvePattern(domain.SearchRequest{
		Pattern:   "a.b",
		Literal:   true,
		WholeWord: true,
	})
	re := regexp.MustCompile(expr)
	assert.True(t, re.MatchString("x a.b y"))
	assert.False(t, re.MatchString("x aXb y"))
}

func TestResolvePatternCasePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		policy  domain.CasePolicy
		want    bool
	}{
		{"default is sensitive", "foo", domain.CaseDefault, false},
		{"default sensitive with uppercase", "Foo", domain.CaseDefault, false},
		{"ignore-case forces insensitive", "Foo", domain.CaseInsensitive, true},
		{"explicit sensitive wins", "foo", domain.CaseSensitive, false},
		{"smart-case lowercase pattern", "foo", domain.CaseSmart, true},
		{"smart-case uppercase pattern", "Foo", domain.CaseSmart, false},
		{"smart-case uppercase mid-pattern", "foO", domain.CaseSmart, false},
		{"smart-case digits only", "123", domain.CaseSmart, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, insensitive := ResolvePattern(domain.SearchRequest{
				Pattern: tt.pattern,
				Case:    tt.policy,
			})
			assert.Equal(t, tt.want, insensitive)
		})
	}
}

func TestResolvePatternSmartCaseUsesRawPattern(t *testing.T) {
	// The escaped form of "." is "\." which contains no uppercase either
	// way; smart-case must consult the raw, unescaped pattern.
	_, insensitive := ResolvePattern(domain.SearchRequest{
		Pattern: "File.txt",
		Literal: true,
		Case:    domain.CaseSmart,
	})
	assert.False(t, insensitive)
}

func TestBuildWalkOptions(t *testing.T) {
	opts, err := BuildWalkOptions(domain.SearchRequest{
		Root:        "some/dir",
		Hidden:      true,
		NoIgnoreDot: true,
		Globs:       []string{"*.go"},
		Excludes:    []string{"*_test.go"},
		FileType:    "rust",
	})
	require.NoError(t, err)

	assert.Equal(t, "some/dir", opts.Root)
	assert.True(t, opts.Hidden)
	assert.False(t, opts.ReadDotIgnore)
	assert.True(t, opts.ReadVCSIgnore)
	assert.Equal(t, []string{"*.go"}, opts.Globs)
	assert.Equal(t, []string{"*_test.go"}, opts.Excludes)
	assert.Equal(t, []string{"*.rs"}, opts.TypeGlobs)
}

func TestBuildWalkOptionsUnknownType(t *testing.T) {
	_, err := BuildWalkOptions(domain.SearchRequest{FileType: "cobol2000"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFileType)
}
