package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequestMode(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		want SearchMode
	}{
		{"default", SearchRequest{}, ModeAll},
		{"names only", SearchRequest{NamesOnly: true}, ModeNames},
		{"content only", SearchRequest{ContentOnly: true}, ModeContent},
		{"log only", SearchRequest{LogOnly: true}, ModeLog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Mode())
		})
	}
}

func TestSearchRequestWantsLog(t *testing.T) {
	assert.False(t, SearchRequest{}.WantsLog())
	assert.True(t, SearchRequest{IncludeLog: true}.WantsLog())
	assert.True(t, SearchRequest{LogOnly: true}.WantsLog())
}

func TestSearchRequestValidateConflicts(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		a, b string
	}{
		{
			name: "log-only with names-only",
			req:  SearchRequest{Pattern: "x", LogOnly: true, NamesOnly: true},
			a:    "--log-only", b: "--names-only",
		},
		{
			name: "log-only with content-only",
			req:  SearchRequest{Pattern: "x", LogOnly: true, ContentOnly: true},
			a:    "--log-only", b: "--content-only",
		},
		{
			name: "log-only with glob",
			req:  SearchRequest{Pattern: "x", LogOnly: true, Globs: []string{"*.go"}},
			a:    "--log-only", b: "--glob",
		},
		{
			name: "log-only with exclude",
			req:  SearchRequest{Pattern: "x", LogOnly: true, Excludes: []string{"*.log"}},
			a:    "--log-only", b: "--ignore",
		},
		{
			name: "names-only with content-only",
			req:  SearchRequest{Pattern: "x", NamesOnly: true, ContentOnly: true},
			a:    "--names-only", b: "--content-only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConflictingFlags)
			// The error must name the specific conflicting pair.
			assert.Contains(t, err.Error(), tt.a)
			assert.Contains(t, err.Error(), tt.b)
		})
	}
}

func TestSearchRequestValidateOK(t *testing.T) {
	require.NoError(t, SearchRequest{Pattern: "x"}.Validate())
	require.NoError(t, SearchRequest{Pattern: "x", LogOnly: true}.Validate())
	require.NoError(t, SearchRequest{
		Pattern:   "x",
		NamesOnly: true,
		Globs:     []string{"*.go"},
	}.Validate())
}

func TestSearchRequestValidateEmptyPattern(t *testing.T) {
	err := SearchRequest{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFileTypeGlobs(t *testing.T) {
	globs, err := FileTypeGlobs("go")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.go"}, globs)

	_, err = FileTypeGlobs("nosuchtype")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFileType)
	assert.Contains(t, err.Error(), "nosuchtype")
}

func TestFileTypeNamesSorted(t *testing.T) {
	names := FileTypeNames()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "rust")
	assert.Contains(t, names, "py")
}
