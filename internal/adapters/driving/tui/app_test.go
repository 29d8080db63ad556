package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

type stubSearchService struct {
	blocks  []domain.OutputBlock
	err     error
	lastReq domain.SearchRequest
}

func (s *stubSearchService) Run(
	_ context.Context,
	req domain.SearchRequest,
) ([]domain.OutputBlock, error) {
	s.lastReq = req
	return s.blocks, s.err
}

func newTestApp(t *testing.T, search *stubSearchService, base domain.SearchRequest) *App {
	t.Helper()
	app, err := NewApp(&Ports{Search: search}, base)
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App)
}

func TestNewApp(t *testing.T) {
	t.Run("rejects missing search service", func(t *testing.T) {
		_, err := NewApp(&Ports{}, domain.SearchRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("seeds the input with the initial pattern", func(t *testing.T) {
		app, err := NewApp(&Ports{Search: &stubSearchService{}}, domain.SearchRequest{Pattern: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "hello", app.input.Value())
	})
}

func TestApp_EnterRunsSearch(t *testing.T) {
	search := &stubSearchService{
		blocks: []domain.OutputBlock{
			{
				Key:   domain.BlockKey{Path: "main.go", Kind: domain.KindFile},
				Lines: []string{"main.go", "  3:func hello() {}"},
			},
		},
	}
	app := newTestApp(t, search, domain.SearchRequest{Pattern: "hello", Root: "."})

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	require.NotNil(t, cmd)
	assert.True(t, app.searching)

	msg := cmd()
	results, ok := msg.(resultsMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", search.lastReq.Pattern)
	assert.Equal(t, ".", search.lastReq.Root)

	model, _ = app.Update(results)
	app = model.(*App)
	assert.False(t, app.searching)
	assert.Equal(t, 1, app.blockCount)
	assert.Contains(t, app.View(), "main.go")
}

func TestApp_SearchFailureShownInStatus(t *testing.T) {
	search := &stubSearchService{err: errors.New("bad pattern")}
	app := newTestApp(t, search, domain.SearchRequest{Pattern: "("})

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	require.NotNil(t, cmd)

	model, _ = app.Update(cmd())
	app = model.(*App)
	require.Error(t, app.err)
	assert.Contains(t, app.View(), "bad pattern")
}

func TestApp_QuitFromResults(t *testing.T) {
	app := newTestApp(t, &stubSearchService{}, domain.SearchRequest{Pattern: "x"})
	app.input.Blur()

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SlashRefocusesInput(t *testing.T) {
	app := newTestApp(t, &stubSearchService{}, domain.SearchRequest{Pattern: "x"})
	app.input.Blur()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	app = model.(*App)
	assert.True(t, app.input.Focused())
}

func TestApp_RenderBlocksSeparatesMultiLineNeighbours(t *testing.T) {
	app := newTestApp(t, &stubSearchService{}, domain.SearchRequest{})

	out := app.renderBlocks([]domain.OutputBlock{
		{Key: domain.BlockKey{Path: "a.go"}, Lines: []string{"a.go", "  1:hello"}},
		{Key: domain.BlockKey{Path: "b.go"}, Lines: []string{"b.go"}},
	})
	assert.Contains(t, out, "\n\n")
}
