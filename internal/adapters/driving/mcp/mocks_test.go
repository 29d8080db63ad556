package mcp

import (
	"context"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	blocks  []domain.OutputBlock
	err     error
	lastReq domain.SearchRequest
}

func (m *mockSearchService) Run(
	_ context.Context,
	req domain.SearchRequest,
) ([]domain.OutputBlock, error) {
	m.lastReq = req
	return m.blocks, m.err
}
