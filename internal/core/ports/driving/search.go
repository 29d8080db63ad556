// Package driving defines interfaces that external actors (CLI, MCP, TUI)
// use to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
package driving

import (
	"context"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// SearchService runs one complete search and returns the report's blocks,
// sorted and ready for rendering.
type SearchService interface {
	Run(ctx context.Context, req domain.SearchRequest) ([]domain.OutputBlock, error)
}
