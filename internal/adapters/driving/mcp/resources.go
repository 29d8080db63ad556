package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for Trident resources.
const uriScheme = "trident://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the file type registry, so clients can discover
	// valid values for the search tool's "type" input.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "types",
		Name:        "file-types",
		Description: "File type definitions accepted by the search tool's type filter",
		MIMEType:    "application/json",
	}, s.handleTypesResource)
}

// handleTypesResource returns the file type registry as JSON.
func (s *Server) handleTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type typeInfo struct {
		Name  string   `json:"name"`
		Globs []string `json:"globs"`
	}

	names := domain.FileTypeNames()
	infos := make([]typeInfo, len(names))
	for i, name := range names {
		globs, err := domain.FileTypeGlobs(name)
		if err != nil {
			return nil, fmt.Errorf("resolving type %s: %w", name, err)
		}
		infos[i] = typeInfo{Name: name, Globs: globs}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
