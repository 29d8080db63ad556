package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Pattern    string   `json:"pattern" jsonschema:"the regular expression to search for"`
	Path       string   `json:"path,omitempty" jsonschema:"directory to search (default current directory)"`
	Mode       string   `json:"mode,omitempty" jsonschema:"what to search: all, names, content or log (default all)"`
	IncludeLog bool     `json:"include_log,omitempty" jsonschema:"also search git commit messages"`
	IgnoreCase bool     `json:"ignore_case,omitempty" jsonschema:"case-insensitive matching"`
	Literal    bool     `json:"literal,omitempty" jsonschema:"treat the pattern as a literal string"`
	WholeWord  bool     `json:"whole_word,omitempty" jsonschema:"only match whole words"`
	Hidden     bool     `json:"hidden,omitempty" jsonschema:"include hidden files"`
	FileType   string   `json:"type,omitempty" jsonschema:"restrict to a file type, e.g. go or python"`
	Globs      []string `json:"globs,omitempty" jsonschema:"only search files matching these glob patterns"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Blocks []BlockOutput `json:"blocks"`
	Report string        `json:"report"`
	Count  int           `json:"count"`
}

// BlockOutput is one result block: a matched file or a repository log
// section, with its rendered lines.
type BlockOutput struct {
	Path  string   `json:"path"`
	Kind  string   `json:"kind"`
	Lines []string `json:"lines"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search file names, file contents and git commit history under a directory",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	req, err := buildRequest(input)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	blocks, err := s.ports.Search.Run(ctx, req)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Blocks: make([]BlockOutput, len(blocks)),
		Count:  len(blocks),
	}
	for i, block := range blocks {
		kind := "file"
		if block.Key.Kind == domain.KindRepoLog {
			kind = "repo-log"
		}
		output.Blocks[i] = BlockOutput{
			Path:  block.Key.Path,
			Kind:  kind,
			Lines: block.Lines,
		}
	}

	var report strings.Builder
	if err := domain.WriteBlocks(&report, blocks); err != nil {
		return nil, SearchOutput{}, err
	}
	output.Report = report.String()

	return nil, output, nil
}

// buildRequest maps the tool input onto a search request.
func buildRequest(input SearchInput) (domain.SearchRequest, error) {
	req := domain.SearchRequest{
		Pattern:    input.Pattern,
		Root:       input.Path,
		IncludeLog: input.IncludeLog,
		Literal:    input.Literal,
		WholeWord:  input.WholeWord,
		Hidden:     input.Hidden,
		FileType:   input.FileType,
		Globs:      input.Globs,
	}
	if req.Root == "" {
		req.Root = "."
	}
	if input.IgnoreCase {
		req.Case = domain.CaseInsensitive
	}

	switch input.Mode {
	case "", "all":
	case "names":
		req.NamesOnly = true
	case "content":
		req.ContentOnly = true
	case "log":
		req.LogOnly = true
	default:
		return domain.SearchRequest{}, fmt.Errorf(
			"%w: unknown mode %q (want all, names, content or log)",
			domain.ErrInvalidInput, input.Mode)
	}
	return req, nil
}
