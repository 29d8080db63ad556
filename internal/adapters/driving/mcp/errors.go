// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Trident. It lets AI assistants run combined name, content and git-log
// searches over a directory tree.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
