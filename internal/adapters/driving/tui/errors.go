// Package tui provides the interactive terminal UI for Trident, built on
// Bubbletea's Elm architecture. One screen: a pattern input on top, the
// merged search report in a scrollable viewport beneath it.
package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")
