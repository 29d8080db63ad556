// Package domain defines the core business entities for Trident.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchRequest: An immutable description of one search run
//   - ContentMatch: A line match or binary marker inside a file
//   - LogMatch: A commit whose message satisfied the pattern
//   - Repository: A discovered git working tree
//   - OutputBlock: One sortable unit of the final report
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
