// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Walker: Ignore-aware directory traversal
//   - MatcherCompiler: Compiles patterns into name/content matchers
//   - VersionControl: Git subprocess queries (toplevel, log search)
//   - DiagnosticSink: Receives recoverable per-entry diagnostics
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
