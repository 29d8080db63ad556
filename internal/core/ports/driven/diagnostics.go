package driven

// DiagnosticSink receives recoverable diagnostics from deep inside the
// collectors. Collectors never write to process streams directly; the
// caller decides how pairs are rendered.
type DiagnosticSink interface {
	// Report records one diagnostic. scope identifies what was being
	// processed (a path, a repository); message describes the failure.
	Report(scope, message string)
}
