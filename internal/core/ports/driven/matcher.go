package driven

// ContentSink receives streamed content-match events for one file.
// Match is called once per matching line in order; Binary is called at most
// once, as an end-of-stream condition, when a NUL byte is observed.
type ContentSink interface {
	// Match reports a matching line. lineNumber is 1-based; text is the
	// raw line with its trailing newline stripped.
	Match(lineNumber int, text string)

	// Binary reports that binary data was observed at the given byte
	// offset. No further Match calls follow.
	Binary(offset int64)
}

// Matcher answers pattern queries for one compiled pattern.
type Matcher interface {
	// MatchString reports whether text matches the pattern.
	MatchString(text string) bool

	// SearchFile streams line-oriented matches from the file at path
	// into sink. The returned error covers I/O failures only; a binary
	// file is not an error.
	SearchFile(path string, sink ContentSink) error
}

// MatcherCompiler compiles an effective pattern into a Matcher.
type MatcherCompiler interface {
	// Compile builds a matcher for expr. insensitive selects
	// case-insensitive matching. An uncompilable expr is an error.
	Compile(expr string, insensitive bool) (Matcher, error)
}
