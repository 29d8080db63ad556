package domain

// ContentMatch is the outcome of matching one region of a file's contents.
// It is a closed union: a file's entry is either a non-empty list of
// LineMatch values or a single BinaryMatch, never a mixture.
type ContentMatch interface {
	isContentMatch()
}

// LineMatch is a single matching line of a text file.
type LineMatch struct {
	// Number is the 1-based line number.
	Number int

	// Text is the line with its trailing newline stripped.
	Text string
}

func (LineMatch) isContentMatch() {}

// BinaryMatch marks a file that matched before binary data was detected.
// It carries no text payload; the raw bytes are never shown.
type BinaryMatch struct{}

func (BinaryMatch) isContentMatch() {}

// LogMatch is one commit whose message satisfied the pattern.
// Created per log query and discarded once the report is printed.
type LogMatch struct {
	// Repo is the owning repository path as discovered.
	Repo string

	// Hash is the abbreviated commit hash.
	Hash string

	// Date is the commit date in the query's short format.
	Date string

	// Message is the commit subject line.
	Message string
}

// Repository is a discovered git working tree root.
type Repository struct {
	// Path is the repository path as discovered, used for display.
	Path string

	// Canonical is the symlink-resolved absolute path, used only for
	// deduplication across discovery sources.
	Canonical string
}
