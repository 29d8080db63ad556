package services

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/ports/driven"
)

// --- Mock implementations of the driven ports ---

// mockEntry is one scripted traversal outcome.
type mockEntry struct {
	entry driven.Entry
	err   error
}

// mockWalker implements driven.Walker over a scripted entry list.
type mockWalker struct {
	entries []mockEntry
	walkErr error
}

func (m *mockWalker) Walk(_ context.Context, _ driven.WalkOptions, fn driven.WalkFunc) error {
	if m.walkErr != nil {
		return m.walkErr
	}
	for _, e := range m.entries {
		if err := fn(e.entry, e.err); err != nil {
			return err
		}
	}
	return nil
}

// mockFile is scripted file content for the mock matcher.
type mockFile struct {
	lines        []string
	binaryOffset int64 // -1 for text files
}

// mockCompiler implements driven.MatcherCompiler with real regexp
// compilation and in-memory file contents.
type mockCompiler struct {
	files map[string]mockFile
}

func (m *mockCompiler) Compile(expr string, insensitive bool) (driven.Matcher, error) {
	if insensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &mockMatcher{re: re, files: m.files}, nil
}

type mockMatcher struct {
	re    *regexp.Regexp
	files map[string]mockFile
}

func (m *mockMatcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

func (m *mockMatcher) SearchFile(path string, sink driven.ContentSink) error {
	file := m.files[path]
	for i, line := range file.lines {
		if m.re.MatchString(line) {
			sink.Match(i+1, line)
		}
	}
	if file.binaryOffset >= 0 {
		sink.Binary(file.binaryOffset)
	}
	return nil
}

// mockVCS implements driven.VersionControl with scripted responses.
type mockVCS struct {
	toplevel    string
	toplevelErr error
	logs        map[string][]domain.LogMatch
	logErr      map[string]error
	logCalls    []string
}

func (m *mockVCS) Toplevel(_ context.Context, _ string) (string, error) {
	if m.toplevelErr != nil {
		return "", m.toplevelErr
	}
	return m.toplevel, nil
}

func (m *mockVCS) LogSearch(_ context.Context, repo, _ string, _ bool) ([]domain.LogMatch, error) {
	m.logCalls = append(m.logCalls, repo)
	if err, ok := m.logErr[repo]; ok {
		return nil, err
	}
	return m.logs[repo], nil
}

// recordingSink implements driven.DiagnosticSink, collecting pairs.
type recordingSink struct {
	mu      sync.Mutex
	reports []string
}

func (r *recordingSink) Report(scope, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, scope+": "+message)
}

func (r *recordingSink) contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if strings.Contains(report, substr) {
			return true
		}
	}
	return false
}

// fileEntries builds scripted non-directory entries from paths.
func fileEntries(paths ...string) []mockEntry {
	entries := make([]mockEntry, len(paths))
	for i, p := range paths {
		entries[i] = mockEntry{entry: driven.Entry{Path: p}}
	}
	return entries
}
