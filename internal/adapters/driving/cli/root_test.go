package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// resetFlags restores the package flag state between executions; cobra
// keeps parsed values in package vars across Execute calls.
func resetFlags(t *testing.T) {
	t.Helper()
	flagNamesOnly = false
	flagContentOnly = false
	flagLogOnly = false
	flagLog = false
	flagIgnoreCase = false
	flagCaseSens = false
	flagSmartCase = false
	flagHidden = false
	flagNoIgnore = false
	flagNoIgnoreVCS = false
	flagNoIgnoreDot = false
	flagFileType = ""
	flagTypeList = false
	flagFixedString = false
	flagWordRegexp = false
	flagGlobs = nil
	flagExcludes = nil
	flagColor = "never"
	flagWatch = false
	flagVerbose = false
	t.Setenv("TRIDENT_CONFIG_DIR", t.TempDir())
}

// execute runs the root command with args, returning stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildRequestCasePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		sensitive   bool
		insensitive bool
		smart       bool
		want        domain.CasePolicy
	}{
		{name: "default", want: domain.CaseDefault},
		{name: "smart", smart: true, want: domain.CaseSmart},
		{name: "insensitive", insensitive: true, want: domain.CaseInsensitive},
		{name: "insensitive beats smart", insensitive: true, smart: true, want: domain.CaseInsensitive},
		{name: "sensitive beats everything", sensitive: true, insensitive: true, smart: true, want: domain.CaseSensitive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			flagCaseSens = tt.sensitive
			flagIgnoreCase = tt.insensitive
			flagSmartCase = tt.smart

			req, err := buildRequest(rootCmd, []string{"Pat"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Case)
		})
	}
}

func TestBuildRequestNoIgnoreImpliesBothLayers(t *testing.T) {
	resetFlags(t)
	flagNoIgnore = true

	req, err := buildRequest(rootCmd, []string{"x"})
	require.NoError(t, err)
	assert.True(t, req.NoIgnoreDot)
	assert.True(t, req.NoIgnoreVCS)
}

func TestBuildRequestDefaultsFromConfig(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	t.Setenv("TRIDENT_CONFIG_DIR", dir)
	config := "smart_case = true\nexclude = [\"*.lock\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0o600))

	req, err := buildRequest(rootCmd, []string{"x", "."})
	require.NoError(t, err)
	assert.Equal(t, domain.CaseSmart, req.Case)
	assert.Contains(t, req.Excludes, "*.lock")
}

func TestBuildRequestRootDefault(t *testing.T) {
	resetFlags(t)

	req, err := buildRequest(rootCmd, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, ".", req.Root)

	req, err = buildRequest(rootCmd, []string{"x", "src"})
	require.NoError(t, err)
	assert.Equal(t, "src", req.Root)
}

func TestExecuteSearchesNamesAndContents(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.go"), []byte("say hello\n"), 0o644))

	out, err := execute(t, "hello", dir)
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(dir, "hello.go")+"\n  (name match)\n")
	assert.Contains(t, out, filepath.Join(dir, "other.go")+"\n  1:say hello\n")
}

func TestExecuteNamesOnly(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.go"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.go"), []byte("hello\n"), 0o644))

	out, err := execute(t, "-n", "hello", dir)
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(dir, "hello.go"))
	assert.NotContains(t, out, "other.go")
	assert.NotContains(t, out, "(name match)")
}

func TestExecuteRejectsConflictingFlags(t *testing.T) {
	resetFlags(t)

	_, err := execute(t, "--log-only", "-n", "x", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingFlags)
}

func TestExecuteRequiresPattern(t *testing.T) {
	resetFlags(t)

	_, err := execute(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecuteTypeList(t *testing.T) {
	resetFlags(t)

	out, err := execute(t, "--type-list")
	require.NoError(t, err)
	assert.Contains(t, out, "go: *.go")
	assert.Contains(t, out, "rust: *.rs")
}
