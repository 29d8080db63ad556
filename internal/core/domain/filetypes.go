package domain

import (
	"fmt"
	"sort"
)

// FileTypes is the built-in registry mapping type names to glob sets,
// selectable with --type and listed with --type-list.
var FileTypes = map[string][]string{
	"asm":      {"*.asm", "*.s", "*.S"},
	"c":        {"*.c", "*.h"},
	"cmake":    {"CMakeLists.txt", "*.cmake"},
	"cpp":      {"*.cpp", "*.cc", "*.cxx", "*.hpp", "*.hh", "*.hxx"},
	"cs":       {"*.cs"},
	"css":      {"*.css", "*.scss", "*.sass", "*.less"},
	"docker":   {"Dockerfile", "Dockerfile.*", "*.dockerfile"},
	"elixir":   {"*.ex", "*.exs"},
	"erlang":   {"*.erl", "*.hrl"},
	"go":       {"*.go"},
	"haskell":  {"*.hs", "*.lhs"},
	"html":     {"*.html", "*.htm"},
	"java":     {"*.java"},
	"js":       {"*.js", "*.jsx", "*.mjs", "*.cjs"},
	"json":     {"*.json"},
	"kotlin":   {"*.kt", "*.kts"},
	"lua":      {"*.lua"},
	"make":     {"Makefile", "makefile", "GNUmakefile", "*.mk"},
	"md":       {"*.md", "*.markdown"},
	"nix":      {"*.nix"},
	"ocaml":    {"*.ml", "*.mli"},
	"perl":     {"*.pl", "*.pm"},
	"php":      {"*.php"},
	"proto":    {"*.proto"},
	"py":       {"*.py", "*.pyi"},
	"rb":       {"*.rb", "Rakefile", "Gemfile"},
	"rust":     {"*.rs"},
	"scala":    {"*.scala", "*.sbt"},
	"sh":       {"*.sh", "*.bash", "*.zsh"},
	"sql":      {"*.sql"},
	"svelte":   {"*.svelte"},
	"swift":    {"*.swift"},
	"texinfo":  {"*.texi"},
	"toml":     {"*.toml", "Cargo.lock"},
	"ts":       {"*.ts", "*.tsx", "*.mts", "*.cts"},
	"vue":      {"*.vue"},
	"xml":      {"*.xml", "*.xsd", "*.xsl"},
	"yaml":     {"*.yaml", "*.yml"},
	"zig":      {"*.zig"},
	"zsh":      {"*.zsh", ".zshrc"},
	"markdown": {"*.md", "*.markdown"},
	"python":   {"*.py", "*.pyi"},
	"ruby":     {"*.rb", "Rakefile", "Gemfile"},
}

// FileTypeGlobs resolves a type name against the registry.
func FileTypeGlobs(name string) ([]string, error) {
	globs, ok := FileTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileType, name)
	}
	return globs, nil
}

// FileTypeNames returns all registered type names in sorted order.
func FileTypeNames() []string {
	names := make([]string, 0, len(FileTypes))
	for name := range FileTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
