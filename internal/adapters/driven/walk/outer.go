package walk

import (
	"os"
	"path/filepath"
	"strings"
)

// globalIgnorePath resolves the user-level gitignore: core.excludesFile
// from ~/.gitconfig when set, otherwise $XDG_CONFIG_HOME/git/ignore,
// otherwise ~/.config/git/ignore.
func globalIgnorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if home != "" {
		if p := excludesFileFromConfig(filepath.Join(home, ".gitconfig"), home); p != "" {
			return p
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	if home != "" {
		return filepath.Join(home, ".config", "git", "ignore")
	}
	return ""
}

// excludesFileFromConfig extracts core.excludesFile from a git config
// file. Only the [core] section is consulted; values may be plain paths,
// quoted, or ~-prefixed.
func excludesFileFromConfig(configPath, home string) string {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return ""
	}

	inCore := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "["):
			inCore = strings.EqualFold(line, "[core]")
		case inCore:
			key, value, ok := strings.Cut(line, "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "excludesfile") {
				continue
			}
			value = strings.Trim(strings.TrimSpace(value), `"`)
			if strings.HasPrefix(value, "~/") && home != "" {
				value = filepath.Join(home, value[2:])
			}
			return value
		}
	}
	return ""
}

// findToplevel walks upward from root to the nearest directory containing
// a .git entry. Returns "" when root is not inside a repository.
func findToplevel(root string) string {
	dir, err := filepath.Abs(root)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// outerIgnoreFiles loads the ignore layers that live above the walk root
// when the root sits inside a repository: the toplevel's info/exclude,
// then the .gitignore/.ignore files of every directory from the toplevel
// down to the root's parent. Returned lowest-precedence first.
func outerIgnoreFiles(root string, readVCS, readDot bool) []*ignoreFile {
	top := findToplevel(root)
	if top == "" {
		return nil
	}
	absRoot, err := filepath.Abs(root)
	if err != nil || top == absRoot {
		return nil
	}

	// Directories from the toplevel (inclusive) down to root's parent.
	var dirs []string
	for dir := filepath.Dir(absRoot); ; dir = filepath.Dir(dir) {
		dirs = append([]string{dir}, dirs...)
		if dir == top || dir == filepath.Dir(dir) {
			break
		}
	}

	var files []*ignoreFile
	push := func(filePath, dir string) {
		ig, err := parseIgnoreFile(filePath, "")
		if err != nil || ig == nil {
			return
		}
		prefix, err := filepath.Rel(dir, absRoot)
		if err != nil {
			return
		}
		ig.prefix = filepath.ToSlash(prefix)
		files = append(files, ig)
	}

	if readVCS {
		push(filepath.Join(top, ".git", "info", "exclude"), top)
	}
	for _, dir := range dirs {
		if readVCS {
			push(filepath.Join(dir, ".gitignore"), dir)
		}
		if readDot {
			// .ignore outranks .gitignore at the same depth.
			push(filepath.Join(dir, ".ignore"), dir)
		}
	}
	return files
}
