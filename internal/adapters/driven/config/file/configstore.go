// Package file provides the TOML-backed configuration store. Defaults
// read from ~/.trident/config.toml seed a search request; explicit
// command-line flags always override them.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults are the user-configurable search defaults.
type Defaults struct {
	// SmartCase enables smart-case resolution when no case flag is given.
	SmartCase bool `toml:"smart_case"`

	// Hidden includes hidden files by default.
	Hidden bool `toml:"hidden"`

	// Exclude globs applied to every search.
	Exclude []string `toml:"exclude"`

	// Color is the default color mode: "never", "auto" or "ansi".
	Color string `toml:"color"`
}

// ConfigStore loads and persists defaults in a TOML file within the
// trident config directory.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a store rooted at configDir. If configDir is
// empty, defaults to ~/.trident.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".trident")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the defaults. A missing file yields zero defaults, not an
// error; a malformed file is a configuration error.
func (s *ConfigStore) Load() (Defaults, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, err
	}

	var d Defaults
	if err := toml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}
	return d, nil
}

// Save writes the defaults back to disk.
func (s *ConfigStore) Save(d Defaults) error {
	data, err := toml.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}
