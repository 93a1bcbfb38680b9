// Package settings persists the browse session between runs.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/pelletier/go-toml/v2"
)

const (
	FileModeDir  = 0o755
	FileModeFile = 0o644

	tuiSettingsFilename = "tui.toml"
	maxKeywordsLength   = 64
)

// ErrInvalidSettings is wrapped by Load and Save for values out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is what the browser remembers between sessions.
type Settings struct {
	// Keywords is the last search, empty for the full roster.
	Keywords string `toml:"keywords"`

	// Page is the 1-based page last shown. The browser clamps it to the
	// roster it finds on the next start.
	Page int `toml:"page"`
}

// DefaultSettings returns the state of a fresh session.
func DefaultSettings() *Settings {
	return &Settings{Page: 1}
}

// Path returns the settings file: tui_settings_path when set, otherwise
// tui.toml under state_dir.
func Path() string {
	if p := config.Get("tui_settings_path", ""); p != "" {
		return p
	}
	stateDir := config.Get("state_dir", "")
	if stateDir == "" {
		home, _ := os.UserHomeDir()
		stateDir = filepath.Join(home, ".local", "state", "barangay")
	}
	return filepath.Join(stateDir, tuiSettingsFilename)
}

// Load reads the settings at path. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes s to path, creating its directory.
func Save(path string, s *Settings) error {
	if err := validate(s); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("%w: nil settings", ErrInvalidSettings)
	}
	if s.Page < 1 {
		return fmt.Errorf("%w: page %d", ErrInvalidSettings, s.Page)
	}
	if len(strings.TrimSpace(s.Keywords)) > maxKeywordsLength {
		return fmt.Errorf("%w: keywords longer than %d characters", ErrInvalidSettings, maxKeywordsLength)
	}
	return nil
}
