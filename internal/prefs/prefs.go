// Package prefs persists the handful of list display settings as a small
// JSON file. Missing or corrupt values silently fall back to defaults.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/and161185/notekeeper/internal/model"
)

// Settings are the persisted display preferences.
type Settings struct {
	SortOption    model.SortOption `json:"sort_option"`
	ShowPreview   bool             `json:"show_content_preview"`
	RelativeDates bool             `json:"show_relative_dates"`
}

// Defaults returns the settings used when nothing valid is stored.
func Defaults() Settings {
	return Settings{SortOption: model.DefaultSortOption}
}

// Store reads and writes settings at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the settings file under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "notekeeper-settings.json"
	}
	return filepath.Join(dir, "notekeeper", "settings.json")
}

// Load returns the stored settings. A missing file, unreadable JSON or an
// unknown sort value all degrade to defaults rather than failing.
func (s *Store) Load() Settings {
	out := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return out
	}

	var raw struct {
		SortOption    string `json:"sort_option"`
		ShowPreview   bool   `json:"show_content_preview"`
		RelativeDates bool   `json:"show_relative_dates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return out
	}

	out.SortOption = model.ParseSortOption(raw.SortOption)
	out.ShowPreview = raw.ShowPreview
	out.RelativeDates = raw.RelativeDates
	return out
}

// Save writes the settings, creating the parent directory if needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
