// Package settings persists the process-wide display preferences. The
// transaction engine never touches these; only the command layer reads
// and updates them (load at start, save on change).
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"baiyun/piggyvault/internal/fileutils"
)

// FileName is the settings file under the data root.
const FileName = "global_settings.json"

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// GlobalSettings holds the display and auto-open preferences.
type GlobalSettings struct {
	AutoOpenLastBank   bool
	LastOpenedBank     string
	BaseFontSize       int
	ZoomFactor         float64
	HistoryTimeFormat  string
	HistoryDisplayMode string
}

// Defaults returns the initial settings.
func Defaults() GlobalSettings {
	return GlobalSettings{
		AutoOpenLastBank:   true,
		LastOpenedBank:     "",
		BaseFontSize:       10,
		ZoomFactor:         1.4,
		HistoryTimeFormat:  "second",
		HistoryDisplayMode: "all",
	}
}

// settingsJSON is the wire document. last_opened_bank is nullable; the
// original application stored null when no account had been opened.
type settingsJSON struct {
	AutoOpenLastBank   *bool    `json:"auto_open_last_bank"`
	LastOpenedBank     *string  `json:"last_opened_bank"`
	BaseFontSize       *int     `json:"base_font_size"`
	ZoomFactor         *float64 `json:"zoom_factor"`
	HistoryTimeFormat  *string  `json:"history_time_format"`
	HistoryDisplayMode *string  `json:"history_display_mode"`
}

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore returns a settings store under the given data root.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, FileName)}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings, filling absent or mistyped keys from defaults.
// A missing or corrupt file yields the defaults.
func (s *Store) Load() GlobalSettings {
	out := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return out
	}

	var doc settingsJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithError(err).Warn("settings file corrupt, using defaults")
		return out
	}

	if doc.AutoOpenLastBank != nil {
		out.AutoOpenLastBank = *doc.AutoOpenLastBank
	}
	if doc.LastOpenedBank != nil {
		out.LastOpenedBank = *doc.LastOpenedBank
	}
	if doc.BaseFontSize != nil {
		out.BaseFontSize = *doc.BaseFontSize
	}
	if doc.ZoomFactor != nil {
		out.ZoomFactor = *doc.ZoomFactor
	}
	if doc.HistoryTimeFormat != nil {
		out.HistoryTimeFormat = *doc.HistoryTimeFormat
	}
	if doc.HistoryDisplayMode != nil {
		out.HistoryDisplayMode = *doc.HistoryDisplayMode
	}
	return out
}

// Save writes the settings, creating the data directory if needed.
func (s *Store) Save(gs GlobalSettings) error {
	doc := settingsJSON{
		AutoOpenLastBank:   &gs.AutoOpenLastBank,
		BaseFontSize:       &gs.BaseFontSize,
		ZoomFactor:         &gs.ZoomFactor,
		HistoryTimeFormat:  &gs.HistoryTimeFormat,
		HistoryDisplayMode: &gs.HistoryDisplayMode,
	}
	if gs.LastOpenedBank != "" {
		doc.LastOpenedBank = &gs.LastOpenedBank
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return fileutils.WriteFile(s.path, data, 0644)
}

// SetLastOpened records the most recently opened account.
func (s *Store) SetLastOpened(name string) error {
	gs := s.Load()
	gs.LastOpenedBank = name
	return s.Save(gs)
}

// ClearLastOpenedIf clears the last-opened pointer when it matches name,
// e.g. after that account is deleted.
func (s *Store) ClearLastOpenedIf(name string) error {
	gs := s.Load()
	if gs.LastOpenedBank != name {
		return nil
	}
	gs.LastOpenedBank = ""
	return s.Save(gs)
}
