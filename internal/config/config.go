// Package config manages keyscope settings.
//
// Settings live in a TOML file and cover the viewer's presentation
// state: per-column display formats, the adjustment toggle, log bounds,
// and the optional filter script and record paths. The file is written
// back on exit so the viewer reopens the way it was left.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Column display formats. Numeric columns cycle dec/hex/bin; the key
// column cycles the sml/ray/glfw vocabularies.
const (
	FormatDec  = "dec"
	FormatHex  = "hex"
	FormatBin  = "bin"
	FormatSml  = "sml"
	FormatRay  = "ray"
	FormatGlfw = "glfw"
)

// Settings is the persisted configuration.
type Settings struct {
	// Adjust enables the normalization pass.
	Adjust bool `toml:"adjust"`

	// MaxEvents bounds the in-memory event log; 0 means the default.
	MaxEvents int `toml:"max_events"`

	// FilterScript is the path of an optional Lua filter, empty for none.
	FilterScript string `toml:"filter_script"`

	// RecordPath is where normalized events are recorded, empty to
	// disable recording.
	RecordPath string `toml:"record_path"`

	// Columns holds the per-column display formats.
	Columns ColumnFormats `toml:"columns"`
}

// ColumnFormats selects a display format per viewer column.
type ColumnFormats struct {
	VKey  string `toml:"vkey"`
	Make  string `toml:"make"`
	Flags string `toml:"flags"`
	Key   string `toml:"key"`
	Code  string `toml:"code"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		Adjust: true,
		Columns: ColumnFormats{
			VKey:  FormatHex,
			Make:  FormatHex,
			Flags: FormatBin,
			Key:   FormatSml,
			Code:  FormatHex,
		},
	}
}

// Load reads settings from path. A missing file yields the defaults,
// not an error; a present but unparseable file is an error so a typo
// does not silently reset the configuration.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	s.normalize()
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "keyscope.toml"
	}
	return filepath.Join(dir, "keyscope", "keyscope.toml")
}

// normalize replaces unknown format names with the defaults so a stale
// or hand-edited file degrades rather than breaking the viewer.
func (s *Settings) normalize() {
	def := Default().Columns
	s.Columns.VKey = pickNumeric(s.Columns.VKey, def.VKey)
	s.Columns.Make = pickNumeric(s.Columns.Make, def.Make)
	s.Columns.Flags = pickNumeric(s.Columns.Flags, def.Flags)
	s.Columns.Code = pickNumeric(s.Columns.Code, def.Code)

	switch s.Columns.Key {
	case FormatSml, FormatRay, FormatGlfw:
	default:
		s.Columns.Key = def.Key
	}

	if s.MaxEvents < 0 {
		s.MaxEvents = 0
	}
}

func pickNumeric(format, fallback string) string {
	switch format {
	case FormatDec, FormatHex, FormatBin:
		return format
	default:
		return fallback
	}
}
