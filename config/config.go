// Package config loads viewer settings. Precedence, highest wins:
// defaults, the JSONC config file, then command-line overrides.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/miosa/shytable/logger"
	"github.com/miosa/shytable/style"
)

// Config holds all configuration options.
type Config struct {
	RowHeight  int    `json:"row_height"`
	BufferRows int    `json:"buffer_rows"`
	Rows       int    `json:"rows"`
	Theme      string `json:"theme"`
	LogLevel   string `json:"log_level,omitempty"`
	LogFormat  string `json:"log_format,omitempty"`

	// Path is the file the config was loaded from, empty when none was.
	Path string `json:"-"`
}

// fileConfig mirrors Config with pointers so an explicit zero in the file
// (buffer_rows: 0) is distinguishable from an absent key.
type fileConfig struct {
	RowHeight  *int    `json:"row_height"`
	BufferRows *int    `json:"buffer_rows"`
	Rows       *int    `json:"rows"`
	Theme      *string `json:"theme"`
	LogLevel   *string `json:"log_level"`
	LogFormat  *string `json:"log_format"`
}

// Default returns the built-in configuration. Terminal rows are one line high.
func Default() Config {
	return Config{
		RowHeight:  1,
		BufferRows: 20,
		Rows:       1_000_000,
		Theme:      "dark",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// FileName is the config file name inside the config directory.
const FileName = "config.json"

// DefaultPath returns $XDG_CONFIG_HOME/shytable/config.json, falling back to
// ~/.config/shytable/config.json. It returns "" if neither can be determined.
func DefaultPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "shytable", FileName)
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "shytable", FileName)
	}
	return ""
}

// Overrides carries command-line values. Nil fields were not given.
type Overrides struct {
	RowHeight  *int
	BufferRows *int
	Rows       *int
	Theme      *string
	LogLevel   *string
	LogFormat  *string
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	// ConfigPath is an explicit --config value; the file must exist.
	ConfigPath string
	Env        map[string]string
	Overrides  Overrides
}

// Load resolves the configuration and validates the result. A missing file at
// the default location is not an error.
func Load(in LoadInput) (Config, error) {
	cfg := Default()

	path, mustExist := in.ConfigPath, true
	if path == "" {
		path, mustExist = DefaultPath(in.Env), false
	}

	if path != "" {
		fc, loaded, err := loadFile(path, mustExist)
		if err != nil {
			return Config{}, err
		}
		if loaded {
			cfg = merge(cfg, fc)
			cfg.Path = path
		}
	}

	cfg = in.Overrides.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if mustExist {
				return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}
			return fileConfig{}, false, nil
		}
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	fc, err := parse(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	return fc, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var fc fileConfig
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return fc, nil
}

func merge(base Config, fc fileConfig) Config {
	if fc.RowHeight != nil {
		base.RowHeight = *fc.RowHeight
	}
	if fc.BufferRows != nil {
		base.BufferRows = *fc.BufferRows
	}
	if fc.Rows != nil {
		base.Rows = *fc.Rows
	}
	if fc.Theme != nil {
		base.Theme = *fc.Theme
	}
	if fc.LogLevel != nil {
		base.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		base.LogFormat = *fc.LogFormat
	}
	return base
}

func (o Overrides) apply(cfg Config) Config {
	return merge(cfg, fileConfig(o))
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.RowHeight < 1:
		return fmt.Errorf("%w: row_height must be at least 1, got %d", ErrInvalidConfig, c.RowHeight)
	case c.BufferRows < 0:
		return fmt.Errorf("%w: buffer_rows cannot be negative, got %d", ErrInvalidConfig, c.BufferRows)
	case c.Rows < 0:
		return fmt.Errorf("%w: rows cannot be negative, got %d", ErrInvalidConfig, c.Rows)
	}
	if _, ok := style.Themes[c.Theme]; !ok {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseType(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SaveTheme sets the theme key in the config file at path and leaves every
// other key, and the file's comments, as they were. Command-line overrides
// of the running process never reach the file.
func SaveTheme(path, theme string) error {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data = []byte("{}")
	case err != nil:
		return fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	v, err := hujson.Parse(data)
	if err != nil {
		return fmt.Errorf("%w %s: invalid JSONC: %w", ErrInvalidConfig, path, err)
	}
	op, err := json.Marshal([]map[string]any{{"op": "add", "path": "/theme", "value": theme}})
	if err != nil {
		return fmt.Errorf("encode theme patch: %w", err)
	}
	if err := v.Patch(op); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	v.Format()
	out := v.Pack()

	fc, err := parse(out)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	if err := merge(Default(), fc).Validate(); err != nil {
		return err
	}
	return write(path, out)
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
