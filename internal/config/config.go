package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable lsgit settings.
type Config struct {
	Theme        string `json:"theme"`          // "dimm" | "light" | "dark" | "contrast"
	Format       string `json:"format"`         // "table" | "json"
	Color        string `json:"color"`          // "auto" | "always" | "never"
	MaxNameWidth int    `json:"max_name_width"` // longer names are truncated
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		Theme:        "dimm",
		Format:       "table",
		Color:        "auto",
		MaxNameWidth: 35,
	}
}

// LoadGlobal reads ~/.config/lsgit/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "lsgit", "config.json")
	return loadFile(path, true)
}

// LoadProject reads .lsgitconfig in dir.
// Returns nil (no error) if the file is absent.
func LoadProject(dir string) (*Config, error) {
	return loadFile(filepath.Join(dir, ".lsgitconfig"), false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	for _, c := range []*Config{global, project} {
		if c == nil {
			continue
		}
		if c.Theme != "" {
			result.Theme = c.Theme
		}
		if c.Format != "" {
			result.Format = c.Format
		}
		if c.Color != "" {
			result.Color = c.Color
		}
		if c.MaxNameWidth > 0 {
			result.MaxNameWidth = c.MaxNameWidth
		}
	}
	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
