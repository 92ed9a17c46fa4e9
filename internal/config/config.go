// Package config loads engine settings from TOML files and keeps them
// fresh with a file watcher. A missing file is not an error: callers get
// the defaults.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every tunable the engines consult.
type Config struct {
	Navigation Navigation `toml:"navigation"`
	Announce   Announce   `toml:"announce"`
}

// Navigation controls caret movement behavior.
type Navigation struct {
	// TabWrap makes the placeholder leap wrap around the host's tabbable
	// elements instead of stopping at the last one.
	TabWrap bool `toml:"tab_wrap"`
}

// Announce controls the announcement side channel.
type Announce struct {
	// Enabled gates all announcements. Disabling it silences feedback
	// without changing any operation's result.
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Navigation: Navigation{TabWrap: true},
		Announce:   Announce{Enabled: true},
	}
}

// Load reads configuration from path, layered over the defaults.
// A nonexistent file yields the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// LoadReader reads configuration from r, layered over the defaults.
func LoadReader(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: "<reader>", Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Message describes the parse failure.
	Message string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
