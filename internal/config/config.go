// Package config loads rewind-demo configuration from TOML files.
//
// A missing config file is not an error; the built-in defaults are used.
// Parse failures are reported as a ParseError carrying the source path.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when no config file is present.
const (
	DefaultTitleCapacity = 16
	DefaultBodyCapacity  = 64
)

// Config holds the demo settings.
type Config struct {
	// Title bounds the title field's undo history.
	Title Field `toml:"title"`

	// Body bounds the body field's undo history.
	Body Field `toml:"body"`

	// ShowTags controls whether undo/redo tags appear in the status line.
	ShowTags bool `toml:"show_tags"`
}

// Field configures one undo-tracked input field.
type Field struct {
	// Capacity is the number of undo steps retained. Zero means unbounded.
	Capacity int `toml:"capacity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:    Field{Capacity: DefaultTitleCapacity},
		Body:     Field{Capacity: DefaultBodyCapacity},
		ShowTags: true,
	}
}

// Load reads the TOML file at path and overlays it on the defaults.
// An empty path or a missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Title.Capacity < 0 {
		return fmt.Errorf("title.capacity must be zero (unbounded) or positive, got %d", c.Title.Capacity)
	}
	if c.Body.Capacity < 0 {
		return fmt.Errorf("body.capacity must be zero (unbounded) or positive, got %d", c.Body.Capacity)
	}
	return nil
}

// ParseError describes a TOML parse failure.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Message is the parser's description of the failure.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
