// Package config loads optional mandate settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrorKind represents the type of configuration error.
type ErrorKind string

const (
	FileNotFound    ErrorKind = "FILE_NOT_FOUND"
	InvalidYAML     ErrorKind = "INVALID_YAML"
	ValidationError ErrorKind = "VALIDATION_ERROR"
)

// Error represents an error that occurred during configuration loading.
type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidYAML:
		return fmt.Sprintf("invalid YAML in configuration file %s: %s", e.Path, e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// Config holds user settings.
//
//	format: "MMMM Do, YYYY"
//	formats:
//	  short: "M/D/YY"
//	  log: "YYYY-MM-DD HH:mm:ss.SS"
type Config struct {
	Format  string            `yaml:"format"`  // Default pattern (empty = built-in default)
	Formats map[string]string `yaml:"formats"` // Named patterns usable as presets
}

// DefaultPath returns the default configuration file location, or "" if the
// user configuration directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mandate", "config.yml")
}

// Load reads the configuration at path. An empty path loads DefaultPath,
// where a missing file yields an empty configuration. A missing file at an
// explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return &Config{}, nil
			}
			return nil, &Error{Kind: FileNotFound, Path: path}
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Kind: InvalidYAML, Path: path, Message: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that named patterns are well formed.
func (c *Config) Validate() error {
	for name, pattern := range c.Formats {
		if strings.TrimSpace(name) == "" {
			return &Error{
				Kind:    ValidationError,
				Message: "formats cannot contain an empty name",
			}
		}
		if pattern == "" {
			return &Error{
				Kind:    ValidationError,
				Message: fmt.Sprintf("formats.%s cannot be empty", name),
			}
		}
	}
	return nil
}

// Pattern returns the named pattern from Formats.
func (c *Config) Pattern(name string) (string, bool) {
	pattern, ok := c.Formats[name]
	return pattern, ok
}
