package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
)

// FileConfig is the on-disk YAML configuration shape for seclab. Nil fields
// are unset and fall through to the next layer.
type FileConfig struct {
	// Shift is the default Caesar shift.
	Shift *int `yaml:"shift,omitempty" env:"SECLAB_SHIFT"`

	// Key is the default Vigenère key.
	Key *string `yaml:"key,omitempty" env:"SECLAB_KEY"`

	NoColor *bool `yaml:"no_color,omitempty" env:"SECLAB_NO_COLOR"`

	// Format is one of table, text or json.
	Format *string `yaml:"format,omitempty" env:"SECLAB_FORMAT"`

	// LogLevel is a zerolog level name such as debug or warn.
	LogLevel *string `yaml:"log_level,omitempty" env:"SECLAB_LOG_LEVEL"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a project-local config file in dir.
// It supports .seclab.yml/.yaml and seclab.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range []string{".seclab.yml", ".seclab.yaml", "seclab.yml", "seclab.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, ErrNoConfig
	}
	p := filepath.Join(base, "seclab", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, ErrNoConfig
}

// Marshal encodes cfg as YAML, omitting unset fields.
func Marshal(cfg FileConfig) ([]byte, error) {
	return yaml.Marshal(&cfg)
}

// Validate checks the values that have a closed set of choices.
func (fc FileConfig) Validate() error {
	if fc.Format != nil {
		switch *fc.Format {
		case FormatTable, FormatText, FormatJSON:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidFormat, *fc.Format)
		}
	}
	if fc.LogLevel != nil {
		if _, err := zerolog.ParseLevel(*fc.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, *fc.LogLevel)
		}
	}
	return nil
}

// GetShift returns the configured shift or 0.
func (fc FileConfig) GetShift() int {
	if fc.Shift == nil {
		return 0
	}
	return *fc.Shift
}

// GetKey returns the configured Vigenère key or "".
func (fc FileConfig) GetKey() string {
	if fc.Key == nil {
		return ""
	}
	return *fc.Key
}

// IsNoColor reports whether colour output is disabled (default: false).
func (fc FileConfig) IsNoColor() bool {
	return fc.NoColor != nil && *fc.NoColor
}

// GetFormat returns the configured output format (default: table).
func (fc FileConfig) GetFormat() string {
	if fc.Format == nil || *fc.Format == "" {
		return FormatTable
	}
	return *fc.Format
}

// GetLogLevel returns the configured log level (default: warn).
func (fc FileConfig) GetLogLevel() string {
	if fc.LogLevel == nil || *fc.LogLevel == "" {
		return zerolog.WarnLevel.String()
	}
	return *fc.LogLevel
}
