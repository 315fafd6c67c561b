package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dori/goalboard/internal/catalog"
	"github.com/dori/goalboard/internal/model"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Theme    catalog.ThemeColor `yaml:"theme"`
	Font     catalog.FontFamily `yaml:"font"`
	Schema   catalog.Schema     `yaml:"schema"`
	LogLevel string             `yaml:"log_level"`
	LogFile  string             `yaml:"log_file"`

	// Notifications sends a desktop notification when a goal is completed.
	Notifications bool `yaml:"notifications"`

	// Goals seeds the board. They live in memory only.
	Goals []model.Goal `yaml:"goals"`
}

// Overrides are command-line values that take precedence over the file and
// environment. Empty fields leave the loaded value alone.
type Overrides struct {
	Theme  string
	Font   string
	Schema string
}

// DefaultConfig returns the default application configuration
func DefaultConfig() Config {
	return Config{
		Theme:    catalog.DefaultThemeColor,
		Font:     catalog.DefaultFontFamily,
		Schema:   catalog.SchemaCurrent,
		LogLevel: "info",
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/goalboard/config.yaml, falling
// back to ~/.config.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "goalboard.yaml"
	}
	return filepath.Join(dir, "goalboard", "config.yaml")
}

// LoadConfig builds the configuration with precedence: env > file > defaults.
// A missing file is not an error when path is the default path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeConfig(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GOALBOARD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return c.Apply(Overrides{
		Theme:  os.Getenv("GOALBOARD_THEME"),
		Font:   os.Getenv("GOALBOARD_FONT"),
		Schema: os.Getenv("GOALBOARD_SCHEMA"),
	})
}

// Apply overlays non-empty overrides. Invalid keys fail with a
// *catalog.ConfigLookupError.
func (c *Config) Apply(o Overrides) error {
	if o.Theme != "" {
		t, err := catalog.ParseThemeColor(o.Theme)
		if err != nil {
			return err
		}
		c.Theme = t
	}
	if o.Font != "" {
		f, err := catalog.ParseFontFamily(o.Font)
		if err != nil {
			return err
		}
		c.Font = f
	}
	if o.Schema != "" {
		s, err := catalog.ParseSchema(o.Schema)
		if err != nil {
			return err
		}
		c.Schema = s
	}
	return nil
}
