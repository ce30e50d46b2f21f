package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/decisiongrid/internal/config"
)

// Config holds everything an App needs to run. Empty strings and a nil
// Precision mean "not given"; the settings file or its defaults apply.
type Config struct {
	RequestPath  string // request file or directory
	SettingsPath string // optional HCL settings file
	ValidateOnly bool

	LogFormat       string
	LogLevel        string
	Locale          string
	Precision       *int
	MetricsTextfile string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RequestPath == "" {
		return nil, errors.New("RequestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// Settings loads the settings file, when one is given, and applies the
// command-line overrides on top.
func (c *Config) Settings(loader config.Loader) (*config.Settings, error) {
	s := config.Default()
	if c.SettingsPath != "" {
		loaded, err := loader.Load(c.SettingsPath)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	override(&s.Log.Level, c.LogLevel)
	override(&s.Log.Format, c.LogFormat)
	override(&s.Engine.DefaultLocale, c.Locale)
	override(&s.Metrics.Textfile, c.MetricsTextfile)
	if c.Precision != nil {
		s.Engine.Precision = *c.Precision
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
