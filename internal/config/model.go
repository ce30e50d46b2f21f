package config

import "github.com/specialistvlad/decisiongrid/internal/node"

// Settings is the resolved application configuration.
type Settings struct {
	Engine  Engine
	Log     Log
	Metrics Metrics
}

// Engine configures graph evaluation.
type Engine struct {
	Precision     int    `validate:"gte=0,lte=12"`
	DefaultLocale string `validate:"required,bcp47_language_tag"`
}

// Log configures the application logger.
type Log struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=text json"`
}

// Metrics configures metric export. An empty Textfile disables it.
type Metrics struct {
	Textfile string
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		Engine: Engine{Precision: node.DefaultPrecision, DefaultLocale: "en"},
		Log:    Log{Level: "info", Format: "json"},
	}
}

// Loader reads settings from a source.
type Loader interface {
	Load(path string) (*Settings, error)
}
