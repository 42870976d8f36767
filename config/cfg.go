package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"pcss/css"
)

type (
	// ViewportConfig is the page area media queries and viewport units
	// evaluate against.
	ViewportConfig struct {
		Width  float64 `yaml:"width" validate:"gt=0"`
		Height float64 `yaml:"height" validate:"gt=0"`
		Media  string  `yaml:"media" validate:"oneof=print screen"`
	}

	// DocumentConfig carries per-document processing options.
	DocumentConfig struct {
		BaseURL     string `yaml:"base_url,omitempty"`
		DefaultLang string `yaml:"default_lang,omitempty"`
	}

	Config struct {
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
		Viewport  ViewportConfig `yaml:"viewport"`
		Document  DocumentConfig `yaml:"document"`
	}
)

// Viewport converts the configuration into the engine's evaluation
// context. A4 portrait at 96 dpi is the default.
func (v ViewportConfig) Viewport() css.Viewport {
	media := css.MediaTypePrint
	if v.Media == "screen" {
		media = css.MediaTypeScreen
	}
	return css.Viewport{Width: v.Width, Height: v.Height, Media: media}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
		Reporting: ReporterConfig{Destination: "pcss-report.zip"},
		Viewport: ViewportConfig{
			Width:  794,
			Height: 1123,
			Media:  "print",
		},
	}
}

// LoadConfiguration reads a yaml configuration on top of the defaults
// and validates the result. An empty path returns the defaults.
func LoadConfiguration(fname string) (*Config, error) {
	cfg := Default()
	if len(fname) > 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration '%s': %w", fname, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to parse configuration '%s': %w", fname, err)
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration is invalid: %w", err)
	}
	if lang := cfg.Document.DefaultLang; len(lang) > 0 {
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("configuration document language '%s' is invalid: %w", lang, err)
		}
	}
	return cfg, nil
}

// Dump serializes the processed configuration for debug reports.
func Dump(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
