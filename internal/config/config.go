// Package config loads courbe settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultWidth       = 400
	DefaultHeight      = 100
	DefaultStrokeStyle = "#7C3AED"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// DefaultValues is the waveform drawn before any input is given.
var DefaultValues = []float64{1, 1, 1, 1}

// Config is the top-level configuration.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Log    LogConfig    `yaml:"log"`
}

// CanvasConfig describes the SVG output canvas and the initial plot.
type CanvasConfig struct {
	// Width and Height are the SVG canvas size in pixels. The terminal view
	// sizes itself to the window instead.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// StrokeStyle is the line color as "#rgb" or "#rrggbb".
	StrokeStyle string `yaml:"stroke_style"`

	// LineWidth is the SVG stroke width.
	LineWidth float64 `yaml:"line_width"`

	// Values are plotted at startup when no input file is given.
	Values []float64 `yaml:"values"`
}

// LogConfig controls slog output.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is one of: text | json.
	Format string `yaml:"format"`

	// File receives log output in the terminal viewer, whose stdout is the UI.
	// Empty disables logging there.
	File string `yaml:"file"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse is Load without the file read.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			StrokeStyle: DefaultStrokeStyle,
			LineWidth:   1,
			Values:      append([]float64(nil), DefaultValues...),
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func validate(cfg *Config) error {
	if cfg.Canvas.Width <= 0 {
		return fmt.Errorf("canvas.width must be positive")
	}
	if cfg.Canvas.Height <= 0 {
		return fmt.Errorf("canvas.height must be positive")
	}
	if cfg.Canvas.LineWidth <= 0 {
		return fmt.Errorf("canvas.line_width must be positive")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Log.Format)
	}
	return nil
}
