package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadFromString(t *testing.T, yaml string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, yaml)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func loadStringErr(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "courbe.yaml")
	if err := os.WriteFile(p, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return Load(p)
}

func TestLoad_Valid(t *testing.T) {
	cfg := loadFromString(t, `
canvas:
  width: 800
  height: 200
  stroke_style: "#00ff00"
  line_width: 2
  values: [3, 1, 2]
log:
  level: debug
  format: json
  file: courbe.log
`)
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 200 {
		t.Errorf("size: got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.StrokeStyle != "#00ff00" {
		t.Errorf("stroke_style: got %q", cfg.Canvas.StrokeStyle)
	}
	if cfg.Canvas.LineWidth != 2 {
		t.Errorf("line_width: got %v", cfg.Canvas.LineWidth)
	}
	if len(cfg.Canvas.Values) != 3 || cfg.Canvas.Values[0] != 3 {
		t.Errorf("values: got %v", cfg.Canvas.Values)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.File != "courbe.log" {
		t.Errorf("log: got %+v", cfg.Log)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "canvas: {}\n")
	if cfg.Canvas.Width != DefaultWidth || cfg.Canvas.Height != DefaultHeight {
		t.Errorf("default size: got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.StrokeStyle != DefaultStrokeStyle {
		t.Errorf("default stroke_style: got %q", cfg.Canvas.StrokeStyle)
	}
	if len(cfg.Canvas.Values) != len(DefaultValues) {
		t.Errorf("default values: got %v", cfg.Canvas.Values)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("default log: got %+v", cfg.Log)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"width":      "canvas:\n  width: 0\n",
		"height":     "canvas:\n  height: -5\n",
		"line_width": "canvas:\n  line_width: 0\n",
		"level":      "log:\n  level: loud\n",
		"format":     "log:\n  format: xml\n",
	}
	for field, yaml := range tests {
		_, err := loadStringErr(t, yaml)
		if err == nil {
			t.Errorf("%s: expected error", field)
			continue
		}
		if !strings.Contains(err.Error(), field) {
			t.Errorf("%s: error %q does not name the field", field, err)
		}
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := loadStringErr(t, "canvas: [\n"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestDefault_ValuesAreCopied(t *testing.T) {
	a := Default()
	a.Canvas.Values[0] = 9
	if DefaultValues[0] != 1 {
		t.Fatal("Default must not share DefaultValues")
	}
}
