package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courbe/internal/config"
	"courbe/internal/plot"
)

func TestWriteSVG_Defaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wave.svg")
	if err := writeSVG(config.Default(), out, ""); err != nil {
		t.Fatalf("writeSVG: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<path") || !strings.HasSuffix(strings.TrimSpace(string(b)), "</svg>") {
		t.Errorf("unexpected document:\n%s", b)
	}
}

func TestWriteSVG_OverflowClosesDocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "huge.json")
	if err := os.WriteFile(in, []byte(`{"values": [1e308, 1e308]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "wave.svg")
	err := writeSVG(config.Default(), out, in)
	if !errors.Is(err, plot.ErrTotalOverflow) {
		t.Fatalf("expected ErrTotalOverflow, got %v", err)
	}
	b, _ := os.ReadFile(out)
	if strings.Contains(string(b), "<path") || !strings.Contains(string(b), "</svg>") {
		t.Errorf("expected a closed blank document:\n%s", b)
	}
}
