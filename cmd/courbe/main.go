package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"courbe/internal/config"
	"courbe/internal/plot"
	"courbe/internal/svgplot"
	"courbe/internal/timings"
	"courbe/internal/tui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	svgOut := flag.String("svg", "", "write the waveform as SVG to this file (- for stdout) instead of starting the viewer")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: courbe [-config file.yaml] [-svg out.svg] [values-file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if *svgOut != "" {
		slog.SetDefault(newLogger(cfg.Log, os.Stderr))
		if err := writeSVG(cfg, *svgOut, flag.Arg(0)); err != nil {
			slog.Error("svg export failed", "err", err)
			return 1
		}
		return 0
	}

	// stdout belongs to the viewer; logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "courbe")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(newLogger(cfg.Log, logOut))

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		slog.Error("viewer stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func writeSVG(cfg *config.Config, out, input string) error {
	var values any = cfg.Canvas.Values
	if input != "" {
		vals, err := timings.Load(input)
		if err != nil {
			return err
		}
		values = vals
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	err := svgplot.Render(w, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.LineWidth, values,
		plot.WithStrokeStyle(cfg.Canvas.StrokeStyle))
	if err != nil {
		return err
	}
	slog.Info("svg written", "path", out, "width", cfg.Canvas.Width, "height", cfg.Canvas.Height)
	return nil
}

func newLogger(lc config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
