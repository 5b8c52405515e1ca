package tui

import (
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"courbe/internal/config"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	cfg    *config.Config
	log    *slog.Logger
	values []any
	// invalid is set when values failed validation; the plot stays blank
	invalid bool

	// last rendered plot size in cells (for hover and the table)
	plotW int
	plotH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hover state
	hovering    bool
	hoverX      float64
	hoverY      float64
	hoverSample int

	// coordinates table
	showCoords bool
	tbl        table.Model
}

// New builds the viewer with cfg's initial values plotted.
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		helpVisible: true,
		status:      "courbe ready",
		cfg:         cfg,
		log:         slog.Default(),
		hoverSample: -1,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste timed values (comma or space separated). Press Enter to plot; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// coordinates table setup
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(coordColumns))
	m.tbl.SetHeight(12)
	m.refreshDir()
	m.setValues(toAny(cfg.Canvas.Values), "defaults")
	return m
}

// NewWithPath preloads a file's values at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func toAny(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
