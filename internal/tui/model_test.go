package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"courbe/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestNew_PlotsDefaults(t *testing.T) {
	m := New(config.Default())
	if m.invalid {
		t.Fatal("defaults must be valid")
	}
	if !strings.Contains(m.status, "samples=4 total=4 positive=4") {
		t.Errorf("status: got %q", m.status)
	}
	if m.View() != "" {
		t.Error("View before the first WindowSizeMsg must be empty")
	}
}

func TestUpdate_ResizeAndView(t *testing.T) {
	m := send(t, New(nil), tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.plotW != 79 || m.plotH != 21 {
		t.Errorf("plot size: got %dx%d, want 79x21", m.plotW, m.plotH)
	}
	v := m.View()
	if !strings.Contains(v, "courbe") {
		t.Errorf("view is missing the header:\n%s", v)
	}
}

func TestUpdate_PasteInvalidThenReset(t *testing.T) {
	m := send(t, New(nil), tea.WindowSizeMsg{Width: 80, Height: 24}, key("p"))
	if !m.pasteMode {
		t.Fatal("expected paste mode")
	}
	m.ta.SetValue("1, x, 2")
	m = send(t, m, key("enter"))
	if m.pasteMode {
		t.Error("paste mode must close after enter")
	}
	if !m.invalid || !strings.HasPrefix(m.status, "pasted: ") {
		t.Errorf("expected validation failure, status %q", m.status)
	}
	if strings.ContainsAny(m.renderPlot(m.plotW, m.plotH), "⠁⠈⡀⢀⣀") {
		t.Error("invalid values must leave the plot blank")
	}

	m = send(t, m, key("r"))
	if m.invalid {
		t.Errorf("reset must restore valid defaults, status %q", m.status)
	}
}

func TestUpdate_PasteEmptyAndEscape(t *testing.T) {
	m := send(t, New(nil), key("p"), key("enter"))
	if m.status != "paste: empty" || !m.pasteMode {
		t.Errorf("empty paste: status %q pasteMode %v", m.status, m.pasteMode)
	}
	m = send(t, m, key("esc"))
	if m.pasteMode {
		t.Error("esc must leave paste mode")
	}
}

func TestUpdate_CoordinatesTable(t *testing.T) {
	m := send(t, New(nil), tea.WindowSizeMsg{Width: 80, Height: 24}, key("a"))
	if !m.showCoords {
		t.Fatalf("expected coordinates table, status %q", m.status)
	}
	rows := m.tbl.Rows()
	if len(rows) != 4 {
		t.Fatalf("rows: got %d, want 4", len(rows))
	}
	for i, r := range rows {
		wantY := "0"
		if i%2 == 1 {
			wantY = "83"
		}
		if r[1] != "1" || r[3] != wantY {
			t.Errorf("row %d: got %v, want value 1 y %s", i, r, wantY)
		}
	}
}

func TestUpdate_ZeroTotalTable(t *testing.T) {
	m := send(t, New(nil), tea.WindowSizeMsg{Width: 80, Height: 24})
	m.setValues([]any{0, 0}, "pasted")
	if !strings.Contains(m.status, "anchors only") {
		t.Errorf("status: got %q", m.status)
	}
	m = send(t, m, key("a"))
	for _, r := range m.tbl.Rows() {
		if r[2] != "-" || r[3] != "-" {
			t.Errorf("zero total row must have no vertex: %v", r)
		}
	}
}

func TestUpdate_Quit(t *testing.T) {
	_, cmd := New(nil).Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestUpdate_Hover(t *testing.T) {
	m := send(t, New(nil), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = send(t, m, tea.MouseMsg{X: 20, Y: 5})
	if !m.hovering {
		t.Fatal("expected hover inside the plot")
	}
	if m.hoverSample != 0 {
		t.Errorf("nearest sample: got %d, want 0", m.hoverSample)
	}
	m = send(t, m, tea.MouseMsg{X: 20, Y: 0})
	if m.hovering {
		t.Error("header row is outside the plot")
	}
}

func TestNewWithPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pulses.json")
	if err := os.WriteFile(p, []byte(`{"values": [2, 1, 3]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewWithPath(nil, p)
	if m.invalid || !strings.HasPrefix(m.status, "loaded: pulses.json") {
		t.Errorf("status: got %q", m.status)
	}
	if len(m.values) != 3 {
		t.Errorf("values: got %v", m.values)
	}

	m = NewWithPath(nil, filepath.Join(t.TempDir(), "missing.csv"))
	if !strings.HasPrefix(m.status, "load error") {
		t.Errorf("missing file status: got %q", m.status)
	}
}

func TestSetValues_OverflowIsReported(t *testing.T) {
	m := send(t, New(nil), tea.WindowSizeMsg{Width: 80, Height: 24})
	m.setValues([]any{1e308, 1e308}, "pasted")
	if !m.invalid || !strings.Contains(m.status, "overflows") {
		t.Errorf("expected overflow status, got %q", m.status)
	}
	if v := m.View(); v == "" {
		t.Error("view must still render")
	}
}
