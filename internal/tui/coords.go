package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"courbe/internal/sequence"
)

var coordColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "value", Width: 12},
	{Title: "x", Width: 10},
	{Title: "y", Width: 8},
}

// refreshCoords rebuilds the table rows from the current values at the
// current plot size.
func (m *Model) refreshCoords() {
	rows := m.buildCoords()
	if len(rows) == 0 {
		m.showCoords = false
		m.status = "no coordinates for current values"
		return
	}
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(coordColumns)
	m.tbl.SetRows(rows)
}

// buildCoords returns one row per sample. With a zero total the samples
// have no vertex and x/y are shown as "-".
func (m *Model) buildCoords() []table.Row {
	seq := sequence.New()
	if err := seq.Append(m.values); err != nil {
		return nil
	}
	w, h := max(m.plotW, 10), max(m.plotH, 4)
	p, _ := m.newPlotter(w, h)
	pts, err := p.Points(m.values)
	if err != nil {
		return nil
	}
	samples := pts[1 : len(pts)-1]
	rows := make([]table.Row, 0, seq.Len())
	for i, v := range seq.Values() {
		x, y := "-", "-"
		if i < len(samples) {
			x = fmt.Sprintf("%.1f", samples[i].X)
			y = fmt.Sprintf("%.0f", samples[i].Y)
		}
		rows = append(rows, table.Row{fmt.Sprintf("%d", i), fmt.Sprintf("%g", v), x, y})
	}
	return rows
}
