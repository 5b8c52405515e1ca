package tui

import (
	"fmt"
	"math"
	"strings"

	"courbe/internal/plot"
	"courbe/internal/sequence"
)

const sidebarWidth = 28

// layout holds the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	plotX, plotY       int
	plotW, plotH       int
}

func (m Model) layout() layout {
	var lo layout
	headerHeight := 1
	footerHeight := 2
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.plotX = sidebarWidth + 1
	}
	lo.plotY = headerHeight
	lo.plotW = max(10, lo.contentW-lo.sidebarW-1)
	lo.plotH = lo.contentH
	return lo
}

// newPlotter returns a plotter drawing onto a fresh w x h cell surface.
func (m Model) newPlotter(w, h int) (*plot.Plotter, *brailleSurface) {
	s := newBrailleSurface(w, h)
	cw, ch := s.canvasSize()
	p := plot.New(s, cw, ch,
		plot.WithStrokeStyle(m.cfg.Canvas.StrokeStyle),
		plot.WithLogger(m.log))
	return p, s
}

func (m Model) renderPlot(w, h int) string {
	p, s := m.newPlotter(w, h)
	// validation errors were reported when the values were set; the
	// surface is left cleared
	_ = p.Redraw(m.values)
	return strings.Join(s.Lines(), "\n")
}

// setValues validates vals and makes them the plotted data.
func (m *Model) setValues(vals []any, source string) {
	m.values = vals
	seq := sequence.New()
	err := seq.Append(vals)
	if err == nil {
		// coordinates can still overflow for huge finite inputs
		p, _ := m.newPlotter(max(m.plotW, 10), max(m.plotH, 4))
		_, err = p.Points(vals)
	}
	if err != nil {
		m.invalid = true
		m.status = source + ": " + err.Error()
		m.log.Warn("tui: rejected values", "source", source, "err", err)
		return
	}
	m.invalid = false
	total := seq.Total()
	m.status = fmt.Sprintf("%s  samples=%d total=%g positive=%d", source, seq.Len(), total, seq.PositiveCount())
	if total == 0 {
		m.status += "  (zero total: anchors only)"
	}
	m.log.Info("tui: plotted values", "source", source, "samples", seq.Len(), "total", total)
	if m.showCoords {
		m.refreshCoords()
	}
}

// cellToCanvas converts a plot cell to canvas pixel coordinates.
func cellToCanvas(cx, cy int) (float64, float64) {
	return float64(cx*2) + 0.5, float64(cy*4) + 1.5
}

// nearestSample returns the index of the sample whose vertex x is closest
// to x, or -1 when nothing is plotted.
func (m Model) nearestSample(x float64) int {
	if m.invalid || m.plotW <= 0 || m.plotH <= 0 {
		return -1
	}
	p, _ := m.newPlotter(m.plotW, m.plotH)
	pts, err := p.Points(m.values)
	if err != nil || len(pts) <= 2 {
		return -1
	}
	best, bestD := -1, math.Inf(1)
	for i, pt := range pts[1 : len(pts)-1] {
		if d := math.Abs(pt.X - x); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}
