package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// brailleSurface is a plot.Surface over a braille buffer. Canvas pixels are
// the 2x4 micro-pixels of each terminal cell.
type brailleSurface struct {
	buf   *brailleBuf
	path  []segment
	curX  float64
	curY  float64
	style lipgloss.Style
	// styled is false until SetStrokeStyle is called
	styled bool
}

func newBrailleSurface(w, h int) *brailleSurface {
	return &brailleSurface{buf: newBrailleBuf(w, h)}
}

// canvasSize is the pixel extent that maps onto the last micro row/column.
func (s *brailleSurface) canvasSize() (float64, float64) {
	return float64(s.buf.w*2 - 1), float64(s.buf.h*4 - 1)
}

func (s *brailleSurface) ClearRect(x, y, w, h float64) {
	mx0, my0 := toMicro(x), toMicro(y)
	mx1, my1 := toMicro(x+w), toMicro(y+h)
	s.buf.clearCells(mx0/2, my0/4, mx1/2, my1/4)
}

func (s *brailleSurface) BeginPath() { s.path = s.path[:0] }

func (s *brailleSurface) MoveTo(x, y float64) {
	s.curX, s.curY = x, y
}

func (s *brailleSurface) LineTo(x, y float64) {
	s.path = append(s.path, segment{s.curX, s.curY, x, y})
	s.curX, s.curY = x, y
}

// Stroke rasterizes the path clipped to the canvas. Segments with a
// non-finite endpoint are skipped.
func (s *brailleSurface) Stroke() {
	cw, ch := s.canvasSize()
	for _, sg := range s.path {
		c, ok := clipSegment(sg, cw, ch)
		if !ok {
			continue
		}
		s.buf.drawLineMicro(toMicro(c.x0), toMicro(c.y0), toMicro(c.x1), toMicro(c.y1))
	}
}

func (s *brailleSurface) SetStrokeStyle(color string) {
	s.style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	s.styled = true
}

// Lines returns the rendered rows, colored when a stroke style is set.
func (s *brailleSurface) Lines() []string {
	lines := s.buf.toLines()
	if !s.styled {
		return lines
	}
	for i, l := range lines {
		lines[i] = s.style.Render(l)
	}
	return lines
}

// clipSegment clips sg to [0,w]x[0,h] (Liang-Barsky). Work is done at half
// scale so differences of finite endpoints cannot overflow.
func clipSegment(sg segment, w, h float64) (segment, bool) {
	for _, f := range [...]float64{sg.x0, sg.y0, sg.x1, sg.y1} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return segment{}, false
		}
	}
	x0, y0 := sg.x0/2, sg.y0/2
	dx, dy := sg.x1/2-x0, sg.y1/2-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0, w/2 - x0, y0, h/2 - y0}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return segment{}, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return segment{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return segment{}, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return segment{
		x0: 2 * (x0 + t0*dx), y0: 2 * (y0 + t0*dy),
		x1: 2 * (x0 + t1*dx), y1: 2 * (y0 + t1*dy),
	}, true
}

func toMicro(f float64) int { return int(math.Round(f)) }
