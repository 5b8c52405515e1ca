// Package svgplot is a plot.Surface that writes SVG.
package svgplot

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"courbe/internal/plot"
)

const defaultStroke = "#000000"

// Surface records a path and emits it as one <path> element per Stroke.
type Surface struct {
	canvas *svg.SVG
	d      strings.Builder
	gap    bool
	stroke string
	width  float64
}

// NewSurface starts an SVG document of the given size on w.
// Close must be called to finish the document.
func NewSurface(w io.Writer, width, height int) *Surface {
	s := &Surface{canvas: svg.New(w), stroke: defaultStroke, width: 1}
	s.canvas.Start(width, height)
	return s
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.canvas.Rect(round(x), round(y), round(w), round(h), "fill:white")
}

func (s *Surface) BeginPath() {
	s.d.Reset()
	s.gap = false
}

func (s *Surface) MoveTo(x, y float64) { s.segment('M', x, y) }

func (s *Surface) LineTo(x, y float64) { s.segment('L', x, y) }

func (s *Surface) SetStrokeStyle(color string) { s.stroke = color }

// SetLineWidth sets the stroke width used by later Stroke calls.
func (s *Surface) SetLineWidth(w float64) {
	if w > 0 {
		s.width = w
	}
}

func (s *Surface) Stroke() {
	if s.d.Len() == 0 {
		return
	}
	s.canvas.Path(s.d.String(), fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", s.stroke, num(s.width)))
}

// Close ends the SVG document.
func (s *Surface) Close() { s.canvas.End() }

// segment appends one path command. A non-finite point is dropped and the
// next point starts a new subpath, so the d attribute stays valid.
func (s *Surface) segment(op byte, x, y float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		s.gap = true
		return
	}
	if s.gap || s.d.Len() == 0 {
		op = 'M'
		s.gap = false
	}
	if s.d.Len() > 0 {
		s.d.WriteByte(' ')
	}
	s.d.WriteByte(op)
	s.d.WriteString(num(x))
	s.d.WriteByte(' ')
	s.d.WriteString(num(y))
}

// Render writes a complete SVG document plotting values at width x height
// with the given stroke width. The document is closed even when values are
// rejected, leaving a blank canvas.
func Render(w io.Writer, width, height int, lineWidth float64, values any, opts ...plot.Option) error {
	s := NewSurface(w, width, height)
	defer s.Close()
	s.SetLineWidth(lineWidth)
	p := plot.New(s, float64(width), float64(height), opts...)
	if err := p.Redraw(values); err != nil {
		return fmt.Errorf("svgplot: %w", err)
	}
	return nil
}

func round(f float64) int { return int(math.Round(f)) }

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
