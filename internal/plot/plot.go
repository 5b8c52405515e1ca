// Package plot turns a list of timed values into a high/low waveform and
// strokes it onto a 2D drawing surface.
//
// The line starts on the low rail at the left edge, then visits one point per
// sample. Sample i sits at x = (i+1) * width * v_i / total and alternates
// between the top rail (even i) and the bottom rail (odd i). It ends on the
// low rail at the right edge. When the samples sum to zero only the two
// anchors are drawn.
package plot

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"courbe/internal/sequence"
)

var (
	// ErrTotalOverflow means the samples are finite but their sum is not.
	ErrTotalOverflow = fmt.Errorf("total overflows: %w", sequence.ErrNotFinite)
	// ErrCoordinateOverflow means a sample's x coordinate is not finite.
	ErrCoordinateOverflow = fmt.Errorf("x coordinate overflows: %w", sequence.ErrNotFinite)
)

// Surface is the path-drawing capability the plotter needs. It matches the
// subset of CanvasRenderingContext2D used by the plotter.
type Surface interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// StrokeStyler is implemented by surfaces that accept a stroke color.
type StrokeStyler interface {
	SetStrokeStyle(color string)
}

// Coordinate is a point in canvas pixel space.
type Coordinate struct {
	X, Y float64
}

type Option func(*Plotter)

// WithStrokeStyle sets the stroke color as "#rgb" or "#rrggbb". Invalid
// colors are logged and ignored.
func WithStrokeStyle(color string) Option {
	return func(p *Plotter) { p.rawStyle = color }
}

// WithLogger sets the logger used for per-redraw debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plotter) {
		if l != nil {
			p.log = l
		}
	}
}

// Plotter draws waveforms onto one surface of a fixed size.
type Plotter struct {
	surface Surface
	width   float64
	height  float64
	enabled bool

	rawStyle    string
	strokeStyle string

	log *slog.Logger
}

// New builds a plotter for s. A nil surface or a non-positive size yields a
// disabled plotter whose Redraw does nothing.
func New(s Surface, width, height float64, opts ...Option) *Plotter {
	p := &Plotter{
		surface: s,
		width:   width,
		height:  height,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.enabled = s != nil && positive(width) && positive(height)
	if !p.enabled {
		p.log.Debug("plot: no usable surface, plotter disabled",
			"width", width, "height", height, "surface", s != nil)
	}
	if p.rawStyle != "" {
		if c, ok := normalizeColor(p.rawStyle); ok {
			p.strokeStyle = c
		} else {
			p.log.Warn("plot: ignoring invalid stroke style", "style", p.rawStyle)
		}
	}
	return p
}

// Enabled reports whether the plotter has a usable surface and size.
func (p *Plotter) Enabled() bool { return p.enabled }

// Size returns the canvas extent given to New.
func (p *Plotter) Size() (width, height float64) { return p.width, p.height }

// StrokeStyle returns the normalized stroke color, or "" when none is set.
func (p *Plotter) StrokeStyle() string { return p.strokeStyle }

// Redraw clears the surface and strokes the waveform for values, which may
// be a scalar or a slice of numeric-like values. A *sequence.ValidationError
// is returned before anything beyond the clear reaches the surface; this
// includes finite inputs whose total or coordinates overflow.
func (p *Plotter) Redraw(values any) error {
	if !p.enabled {
		return nil
	}
	s := p.surface
	s.ClearRect(0, 0, p.width, p.height)
	s.BeginPath()

	seq := sequence.New()
	if err := seq.Append(values); err != nil {
		p.log.Debug("plot: redraw rejected", "err", err)
		return err
	}
	total := seq.Total()
	pts, err := p.samples(seq, total)
	if err != nil {
		p.log.Debug("plot: redraw rejected", "err", err)
		return err
	}
	p.log.Debug("plot: redraw",
		"count", seq.Len(),
		"total", total,
		"positive", seq.PositiveCount())

	s.MoveTo(0, p.height)
	for _, c := range pts {
		s.LineTo(c.X, c.Y)
	}
	s.LineTo(p.width, p.height)

	if st, ok := s.(StrokeStyler); ok && p.strokeStyle != "" {
		st.SetStrokeStyle(p.strokeStyle)
	}
	s.Stroke()
	return nil
}

// Points returns every vertex Redraw would visit, anchors included, without
// touching the surface.
func (p *Plotter) Points(values any) ([]Coordinate, error) {
	seq := sequence.New()
	if err := seq.Append(values); err != nil {
		return nil, err
	}
	samples, err := p.samples(seq, seq.Total())
	if err != nil {
		return nil, err
	}
	pts := make([]Coordinate, 0, len(samples)+2)
	pts = append(pts, Coordinate{X: 0, Y: p.height})
	pts = append(pts, samples...)
	pts = append(pts, Coordinate{X: p.width, Y: p.height})
	return pts, nil
}

// samples maps each element to its vertex. A zero total yields none.
// A total that overflows to ±Inf, or an x that does, is rejected so no
// non-finite coordinate is ever produced.
func (p *Plotter) samples(seq *sequence.Sequence, total float64) ([]Coordinate, error) {
	if math.IsInf(total, 0) {
		return nil, &sequence.ValidationError{Index: -1, Value: total, Reason: ErrTotalOverflow}
	}
	if total == 0 {
		return nil, nil
	}
	out := make([]Coordinate, seq.Len())
	for i := range out {
		v := seq.At(i)
		x := float64(i+1) * p.width * v / total
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &sequence.ValidationError{Index: i, Value: v, Reason: ErrCoordinateOverflow}
		}
		out[i] = Coordinate{X: x, Y: Rail(i, p.height)}
	}
	return out, nil
}

// Rail returns the y of sample i: the top rail (0) for even i, the bottom
// rail (height) for odd i.
func Rail(i int, height float64) float64 {
	if i%2 == 0 {
		return 0
	}
	return height
}

func normalizeColor(s string) (string, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func positive(f float64) bool { return f > 0 && !math.IsInf(f, 1) }
