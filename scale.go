// Broken axis scales
//
// The scales here plug into plot.Axis.Scale and squeeze or stretch
// parts of the axis while the rest stays linear (or logarithmic).
package breakaxes

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is a plot.Normalizer which maps data through a piecewise
// linear function before normalizing: every Span keeps its place on
// the axis but its drawn width is multiplied by its Factor. Outside
// the spans the axis stays linear.
type Scale struct {
	pw *piecewise
}

// NewScale returns a Scale built from the given spans. The spans must
// be sorted in ascending order, must not overlap (sharing an edge is
// allowed) and must have positive factors.
func NewScale(spans ...Span) (*Scale, error) {
	pw, err := newPiecewise(spans)
	if err != nil {
		return nil, err
	}
	return &Scale{pw: pw}, nil
}

// Normalize returns the fractional position of x inside [min,max]
// after all three values went through the piecewise map.
func (s *Scale) Normalize(min, max, x float64) float64 {
	fmin, fmax := s.pw.forward(min), s.pw.forward(max)
	return (s.pw.forward(x) - fmin) / (fmax - fmin)
}

// Forward maps a data value to its drawn value. Below the first span
// Forward is the identity.
func (s *Scale) Forward(x float64) float64 { return s.pw.forward(x) }

// Inverse maps a drawn value back to its data value. It inverts
// Forward exactly, up to floating point rounding.
func (s *Scale) Inverse(y float64) float64 { return s.pw.inverse(y) }

// Spans returns a copy of the spans s was built from.
func (s *Scale) Spans() []Span {
	return append([]Span(nil), s.pw.spans...)
}

// Ticker returns a Ticks value hiding tick marks inside the squeezed
// spans of s.
func (s *Scale) Ticker() plot.Ticker {
	return Ticks{Base: plot.DefaultTicks{}, Spans: s.Spans()}
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Scale %v", s.pw.spans)
}

// ----------------------------------------------------------------------------
// LogScale

// LogScale is the logarithmic variant of Scale: data goes through the
// same piecewise map and the result is shown on a logarithmic axis.
// Normalize panics when a mapped value is not positive, like the log
// scale of the host library.
type LogScale struct {
	pw *piecewise
}

// NewLogScale returns a LogScale built from the given spans. The span
// rules of NewScale apply.
func NewLogScale(spans ...Span) (*LogScale, error) {
	pw, err := newPiecewise(spans)
	if err != nil {
		return nil, err
	}
	return &LogScale{pw: pw}, nil
}

// Normalize returns the fractional position of x inside [min,max] on
// a logarithmic axis of the piecewise mapped values.
func (s *LogScale) Normalize(min, max, x float64) float64 {
	logMin := logOf(s.pw.forward(min))
	logMax := logOf(s.pw.forward(max))
	return (logOf(s.pw.forward(x)) - logMin) / (logMax - logMin)
}

// Forward maps a data value to its drawn value. The logarithm the
// axis applies on top is not included.
func (s *LogScale) Forward(x float64) float64 { return s.pw.forward(x) }

// Inverse maps a drawn value back to its data value.
func (s *LogScale) Inverse(y float64) float64 { return s.pw.inverse(y) }

// Spans returns a copy of the spans s was built from.
func (s *LogScale) Spans() []Span {
	return append([]Span(nil), s.pw.spans...)
}

// Ticker returns a Ticks value generating logarithmic ticks outside
// the squeezed spans of s.
func (s *LogScale) Ticker() plot.Ticker {
	return Ticks{Base: plot.LogTicks{}, Spans: s.Spans()}
}

func (s *LogScale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("LogScale %v", s.pw.spans)
}

func logOf(x float64) float64 {
	if x <= 0 {
		panic("breakaxes: values must be positive on a log scale")
	}
	return math.Log(x)
}

// ----------------------------------------------------------------------------
// Axis wiring

// A SpanScale is a span based axis scale as returned by NewScale and
// NewLogScale.
type SpanScale interface {
	plot.Normalizer

	// Spans returns the spans the scale was built from.
	Spans() []Span

	// Ticker returns the matching break aware ticker.
	Ticker() plot.Ticker
}

// SetScale installs the scale s and the ticker t on ax. A nil t keeps
// the ticker ax already has.
func SetScale(ax *plot.Axis, s plot.Normalizer, t plot.Ticker) {
	ax.Scale = s
	if t != nil {
		ax.Tick.Marker = t
	}
}

// ScaleXY installs x and y on the axes of p together with their
// matching tickers. Either scale may be nil to leave that axis alone.
func ScaleXY(p *plot.Plot, x, y SpanScale) {
	if x != nil {
		SetScale(&p.X, x, x.Ticker())
	}
	if y != nil {
		SetScale(&p.Y, y, y.Ticker())
	}
}
