package breakaxes

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Edge

// Edge selects the frame edges a break is drawn on. For an x break
// Lower is the bottom and Upper the top edge, for a y break Lower is
// the left and Upper the right edge.
type Edge int

const (
	Both Edge = iota
	Lower
	Upper
)

// String returns the name of e.
func (e Edge) String() string {
	return []string{"both", "lower", "upper"}[int(e)]
}

// ----------------------------------------------------------------------------
// MarkStyle

// A MarkStyle controls how the pair of diagonal strokes marking a
// break is drawn. All lengths are in points and independent of the
// axis scaling.
type MarkStyle struct {
	// Gap is the distance between the two strokes, centered on the
	// break position.
	Gap vg.Length

	// DX and DY are the horizontal and vertical half extents of
	// each stroke.
	DX, DY vg.Length

	draw.LineStyle
}

// DefaultMarkStyle returns 3x3 point strokes around a 5 point gap,
// drawn in black with a width of 1.5 point.
func DefaultMarkStyle() MarkStyle {
	return MarkStyle{
		Gap: 5,
		DX:  3,
		DY:  3,
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: 1.5,
		},
	}
}

// resolve fills unset fields of s with the default values.
func (s MarkStyle) resolve() MarkStyle {
	def := DefaultMarkStyle()
	if s.Color == nil {
		s.LineStyle = def.LineStyle
	}
	if s.Gap == 0 {
		s.Gap = def.Gap
	}
	if s.DX == 0 && s.DY == 0 {
		s.DX, s.DY = def.DX, def.DY
	}
	return s
}

// ----------------------------------------------------------------------------
// Marks

// Marks is a plot.Plotter drawing the paired diagonal strokes of
// broken axes onto the plot frame. The strokes are not clipped and
// may poke out of the data rectangle.
type Marks struct {
	// X and Y are the break positions in data coordinates.
	X, Y []float64

	// Which selects the frame edges carrying the marks.
	Which Edge

	// Style controls the stroke geometry. Unset fields fall back
	// to DefaultMarkStyle.
	Style MarkStyle
}

// Plot draws the break marks, implementing the plot.Plotter
// interface.
func (m Marks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := m.Style.resolve()
	for _, x := range m.X {
		if m.Which != Upper {
			markPair(c, sty, vg.Point{X: trX(x), Y: c.Min.Y}, true)
		}
		if m.Which != Lower {
			markPair(c, sty, vg.Point{X: trX(x), Y: c.Max.Y}, true)
		}
	}
	for _, y := range m.Y {
		if m.Which != Upper {
			markPair(c, sty, vg.Point{X: c.Min.X, Y: trY(y)}, false)
		}
		if m.Which != Lower {
			markPair(c, sty, vg.Point{X: c.Max.X, Y: trY(y)}, false)
		}
	}
}

// markPair strokes the two slanted lines of one break mark.
func markPair(c draw.Canvas, sty MarkStyle, center vg.Point, alongX bool) {
	for _, seg := range markSegments(sty, center, alongX) {
		c.StrokeLine2(sty.LineStyle,
			seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
	}
}

// markSegments returns the endpoints of the two strokes of one break
// mark around center. For alongX the gap shifts the strokes along the
// x axis, otherwise along the y axis.
func markSegments(sty MarkStyle, center vg.Point, alongX bool) [2][2]vg.Point {
	var segs [2][2]vg.Point
	for i, dir := range [2]vg.Length{-1, 1} {
		mid := center
		if alongX {
			mid.X += dir * sty.Gap / 2
		} else {
			mid.Y += dir * sty.Gap / 2
		}
		segs[i] = [2]vg.Point{
			{X: mid.X - sty.DX, Y: mid.Y - sty.DY},
			{X: mid.X + sty.DX, Y: mid.Y + sty.DY},
		}
	}
	return segs
}

// ----------------------------------------------------------------------------
// PointMarks

// PointMarks draws break marks at arbitrary data points instead of on
// the plot frame, e.g. to interrupt a single plotted line.
type PointMarks struct {
	// XY holds the mark centers in data coordinates.
	XY plotter.XYer

	// Vertical shifts the stroke pair along the y axis instead of
	// the x axis.
	Vertical bool

	// Style controls the stroke geometry. Unset fields fall back
	// to DefaultMarkStyle.
	Style MarkStyle
}

// Plot draws the point marks, implementing the plot.Plotter
// interface.
func (m PointMarks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := m.Style.resolve()
	for i := 0; i < m.XY.Len(); i++ {
		x, y := m.XY.XY(i)
		markPair(c, sty, vg.Point{X: trX(x), Y: trY(y)}, !m.Vertical)
	}
}

// DataRange returns the range of the mark centers, implementing the
// plot.DataRanger interface.
func (m PointMarks) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(m.XY)
}
