package breakaxes

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var debug = false

// Breaks describes where and how the axes of a plot are broken. The
// zero value of everything but X and Y gives default marks on both
// frame edges and clips the data plotters to the visible region.
type Breaks struct {
	// X and Y are the break positions in data coordinates.
	X, Y []float64

	// Which selects the frame edges carrying marks and frame
	// lines.
	Which Edge

	// Style is the break mark style. Unset fields fall back to
	// DefaultMarkStyle.
	Style MarkStyle

	// Spine is the style of the interrupted frame lines replacing
	// the axis lines. An unset Spine matches the host library's
	// axis lines.
	Spine draw.LineStyle

	// NoClip adds the data plotters without clipping them to the
	// visible region.
	NoClip bool
}

// Marks returns the break marks of b.
func (b *Breaks) Marks() Marks {
	return Marks{X: b.X, Y: b.Y, Which: b.Which, Style: b.Style}
}

// Spines returns the interrupted frame lines of b.
func (b *Breaks) Spines() Spines {
	return Spines{
		X:         b.X,
		Y:         b.Y,
		Which:     b.Which,
		Gap:       b.Style.resolve().Gap,
		LineStyle: b.Spine,
	}
}

// Region returns the visible part of the data rectangle of c as a
// union of axis aligned rectangles: a gap wide band is cut out at
// every break position. Without breaks the whole data rectangle is
// returned.
func (b *Breaks) Region(c draw.Canvas, plt *plot.Plot) []vg.Rectangle {
	trX, trY := plt.Transforms(&c)
	gap := b.Style.resolve().Gap
	xs := cutSegments(c.Min.X, c.Max.X, mapCoords(trX, b.X), gap)
	ys := cutSegments(c.Min.Y, c.Max.Y, mapCoords(trY, b.Y), gap)

	rects := make([]vg.Rectangle, 0, len(xs)*len(ys))
	for _, xseg := range xs {
		for _, yseg := range ys {
			rects = append(rects, vg.Rectangle{
				Min: vg.Point{X: xseg[0], Y: yseg[0]},
				Max: vg.Point{X: xseg[1], Y: yseg[1]},
			})
		}
	}
	if debug {
		fmt.Println("breakaxes: visible region", rects)
	}
	return rects
}

// Clip wraps p so that it draws only inside the visible region of b.
// Data ranges and glyph boxes of p pass through the wrapper, so
// autoscaling is unaffected.
func (b *Breaks) Clip(p plot.Plotter) plot.Plotter {
	return &clipped{plotter: p, breaks: b}
}

// Apply wires b into plt: the data plotters are clipped to the
// visible region and added to plt, the axis lines of broken axes are
// switched off, and the interrupted frame lines and break marks are
// drawn on top. The axis ranges follow from the added data as usual;
// set the axis Min and Max to fix them.
func (b *Breaks) Apply(plt *plot.Plot, data ...plot.Plotter) {
	for _, d := range data {
		if b.NoClip {
			plt.Add(d)
		} else {
			plt.Add(b.Clip(d))
		}
	}
	if len(b.X) > 0 {
		plt.X.LineStyle.Width = 0
	}
	if len(b.Y) > 0 {
		plt.Y.LineStyle.Width = 0
	}
	plt.Add(b.Spines(), b.Marks())
}
