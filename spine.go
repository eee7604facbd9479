package breakaxes

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Spines is a plot.Plotter drawing plot frame lines which stop on
// either side of every axis break. It stands in for the axis lines of
// the host library, which Apply switches off on broken axes.
type Spines struct {
	// X and Y are the break positions in data coordinates. Frame
	// lines are drawn only along axes that have breaks.
	X, Y []float64

	// Which selects the frame edges to draw.
	Which Edge

	// Gap is the width of the interruption centered on each break.
	// A zero Gap means the DefaultMarkStyle gap.
	Gap vg.Length

	// LineStyle is the style of the frame lines. An unset style
	// matches the axis lines of the host library.
	draw.LineStyle
}

// Plot draws the interrupted frame lines, implementing the
// plot.Plotter interface.
func (s Spines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := s.LineStyle
	if sty.Color == nil {
		sty = draw.LineStyle{Color: color.Black, Width: 0.5}
	}
	gap := s.Gap
	if gap == 0 {
		gap = DefaultMarkStyle().Gap
	}

	if len(s.X) > 0 {
		for _, seg := range cutSegments(c.Min.X, c.Max.X, mapCoords(trX, s.X), gap) {
			if s.Which != Upper {
				c.StrokeLine2(sty, seg[0], c.Min.Y, seg[1], c.Min.Y)
			}
			if s.Which != Lower {
				c.StrokeLine2(sty, seg[0], c.Max.Y, seg[1], c.Max.Y)
			}
		}
	}
	if len(s.Y) > 0 {
		for _, seg := range cutSegments(c.Min.Y, c.Max.Y, mapCoords(trY, s.Y), gap) {
			if s.Which != Upper {
				c.StrokeLine2(sty, c.Min.X, seg[0], c.Min.X, seg[1])
			}
			if s.Which != Lower {
				c.StrokeLine2(sty, c.Max.X, seg[0], c.Max.X, seg[1])
			}
		}
	}
}

// mapCoords maps data coordinates onto the canvas.
func mapCoords(tr func(float64) vg.Length, xs []float64) []vg.Length {
	cs := make([]vg.Length, len(xs))
	for i, x := range xs {
		cs[i] = tr(x)
	}
	return cs
}

// cutSegments splits [lo,hi] at the given cut positions, leaving a
// gap wide hole around every cut. Holes outside [lo,hi] are ignored,
// overlapping holes merge and empty segments are dropped.
func cutSegments(lo, hi vg.Length, cuts []vg.Length, gap vg.Length) [][2]vg.Length {
	sorted := append([]vg.Length(nil), cuts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var segs [][2]vg.Length
	start := lo
	for _, cut := range sorted {
		a, b := cut-gap/2, cut+gap/2
		if b <= lo || a >= hi {
			continue
		}
		if a > start {
			segs = append(segs, [2]vg.Length{start, a})
		}
		if b > start {
			start = b
		}
	}
	if start < hi {
		segs = append(segs, [2]vg.Length{start, hi})
	}
	return segs
}
