package breakaxes

import (
	"image"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/wuyao1997/break-axes/internal/clip"
)

// clipped wraps a plotter so that it draws through a clipping canvas.
type clipped struct {
	plotter plot.Plotter
	breaks  *Breaks
}

// Plot draws the wrapped plotter onto a canvas restricted to the
// visible region, implementing the plot.Plotter interface. Without
// breaks the plotter draws directly onto c.
func (cp *clipped) Plot(c draw.Canvas, plt *plot.Plot) {
	if len(cp.breaks.X) == 0 && len(cp.breaks.Y) == 0 {
		cp.plotter.Plot(c, plt)
		return
	}
	cc := &clipCanvas{
		Canvas: c.Canvas,
		rects:  cp.breaks.Region(c, plt),
		cur:    clip.Identity(),
	}
	cp.plotter.Plot(draw.Canvas{Canvas: cc, Rectangle: c.Rectangle}, plt)
}

// DataRange returns the data range of the wrapped plotter, so that
// autoscaling sees through the clipping.
func (cp *clipped) DataRange() (xmin, xmax, ymin, ymax float64) {
	if dr, ok := cp.plotter.(plot.DataRanger); ok {
		return dr.DataRange()
	}
	return math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
}

// GlyphBoxes returns the glyph boxes of the wrapped plotter.
func (cp *clipped) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	if gb, ok := cp.plotter.(plot.GlyphBoxer); ok {
		return gb.GlyphBoxes(plt)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Clipping canvas

// clipCanvas is a vg.Canvas restricting all drawing to a union of
// rectangles. The rectangles are given in the coordinate space the
// canvas starts out in; a transform stack keeps them aligned when the
// drawing code translates or scales the canvas.
type clipCanvas struct {
	vg.Canvas
	rects []vg.Rectangle

	cur   clip.Affine
	stack []clip.Affine
}

func (c *clipCanvas) Translate(pt vg.Point) {
	c.cur = c.cur.Mul(clip.Translation(pt))
	c.Canvas.Translate(pt)
}

func (c *clipCanvas) Scale(x, y float64) {
	c.cur = c.cur.Mul(clip.Scaling(x, y))
	c.Canvas.Scale(x, y)
}

func (c *clipCanvas) Rotate(rad float64) {
	c.cur = c.cur.Mul(clip.Rotation(rad))
	c.Canvas.Rotate(rad)
}

func (c *clipCanvas) Push() {
	c.stack = append(c.stack, c.cur)
	c.Canvas.Push()
}

func (c *clipCanvas) Pop() {
	c.stack, c.cur = c.stack[:len(c.stack)-1], c.stack[len(c.stack)-1]
	c.Canvas.Pop()
}

// localRects returns the visible region in the canvas' current
// coordinate space. ok is false under a rotated or sheared transform,
// into which an axis aligned region cannot be mapped.
func (c *clipCanvas) localRects() ([]vg.Rectangle, bool) {
	if c.cur == clip.Identity() {
		return c.rects, true
	}
	if !c.cur.RectPreserving() {
		return nil, false
	}
	inv, ok := c.cur.Invert()
	if !ok {
		return nil, false
	}
	local := make([]vg.Rectangle, len(c.rects))
	for i, r := range c.rects {
		local[i] = inv.Rect(r)
	}
	return local, true
}

// Stroke strokes the parts of p inside the visible region. Under a
// rotated transform p passes through unclipped; the host library
// rotates the canvas only to place text.
func (c *clipCanvas) Stroke(p vg.Path) {
	rects, ok := c.localRects()
	if !ok {
		c.Canvas.Stroke(p)
		return
	}
	subs := clip.Flatten(p)
	if coveredBy(subs, rects) {
		c.Canvas.Stroke(p)
		return
	}
	var out vg.Path
	for _, sub := range subs {
		for _, r := range rects {
			for _, run := range clip.Runs(r, sub.Pts) {
				out.Move(run[0])
				for _, pt := range run[1:] {
					out.Line(pt)
				}
			}
		}
	}
	if len(out) > 0 {
		c.Canvas.Stroke(out)
	}
}

// Fill fills the parts of p inside the visible region. Subpaths
// crossing the region boundary are clipped polygon by polygon so no
// paint bleeds into the gaps.
func (c *clipCanvas) Fill(p vg.Path) {
	rects, ok := c.localRects()
	if !ok {
		c.Canvas.Fill(p)
		return
	}
	subs := clip.Flatten(p)
	if coveredBy(subs, rects) {
		c.Canvas.Fill(p)
		return
	}
	for _, r := range rects {
		var out vg.Path
		for _, sub := range subs {
			poly := clip.Polygon(r, sub.Pts)
			if len(poly) == 0 {
				continue
			}
			out.Move(poly[0])
			for _, pt := range poly[1:] {
				out.Line(pt)
			}
			out.Close()
		}
		if len(out) > 0 {
			c.Canvas.Fill(out)
		}
	}
}

// FillString draws str only when its anchor point lies in the visible
// region. Text is culled as a whole, never cut.
func (c *clipCanvas) FillString(f vg.Font, pt vg.Point, str string) {
	if !c.cur.RectPreserving() {
		c.Canvas.FillString(f, pt, str)
		return
	}
	dev := c.cur.Point(pt)
	for _, r := range c.rects {
		if clip.Contains(r, dev) {
			c.Canvas.FillString(f, pt, str)
			return
		}
	}
}

// DrawImage draws img only when its rectangle touches the visible
// region. Images are culled as a whole, never cut.
func (c *clipCanvas) DrawImage(rect vg.Rectangle, img image.Image) {
	if !c.cur.RectPreserving() {
		c.Canvas.DrawImage(rect, img)
		return
	}
	dev := c.cur.Rect(rect)
	for _, r := range c.rects {
		if overlaps(r, dev) {
			c.Canvas.DrawImage(rect, img)
			return
		}
	}
}

// coveredBy reports whether every subpath lies entirely inside a
// single visible rectangle. Clipping cannot change such a path, so it
// is forwarded as is, arcs and curves intact.
func coveredBy(subs []clip.Subpath, rects []vg.Rectangle) bool {
	for _, sub := range subs {
		if !covered(sub.Pts, rects) {
			return false
		}
	}
	return true
}

func covered(pts []vg.Point, rects []vg.Rectangle) bool {
	for _, r := range rects {
		all := true
		for _, pt := range pts {
			if !clip.Contains(r, pt) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// overlaps reports whether two canonical rectangles intersect with
// positive area.
func overlaps(a, b vg.Rectangle) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}
