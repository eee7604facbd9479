// Package clip provides geometric clipping of flattened vg paths
// against axis-aligned rectangles.
package clip

import "gonum.org/v1/plot/vg"

// Outcode constants for the Cohen-Sutherland line clipper.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBelow  = 4
	outAbove  = 8
)

func outcode(r vg.Rectangle, p vg.Point) int {
	code := outInside
	if p.X < r.Min.X {
		code |= outLeft
	} else if p.X > r.Max.X {
		code |= outRight
	}
	if p.Y < r.Min.Y {
		code |= outBelow
	} else if p.Y > r.Max.Y {
		code |= outAbove
	}
	return code
}

// Canon returns r with Min and Max swapped as needed so that
// Min.X <= Max.X and Min.Y <= Max.Y.
func Canon(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains reports whether p lies in the canonical rectangle r,
// boundary included.
func Contains(r vg.Rectangle, p vg.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func lerp(p, q vg.Point, t float64) vg.Point {
	return vg.Point{
		X: p.X + vg.Length(t)*(q.X-p.X),
		Y: p.Y + vg.Length(t)*(q.Y-p.Y),
	}
}

// Segment clips the segment p0-p1 to the canonical rectangle r using
// the Cohen-Sutherland algorithm. It reports whether any part of the
// segment lies inside r and, if so, returns the clipped endpoints.
func Segment(r vg.Rectangle, p0, p1 vg.Point) (q0, q1 vg.Point, ok bool) {
	code0 := outcode(r, p0)
	code1 := outcode(r, p1)

	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return p0, p1, false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		var p vg.Point
		switch {
		case out&outAbove != 0:
			t := float64(r.Max.Y-p0.Y) / float64(p1.Y-p0.Y)
			p = lerp(p0, p1, t)
			p.Y = r.Max.Y
		case out&outBelow != 0:
			t := float64(r.Min.Y-p0.Y) / float64(p1.Y-p0.Y)
			p = lerp(p0, p1, t)
			p.Y = r.Min.Y
		case out&outRight != 0:
			t := float64(r.Max.X-p0.X) / float64(p1.X-p0.X)
			p = lerp(p0, p1, t)
			p.X = r.Max.X
		case out&outLeft != 0:
			t := float64(r.Min.X-p0.X) / float64(p1.X-p0.X)
			p = lerp(p0, p1, t)
			p.X = r.Min.X
		}

		if out == code0 {
			p0 = p
			code0 = outcode(r, p0)
		} else {
			p1 = p
			code1 = outcode(r, p1)
		}
	}
}

// Runs clips the open polyline pts to r and stitches the surviving
// segments back into maximal contiguous runs. Each returned run has at
// least two points.
func Runs(r vg.Rectangle, pts []vg.Point) [][]vg.Point {
	r = Canon(r)
	var runs [][]vg.Point
	var cur []vg.Point
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for i := 0; i+1 < len(pts); i++ {
		q0, q1, ok := Segment(r, pts[i], pts[i+1])
		if !ok {
			flush()
			continue
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, q0, q1)
		case cur[len(cur)-1] == q0:
			cur = append(cur, q1)
		default:
			flush()
			cur = append(cur, q0, q1)
		}
	}
	flush()
	return runs
}

// Polygon clips the polygon poly to r using the Sutherland-Hodgman
// algorithm. The polygon is implicitly closed. The result is nil if
// nothing of poly lies inside r.
func Polygon(r vg.Rectangle, poly []vg.Point) []vg.Point {
	if len(poly) < 3 {
		return nil
	}
	r = Canon(r)

	p := clipHalf(poly,
		func(p vg.Point) bool { return p.X >= r.Min.X },
		func(a, b vg.Point) vg.Point { return crossX(a, b, r.Min.X) })
	p = clipHalf(p,
		func(p vg.Point) bool { return p.X <= r.Max.X },
		func(a, b vg.Point) vg.Point { return crossX(a, b, r.Max.X) })
	p = clipHalf(p,
		func(p vg.Point) bool { return p.Y >= r.Min.Y },
		func(a, b vg.Point) vg.Point { return crossY(a, b, r.Min.Y) })
	p = clipHalf(p,
		func(p vg.Point) bool { return p.Y <= r.Max.Y },
		func(a, b vg.Point) vg.Point { return crossY(a, b, r.Max.Y) })

	if len(p) < 3 {
		return nil
	}
	return p
}

// clipHalf clips poly against one half plane. The in function reports
// whether a point is kept and cross computes the boundary crossing of
// an edge with one endpoint on either side.
func clipHalf(poly []vg.Point, in func(vg.Point) bool, cross func(a, b vg.Point) vg.Point) []vg.Point {
	var out []vg.Point
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		switch {
		case in(cur) && in(prev):
			out = append(out, cur)
		case in(cur):
			out = append(out, cross(prev, cur), cur)
		case in(prev):
			out = append(out, cross(prev, cur))
		}
	}
	return out
}

func crossX(a, b vg.Point, x vg.Length) vg.Point {
	t := float64(x-a.X) / float64(b.X-a.X)
	p := lerp(a, b, t)
	p.X = x
	return p
}

func crossY(a, b vg.Point, y vg.Length) vg.Point {
	t := float64(y-a.Y) / float64(b.Y-a.Y)
	p := lerp(a, b, t)
	p.Y = y
	return p
}
