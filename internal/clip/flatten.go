package clip

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// maxArcStep bounds the angular step used when flattening arcs. At
// glyph-sized radii the resulting chord error is far below a printer's
// point.
const maxArcStep = math.Pi / 16

// curveSteps is the number of chords a Bézier component is split into.
const curveSteps = 16

// A Subpath is one flattened piece of a vg.Path: a polyline and
// whether the piece was closed.
type Subpath struct {
	Pts    []vg.Point
	Closed bool
}

// Flatten reduces p to polylines, splitting arc and curve components
// into chords. Arc components follow the PostScript convention of an
// implicit line from the current point to the arc's starting point.
func Flatten(p vg.Path) []Subpath {
	var (
		subs  []Subpath
		cur   []vg.Point
		start vg.Point
	)
	flush := func(closed bool) {
		if len(cur) >= 2 {
			subs = append(subs, Subpath{Pts: cur, Closed: closed})
		}
		cur = nil
	}

	for _, comp := range p {
		switch comp.Type {
		case vg.MoveComp:
			flush(false)
			start = comp.Pos
			cur = append(cur, comp.Pos)
		case vg.LineComp:
			cur = append(cur, comp.Pos)
		case vg.ArcComp:
			cur = appendArc(cur, comp)
		case vg.CurveComp:
			cur = appendCurve(cur, comp)
		case vg.CloseComp:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			flush(true)
		}
	}
	flush(false)
	return subs
}

func arcPoint(center vg.Point, radius vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + radius*vg.Length(math.Cos(angle)),
		Y: center.Y + radius*vg.Length(math.Sin(angle)),
	}
}

func appendArc(cur []vg.Point, comp vg.PathComp) []vg.Point {
	first := arcPoint(comp.Pos, comp.Radius, comp.Start)
	if len(cur) == 0 || cur[len(cur)-1] != first {
		cur = append(cur, first)
	}
	n := int(math.Ceil(math.Abs(comp.Angle) / maxArcStep))
	if n < 1 {
		n = 1
	}
	for k := 1; k <= n; k++ {
		a := comp.Start + comp.Angle*float64(k)/float64(n)
		cur = append(cur, arcPoint(comp.Pos, comp.Radius, a))
	}
	return cur
}

func appendCurve(cur []vg.Point, comp vg.PathComp) []vg.Point {
	var p0 vg.Point
	if len(cur) > 0 {
		p0 = cur[len(cur)-1]
	} else if len(comp.Control) > 0 {
		// A path must not start with a curve; fall back to the
		// first control point so the flattening stays finite.
		p0 = comp.Control[0]
		cur = append(cur, p0)
	}
	for k := 1; k <= curveSteps; k++ {
		t := float64(k) / curveSteps
		var p vg.Point
		switch len(comp.Control) {
		case 1:
			p = evalQuad(p0, comp.Control[0], comp.Pos, t)
		case 2:
			p = evalCubic(p0, comp.Control[0], comp.Control[1], comp.Pos, t)
		default:
			p = comp.Pos
		}
		cur = append(cur, p)
	}
	return cur
}

func evalQuad(p0, p1, p2 vg.Point, t float64) vg.Point {
	s := 1 - t
	return vg.Point{
		X: vg.Length(s*s)*p0.X + vg.Length(2*s*t)*p1.X + vg.Length(t*t)*p2.X,
		Y: vg.Length(s*s)*p0.Y + vg.Length(2*s*t)*p1.Y + vg.Length(t*t)*p2.Y,
	}
}

func evalCubic(p0, p1, p2, p3 vg.Point, t float64) vg.Point {
	s := 1 - t
	s2, s3 := s*s, s*s*s
	t2, t3 := t*t, t*t*t
	return vg.Point{
		X: vg.Length(s3)*p0.X + vg.Length(3*s2*t)*p1.X + vg.Length(3*s*t2)*p2.X + vg.Length(t3)*p3.X,
		Y: vg.Length(s3)*p0.Y + vg.Length(3*s2*t)*p1.Y + vg.Length(3*s*t2)*p2.Y + vg.Length(t3)*p3.Y,
	}
}
