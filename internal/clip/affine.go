package clip

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// An Affine is a 2D affine transform
//
//	x' = XX*x + XY*y + OX
//	y' = YX*x + YY*y + OY
type Affine struct {
	XX, XY, OX float64
	YX, YY, OY float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{XX: 1, YY: 1}
}

// Translation returns the transform shifting by pt.
func Translation(pt vg.Point) Affine {
	return Affine{XX: 1, YY: 1, OX: float64(pt.X), OY: float64(pt.Y)}
}

// Scaling returns the transform scaling x and y independently.
func Scaling(x, y float64) Affine {
	return Affine{XX: x, YY: y}
}

// Rotation returns the transform rotating by rad counterclockwise
// around the origin.
func Rotation(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return Affine{XX: cos, XY: -sin, YX: sin, YY: cos}
}

// Mul returns the composition applying b first and then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		XX: a.XX*b.XX + a.XY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		OX: a.XX*b.OX + a.XY*b.OY + a.OX,
		YX: a.YX*b.XX + a.YY*b.YX,
		YY: a.YX*b.XY + a.YY*b.YY,
		OY: a.YX*b.OX + a.YY*b.OY + a.OY,
	}
}

// Point applies a to p.
func (a Affine) Point(p vg.Point) vg.Point {
	x, y := float64(p.X), float64(p.Y)
	return vg.Point{
		X: vg.Length(a.XX*x + a.XY*y + a.OX),
		Y: vg.Length(a.YX*x + a.YY*y + a.OY),
	}
}

// RectPreserving reports whether a maps axis-aligned rectangles to
// axis-aligned rectangles, i.e. whether a is free of rotation and
// shear.
func (a Affine) RectPreserving() bool {
	return a.XY == 0 && a.YX == 0
}

// Invert returns the inverse transform. The second return value is
// false if a is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.XX*a.YY - a.XY*a.YX
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, false
	}
	inv := Affine{
		XX: a.YY / det,
		XY: -a.XY / det,
		YX: -a.YX / det,
		YY: a.XX / det,
	}
	inv.OX = -(inv.XX*a.OX + inv.XY*a.OY)
	inv.OY = -(inv.YX*a.OX + inv.YY*a.OY)
	return inv, true
}

// Rect applies a to both corners of r and returns the canonicalised
// result. It is meaningful only for rect-preserving transforms.
func (a Affine) Rect(r vg.Rectangle) vg.Rectangle {
	return Canon(vg.Rectangle{
		Min: a.Point(r.Min),
		Max: a.Point(r.Max),
	})
}
