package breakaxes

import (
	"image"
	"strconv"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/wuyao1997/break-axes/internal/clip"
)

// clipRects is a 100x100 region with a vertical gap over x in [45,55].
var clipRects = []vg.Rectangle{
	{Min: vg.Point{X: 0, Y: 0}, Max: vg.Point{X: 45, Y: 100}},
	{Min: vg.Point{X: 55, Y: 0}, Max: vg.Point{X: 100, Y: 100}},
}

func newClipCanvas(rec *recorder.Canvas, rects ...vg.Rectangle) *clipCanvas {
	return &clipCanvas{Canvas: rec, rects: rects, cur: clip.Identity()}
}

func line(x0, y0, x1, y1 vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: x0, Y: y0})
	p.Line(vg.Point{X: x1, Y: y1})
	return p
}

func rectPath(r vg.Rectangle) vg.Path {
	var p vg.Path
	p.Move(r.Min)
	p.Line(vg.Point{X: r.Max.X, Y: r.Min.Y})
	p.Line(r.Max)
	p.Line(vg.Point{X: r.Min.X, Y: r.Max.Y})
	p.Close()
	return p
}

var strokeTests = []struct {
	path vg.Path
	want int // recorded actions
}{
	// Entirely inside one rectangle: forwarded as is.
	{line(10, 50, 40, 50), 1},
	// Entirely inside the gap: dropped.
	{line(46, 50, 54, 50), 0},
	// Crossing the gap: stroked as one clipped path.
	{line(10, 50, 90, 50), 1},
	// Outside the region.
	{line(10, 150, 90, 150), 0},
}

func TestClipCanvasStroke(t *testing.T) {
	for i, tc := range strokeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			rec := new(recorder.Canvas)
			cc := newClipCanvas(rec, clipRects...)
			cc.Stroke(tc.path)
			if len(rec.Actions) != tc.want {
				t.Errorf("%d actions, want %d", len(rec.Actions), tc.want)
			}
		})
	}
}

func TestClipCanvasTranslate(t *testing.T) {
	rec := new(recorder.Canvas)
	cc := newClipCanvas(rec, clipRects...)

	cc.Translate(vg.Point{X: 100, Y: 0})
	cc.Stroke(line(-90, 50, -70, 50)) // lands at x in [10,30]
	if len(rec.Actions) != 2 {       // the Translate and the Stroke
		t.Fatalf("%d actions, want 2", len(rec.Actions))
	}
	cc.Stroke(line(10, 50, 30, 50)) // lands right of the region
	if len(rec.Actions) != 2 {
		t.Fatal("translated stroke outside the region was not dropped")
	}
}

func TestClipCanvasScale(t *testing.T) {
	rec := new(recorder.Canvas)
	cc := newClipCanvas(rec, clipRects...)

	cc.Scale(2, 2)
	cc.Stroke(line(5, 25, 20, 25)) // lands at x in [10,40]
	if len(rec.Actions) != 2 {     // the Scale and the Stroke
		t.Fatalf("%d actions, want 2", len(rec.Actions))
	}
	cc.Stroke(line(24, 25, 26, 25)) // lands inside the gap
	if len(rec.Actions) != 2 {
		t.Fatal("scaled stroke inside the gap was not dropped")
	}
}

func TestClipCanvasPushPop(t *testing.T) {
	rec := new(recorder.Canvas)
	cc := newClipCanvas(rec, clipRects...)

	cc.Push()
	cc.Translate(vg.Point{X: 1000, Y: 1000})
	cc.Pop()
	cc.Stroke(line(10, 50, 40, 50))
	// Push, Translate, Pop and the stroke in restored coordinates.
	if len(rec.Actions) != 4 {
		t.Fatalf("%d actions, want 4", len(rec.Actions))
	}
}

func TestClipCanvasRotate(t *testing.T) {
	rec := new(recorder.Canvas)
	cc := newClipCanvas(rec, clipRects...)

	// Rotated drawing passes through unclipped.
	cc.Rotate(0.5)
	cc.Stroke(line(500, 500, 600, 600))
	if len(rec.Actions) != 2 {
		t.Fatalf("rotated stroke was clipped: %d actions", len(rec.Actions))
	}
}

var fillTests = []struct {
	r    vg.Rectangle
	want int
}{
	// Entirely inside one rectangle: forwarded as is.
	{vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 30, Y: 30}}, 1},
	// Entirely inside the gap: dropped.
	{vg.Rectangle{Min: vg.Point{X: 46, Y: 10}, Max: vg.Point{X: 54, Y: 30}}, 0},
	// Straddling the gap: one fill per touched rectangle.
	{vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 90, Y: 30}}, 2},
}

func TestClipCanvasFill(t *testing.T) {
	for i, tc := range fillTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			rec := new(recorder.Canvas)
			cc := newClipCanvas(rec, clipRects...)
			cc.Fill(rectPath(tc.r))
			if len(rec.Actions) != tc.want {
				t.Errorf("%d actions, want %d", len(rec.Actions), tc.want)
			}
		})
	}
}

func TestClipCanvasFillString(t *testing.T) {
	rec := new(recorder.Canvas)
	cc := newClipCanvas(rec, clipRects...)

	cc.FillString(vg.Font{}, vg.Point{X: 20, Y: 50}, "kept")
	cc.FillString(vg.Font{}, vg.Point{X: 50, Y: 50}, "culled")
	if len(rec.Actions) != 1 {
		t.Fatalf("%d actions, want 1", len(rec.Actions))
	}
}

func TestClipCanvasDrawImage(t *testing.T) {
	rec := new(recorder.Canvas)
	cc := newClipCanvas(rec, clipRects...)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	cc.DrawImage(vg.Rectangle{
		Min: vg.Point{X: 40, Y: 40},
		Max: vg.Point{X: 60, Y: 60},
	}, img)
	cc.DrawImage(vg.Rectangle{
		Min: vg.Point{X: 46, Y: 40},
		Max: vg.Point{X: 54, Y: 60},
	}, img)
	if len(rec.Actions) != 1 {
		t.Fatalf("%d actions, want 1", len(rec.Actions))
	}
}
