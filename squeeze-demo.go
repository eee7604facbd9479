// +build ignore

package main

import (
	"image/color"
	"math"
	"os"

	breakaxes "github.com/wuyao1997/break-axes"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	xy := make(plotter.XYs, 101)
	for i := range xy {
		x := float64(i) / 10
		xy[i].X = x
		xy[i].Y = math.Pow(10, 0.6*x)
	}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Squeezed log y axis"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "growth"

	scale, err := breakaxes.NewLogScale(breakaxes.Span{Min: 100, Max: 100000, Factor: 0.25})
	if err != nil {
		panic(err)
	}
	breakaxes.SetScale(&p.Y, scale, breakaxes.Ticks{
		Base:  plot.LogTicks{},
		Spans: scale.Spans(),
		Edges: true,
	})

	line, err := plotter.NewLine(xy)
	if err != nil {
		panic(err)
	}
	line.Color = color.NRGBA{B: 0xcc, A: 0xff}

	b := breakaxes.Breaks{
		Y: []float64{3162},
		Style: breakaxes.MarkStyle{
			Gap: 8,
			DX:  4,
			DY:  2,
			LineStyle: draw.LineStyle{
				Color: color.NRGBA{R: 0xcc, A: 0xff},
				Width: 2,
			},
		},
	}
	b.Apply(p, line)

	// A second pair of strokes where the line itself crosses the
	// squeezed span.
	marks := breakaxes.PointMarks{
		XY:       plotter.XYs{{X: math.Log10(3162) / 0.6, Y: 3162}},
		Vertical: true,
		Style:    b.Style,
	}
	p.Add(marks)

	img := vgimg.New(600, 480)
	dc := draw.New(img)
	p.Draw(dc)
	write(img, "testdata/squeeze-00.png")
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
