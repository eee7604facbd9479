// +build ignore

package main

import (
	"math"
	"os"

	breakaxes "github.com/wuyao1997/break-axes"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var xy = plotter.XYs{}

func init() {
	xs := make([]float64, 201)
	floats.Span(xs, 0, 100)
	xy = make(plotter.XYs, len(xs))
	for i, x := range xs {
		xy[i].X = x
		xy[i].Y = math.Sin(x/3) + x/20
	}
}

func main() {
	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Broken x axis"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "sin(x/3) + x/20"

	scale, err := breakaxes.NewScale(breakaxes.Span{Min: 30, Max: 70, Factor: 0.1})
	if err != nil {
		panic(err)
	}
	breakaxes.ScaleXY(p, scale, nil)

	line, err := plotter.NewLine(xy)
	if err != nil {
		panic(err)
	}

	b := breakaxes.Breaks{X: []float64{50}}
	b.Apply(p, line)

	img := vgimg.New(600, 480)
	dc := draw.New(img)
	p.Draw(dc)
	write(img, "testdata/break-00.png")
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
