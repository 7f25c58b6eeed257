package render

import (
	"io"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	svg "github.com/ajstarks/svgo"
)

const (
	triangleStyle = "fill:none;stroke:rgb(0,0,255);stroke-width:1"
	pointStyle    = "fill:rgb(255,0,0)"
)

func SVG(w io.Writer, pts []delaunay.Point, tris []delaunay.Triangle, opts Options) error {
	v := newViewport(pts, opts)
	ew := &errWriter{w: w}

	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Title(opts.Title)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:rgb(255,255,255)")

	for _, t := range tris {
		xs := make([]int, 0, 3)
		ys := make([]int, 0, 3)
		for _, p := range t.Vertices() {
			x, y := v.toScreen(p)
			xs = append(xs, round(x))
			ys = append(ys, round(y))
		}
		canvas.Polygon(xs, ys, triangleStyle)
	}

	for _, p := range pts {
		x, y := v.toScreen(p)
		canvas.Circle(round(x), round(y), pointRadius, pointStyle)
	}

	canvas.End()
	return ew.err
}

func round(f float64) int {
	return int(math.Round(f))
}

// svgo does not report write errors, keep the first one
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
