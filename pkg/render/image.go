package render

import (
	"image"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const pointRadius = 3

// Image draws triangles in blue and points in red on a white background
func Image(pts []delaunay.Point, tris []delaunay.Triangle, opts Options) image.Image {
	v := newViewport(pts, opts)

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// gg has y pointing down: draw with y up, then flip the finished image
	mirror := v.project

	c.SetLineWidth(1)
	c.SetRGB(0, 0, 1)
	for _, t := range tris {
		ax, ay := mirror(t.A)
		bx, by := mirror(t.B)
		cx, cy := mirror(t.C)
		c.MoveTo(ax, ay)
		c.LineTo(bx, by)
		c.LineTo(cx, cy)
		c.ClosePath()
	}
	c.Stroke()

	c.SetRGB(1, 0, 0)
	for _, p := range pts {
		x, y := mirror(p)
		c.DrawCircle(x, y, pointRadius)
	}
	c.Fill()

	return imaging.FlipV(c.Image())
}

func SaveImage(path string, pts []delaunay.Point, tris []delaunay.Triangle, opts Options) error {
	img := Image(pts, tris, opts)
	return errors.Wrapf(imaging.Save(img, path), "save image %s", path)
}
