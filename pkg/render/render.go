// Package render draws point sets and their triangulations: raster images
// through gg, vector images through svgo, interactive pages through echarts.
package render

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/pkg/errors"
)

type Options struct {
	Width   int
	Height  int
	Padding int
	Title   string
}

func DefaultOptions() Options {
	return Options{
		Width:   1000,
		Height:  1000,
		Padding: 20,
		Title:   "Триангуляция Делоне",
	}
}

// Save dispatches on the file extension: .png, .jpg/.jpeg, .gif, .svg, .html.
// Missing directories are created.
func Save(path string, pts []delaunay.Point, tris []delaunay.Triangle, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		return SaveImage(path, pts, tris, opts)
	case ".svg", ".html":
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create output file")
		}
		if ext == ".svg" {
			err = SVG(f, pts, tris, opts)
		} else {
			err = HTML(f, pts, tris, opts)
		}
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return errors.Wrapf(err, "render %s", path)
	default:
		return errors.Errorf("unsupported output format %q", ext)
	}
}

// viewport maps point coordinates onto a Width x Height canvas with y going
// up, keeping the aspect ratio.
type viewport struct {
	minX, minY float64
	scale      float64
	pad        float64
	height     float64
}

func newViewport(pts []delaunay.Point, opts Options) viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(pts) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	pad := float64(opts.Padding)
	w := float64(opts.Width) - 2*pad
	h := float64(opts.Height) - 2*pad

	scale := 1.0
	dx, dy := maxX-minX, maxY-minY
	switch {
	case dx > 0 && dy > 0:
		scale = math.Min(w/dx, h/dy)
	case dx > 0:
		scale = w / dx
	case dy > 0:
		scale = h / dy
	}

	return viewport{minX: minX, minY: minY, scale: scale, pad: pad, height: float64(opts.Height)}
}

// project returns canvas coordinates with the origin in the bottom left corner
func (v viewport) project(p delaunay.Point) (float64, float64) {
	return v.pad + (p.X-v.minX)*v.scale, v.pad + (p.Y-v.minY)*v.scale
}

// toScreen returns canvas coordinates with the origin in the top left corner
func (v viewport) toScreen(p delaunay.Point) (float64, float64) {
	x, y := v.project(p)
	return x, v.height - y
}
