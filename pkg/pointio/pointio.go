// Package pointio reads point sets from text or SVG files and writes
// triangulations as plain text.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ReadFile picks the format by extension: .svg is parsed as SVG, anything
// else as text.
func ReadFile(path string) ([]delaunay.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open points file")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVG(f)
	}
	return ReadText(f)
}

// ReadText reads one point per line in the form "x y" (or "x,y"). Empty
// lines and lines starting with # are skipped.
func ReadText(in io.Reader) ([]delaunay.Point, error) {
	var pts []delaunay.Point
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}
	return pts, nil
}

func parsePoint(text string) (delaunay.Point, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("invalid point %q", text)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return delaunay.Point{X: x, Y: y}, nil
}

// ReadSVG collects the centres of all <circle> elements and the vertices of
// all <polygon> and <polyline> elements. This is not a full SVG reader:
// transforms are ignored.
func ReadSVG(in io.Reader) ([]delaunay.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var pts []delaunay.Point
	for _, el := range root.FindAll("circle") {
		x, err := strconv.ParseFloat(el.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid circle cx %q", el.Attributes["cx"])
		}
		y, err := strconv.ParseFloat(el.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid circle cy %q", el.Attributes["cy"])
		}
		pts = append(pts, delaunay.Point{X: x, Y: y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			for _, pair := range strings.Fields(el.Attributes["points"]) {
				p, err := parsePoint(pair)
				if err != nil {
					return nil, errors.Wrapf(err, "%s points", name)
				}
				pts = append(pts, p)
			}
		}
	}

	if len(pts) == 0 {
		return nil, errors.New("no circle, polygon or polyline elements found")
	}
	return pts, nil
}

// WriteTriangles writes one triangle per line: "ax ay bx by cx cy".
func WriteTriangles(w io.Writer, tris []delaunay.Triangle) error {
	bw := bufio.NewWriter(w)
	for _, t := range tris {
		_, err := fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
			formatFloat(t.A.X), formatFloat(t.A.Y),
			formatFloat(t.B.X), formatFloat(t.B.Y),
			formatFloat(t.C.X), formatFloat(t.C.Y))
		if err != nil {
			return errors.Wrap(err, "write triangles")
		}
	}
	return errors.Wrap(bw.Flush(), "write triangles")
}

// WritePoints writes points in the format ReadText accepts.
func WritePoints(w io.Writer, pts []delaunay.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%s %s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return errors.Wrap(err, "write points")
		}
	}
	return errors.Wrap(bw.Flush(), "write points")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
