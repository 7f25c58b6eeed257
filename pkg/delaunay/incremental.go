package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// сколько раз можно удвоить супертреугольник, если он попал
// в описанную окружность граничного треугольника
const maxSuperTriangleGrowth = 16

// circle - описанная окружность, заданная вершинами в порядке против часовой
type circle struct {
	a, b, c Point
	ok      bool
}

// Incremental - алгоритм Боуэра-Ватсона. Точки вставляются в порядке ввода.
func (t *Triangulation) Incremental() []Triangle {
	t.Logger.Info("[inc] Инкрементальный алгоритм запущен", zap.Int("points", len(t.points)))
	if len(t.points) == 0 {
		return nil
	}

	bbox := boundingBox(t.points)
	size := bbox.Size()
	delta := 2 * math.Max(size.X, size.Y)
	if delta == 0 {
		// все точки совпадают, треугольников все равно не будет
		delta = 1
	}

	var result []Triangle
	for attempt := 0; ; attempt++ {
		super := superTriangle(bbox, delta)
		working := t.bowyerWatson(super)

		var complete bool
		result, complete = t.collect(working, super)
		if complete || attempt == maxSuperTriangleGrowth {
			break
		}
		t.Logger.Warn("[inc] Супертреугольник слишком мал, увеличиваем", zap.Float64("delta", delta), zap.Int("attempt", attempt+1))
		delta *= 2
	}

	SortTriangles(result)
	t.Logger.Info("[inc] Инкрементальный алгоритм завершен", zap.Int("triangles", len(result)))
	return result
}

func boundingBox(pts []Point) r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range pts {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return rect
}

func superTriangle(bbox r2.Rect, delta float64) [3]Point {
	lo, hi := bbox.Lo(), bbox.Hi()
	return [3]Point{
		{lo.X - delta, lo.Y - delta},
		{lo.X + delta/2, hi.Y + delta},
		{hi.X + delta, lo.Y - delta},
	}
}

func newCircle(tri Triangle) circle {
	a, b, c := tri.ccw()
	return circle{a: a, b: b, c: c, ok: !tri.Degenerate()}
}

// contains - p строго внутри окружности
func (c circle) contains(p Point) bool {
	return c.ok && inCircle(c.a, c.b, c.c, p) > 0
}

// bowyerWatson строит рабочее множество, включая треугольники с вершинами
// супертреугольника. Удаление плохих и добавление новых треугольников для
// одной точки идут подряд, без вмешательства извне.
func (t *Triangulation) bowyerWatson(super [3]Point) map[Triangle]circle {
	first := NewTriangle(super[0], super[1], super[2])
	working := map[Triangle]circle{first: newCircle(first)}
	inserted := make(map[Point]bool, len(t.points))

	for i, p := range t.points {
		if inserted[p] {
			t.Logger.Debug("[inc] Дубликат пропущен", zap.Int("i", i), zap.Stringer("point", p))
			continue
		}
		inserted[p] = true

		// плохие треугольники - те, чья окружность строго содержит p
		var bad []Triangle
		for tri, c := range working {
			if c.contains(p) {
				bad = append(bad, tri)
			}
		}

		// граница полости: ребра, встретившиеся у плохих треугольников один раз
		seen := make(map[Edge]bool)
		var order []Edge
		for _, tri := range bad {
			delete(working, tri)
			for _, e := range tri.Edges() {
				if _, ok := seen[e]; !ok {
					order = append(order, e)
				}
				seen[e] = !seen[e]
			}
		}

		added := 0
		for _, e := range order {
			if !seen[e] {
				continue
			}
			tri := NewTriangle(e.P, e.Q, p)
			working[tri] = newCircle(tri)
			added++
		}

		t.Logger.Debug("[inc] Точка вставлена", zap.Int("i", i), zap.Stringer("point", p),
			zap.Int("bad", len(bad)), zap.Int("added", added), zap.Int("working", len(working)))
	}
	return working
}

// collect убирает треугольники с вершинами супертреугольника и вырожденные.
// complete == false, если какое-то ребро, смежное с супертреугольником,
// не лежит на выпуклой оболочке: значит часть граничных треугольников потеряна.
func (t *Triangulation) collect(working map[Triangle]circle, super [3]Point) (result []Triangle, complete bool) {
	complete = true
	for tri, c := range working {
		superCount := 0
		var inner []Point
		for _, v := range tri.Vertices() {
			if v == super[0] || v == super[1] || v == super[2] {
				superCount++
			} else {
				inner = append(inner, v)
			}
		}

		switch {
		case superCount == 0:
			if c.ok {
				result = append(result, tri)
			}
		case superCount == 1 && complete:
			if !onHull(inner[0], inner[1], t.points) {
				complete = false
			}
		}
	}

	if len(result) == 0 && !allCollinear(t.points) {
		complete = false
	}
	return result, complete
}

// onHull - все точки лежат по одну сторону от прямой ab (или на ней)
func onHull(a, b Point, pts []Point) bool {
	var left, right bool
	for _, p := range pts {
		switch orient(a, b, p) {
		case 1:
			left = true
		case -1:
			right = true
		}
		if left && right {
			return false
		}
	}
	return true
}

func allCollinear(pts []Point) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[0] {
			continue
		}
		for _, p := range pts[i+1:] {
			if orient(pts[0], pts[i], p) != 0 {
				return false
			}
		}
		return true
	}
	return true
}
