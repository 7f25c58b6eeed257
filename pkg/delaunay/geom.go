package delaunay

import (
	"fmt"
	"math"
)

// Point - точка на плоскости. Сравнение точное, по координатам.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Less - лексикографический порядок: сначала X, потом Y
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

type points []Point

func (s points) Len() int      { return len(s) }
func (s points) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type pointsByXY struct{ points }

func (s pointsByXY) Less(i, j int) bool { return s.points[i].Less(s.points[j]) }

// Distance - евклидово расстояние между точками
func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Circumcircle считает центр и радиус описанной окружности.
// ok == false, если точки лежат на одной прямой (определитель ровно 0).
// Допуска нет: почти коллинеарные точки дают центр очень далеко.
func Circumcircle(p1, p2, p3 Point) (center Point, radius float64, ok bool) {
	ax, ay := p1.X, p1.Y
	bx, by := p2.X, p2.Y
	cx, cy := p3.X, p3.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return Point{}, 0, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	center = Point{
		X: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Y: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}
	return center, Distance(center, p1), true
}

// Orientation - удвоенная ориентированная площадь треугольника pqr.
// > 0 - поворот против часовой, 0 - коллинеарны, < 0 - по часовой.
// Для площадей; решения по знаку принимает orient.
func Orientation(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Edge - неупорядоченная пара точек, хранится в каноническом виде (P < Q)
type Edge struct {
	P, Q Point
}

func NewEdge(a, b Point) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{P: a, Q: b}
}

// Triangle - три вершины в каноническом порядке (A < B < C лексикографически),
// поэтому значение можно сразу использовать как ключ мапы.
type Triangle struct {
	A, B, C Point
}

func NewTriangle(a, b, c Point) Triangle {
	if b.Less(a) {
		a, b = b, a
	}
	if c.Less(b) {
		b, c = c, b
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.A, t.C)}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (t Triangle) Circumcircle() (Point, float64, bool) {
	return Circumcircle(t.A, t.B, t.C)
}

func (t Triangle) Area() float64 {
	return math.Abs(Orientation(t.A, t.B, t.C)) / 2
}

// Degenerate - вершины точно на одной прямой
func (t Triangle) Degenerate() bool {
	return orient(t.A, t.B, t.C) == 0
}

// ccw - вершины в порядке обхода против часовой
func (t Triangle) ccw() (Point, Point, Point) {
	if orient(t.A, t.B, t.C) < 0 {
		return t.A, t.C, t.B
	}
	return t.A, t.B, t.C
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.A, t.B, t.C)
}

// Less - порядок треугольников для детерминированного вывода
func (t Triangle) Less(o Triangle) bool {
	if t.A != o.A {
		return t.A.Less(o.A)
	}
	if t.B != o.B {
		return t.B.Less(o.B)
	}
	return t.C.Less(o.C)
}

type triangles []Triangle

func (s triangles) Len() int           { return len(s) }
func (s triangles) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s triangles) Less(i, j int) bool { return s[i].Less(s[j]) }
