package delaunay

import (
	"sort"
)

// ConvexHull - обход Грэхема. Опорная точка - самая нижняя (при равенстве
// самая левая), остальные сортируются по полярному углу через orient,
// коллинеарные - по расстоянию до опорной. Коллинеарные точки на сторонах
// оболочки в результат не попадают. Оболочка обходится против часовой.
func ConvexHull(pts []Point) []Point {
	set := make(map[Point]struct{}, len(pts))
	uniq := make([]Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := set[p]; ok {
			continue
		}
		set[p] = struct{}{}
		uniq = append(uniq, p)
	}
	if len(uniq) < 3 {
		return uniq
	}

	anchor := 0
	for i, p := range uniq {
		a := uniq[anchor]
		if p.Y < a.Y || (p.Y == a.Y && p.X < a.X) {
			anchor = i
		}
	}
	uniq[0], uniq[anchor] = uniq[anchor], uniq[0]
	start := uniq[0]
	rest := uniq[1:]

	sort.SliceStable(rest, func(i, j int) bool {
		o := orient(start, rest[i], rest[j])
		if o == 0 {
			return Distance(start, rest[i]) < Distance(start, rest[j])
		}
		return o > 0
	})

	stack := make([]Point, 0, len(uniq))
	for _, p := range uniq {
		for len(stack) >= 2 && orient(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack
}

// FanTriangulate - веер из hull[0] по соседним вершинам оболочки
func FanTriangulate(hull []Point) []Triangle {
	var result []Triangle
	for i := 1; i+1 < len(hull); i++ {
		result = append(result, NewTriangle(hull[0], hull[i], hull[i+1]))
	}
	return result
}

// PolygonArea - площадь выпуклого многоугольника, сумма площадей веера
func PolygonArea(poly []Point) float64 {
	var sum float64
	for _, t := range FanTriangulate(poly) {
		sum += t.Area()
	}
	return sum
}
