package delaunay

import "math"

// Report - результат проверки триангуляции
type Report struct {
	Triangles int
	// треугольники, у которых внутри описанной окружности есть точка
	Violations []Triangle
	Degenerate int
	// сумма площадей треугольников и площадь выпуклой оболочки
	Area     float64
	HullArea float64
}

// Check проверяет пустоту окружностей и покрытие выпуклой оболочки.
// O(n*m), годится для тестов и отладки, а не для горячего пути.
func Check(pts []Point, tris []Triangle) Report {
	r := Report{Triangles: len(tris)}
	for _, t := range tris {
		if t.Degenerate() {
			r.Degenerate++
			continue
		}
		if !IsDelaunay(t.A, t.B, t.C, pts) {
			r.Violations = append(r.Violations, t)
		}
		r.Area += t.Area()
	}
	r.HullArea = PolygonArea(ConvexHull(pts))
	return r
}

// Covered - площади совпадают с относительной точностью tol
func (r Report) Covered(tol float64) bool {
	return math.Abs(r.Area-r.HullArea) <= tol*math.Max(1, r.HullArea)
}

func (r Report) Valid(tol float64) bool {
	return len(r.Violations) == 0 && r.Degenerate == 0 && r.Covered(tol)
}
