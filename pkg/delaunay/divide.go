package delaunay

import (
	"sort"

	"go.uber.org/zap"
)

// DivideAndConquer - разделяй и властвуй. Точки сортируются по X, делятся
// пополам, половины строятся рекурсивно и сшиваются слиянием Гибаса-Стольфи.
// В конце каждый треугольник еще раз проверяется по всем точкам.
func (t *Triangulation) DivideAndConquer() []Triangle {
	t.Logger.Info("[dc] Разделяй и властвуй запущен", zap.Int("points", len(t.points)))

	sorted := uniqueSorted(t.points)
	if len(sorted) < len(t.points) {
		t.Logger.Debug("[dc] Убраны дубликаты", zap.Int("duplicates", len(t.points)-len(sorted)))
	}
	if len(sorted) < 2 {
		t.Logger.Info("[dc] Разделяй и властвуй завершен", zap.Int("triangles", 0))
		return nil
	}

	le, _ := t.divide(sorted, 0)
	candidates := faces(le)

	// глобальный фильтр: пустота окружности относительно всего входа
	result := candidates[:0]
	for _, tri := range candidates {
		if t.isDelaunay(tri) {
			result = append(result, tri)
		} else {
			t.Logger.Debug("[dc] Треугольник отброшен фильтром", zap.Stringer("triangle", tri))
		}
	}

	SortTriangles(result)
	t.Logger.Info("[dc] Разделяй и властвуй завершен", zap.Int("triangles", len(result)))
	return result
}

// uniqueSorted сортирует копию точек по (X, Y) и убирает совпадающие
func uniqueSorted(pts []Point) []Point {
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Stable(pointsByXY{sorted})

	out := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// divide строит триангуляцию отсортированных точек (их минимум 2).
// le - ребро оболочки против часовой стрелки из самой левой точки,
// re - ребро по часовой из самой правой.
func (t *Triangulation) divide(pts []Point, depth int) (le, re *qedge) {
	if len(pts) <= 3 {
		return t.base(pts)
	}

	mid := len(pts) / 2
	ldo, ldi := t.divide(pts[:mid], depth+1)
	rdi, rdo := t.divide(pts[mid:], depth+1)

	t.Logger.Debug("[dc] Слияние", zap.Int("depth", depth), zap.Int("left", mid), zap.Int("right", len(pts)-mid))
	return merge(ldo, ldi, rdi, rdo)
}

// base - две или три точки. Есть ли треугольник, решает полный перебор.
func (t *Triangulation) base(pts []Point) (le, re *qedge) {
	if len(pts) == 2 {
		a := makeEdge(pts[0], pts[1])
		return a, a.sym()
	}

	s1, s2, s3 := pts[0], pts[1], pts[2]
	a := makeEdge(s1, s2)
	b := makeEdge(s2, s3)
	splice(a.sym(), b)

	if len(bruteForce(pts, pts)) == 0 {
		// коллинеарны: просто ломаная из двух ребер
		return a, b.sym()
	}

	c := connect(b, a)
	if orient(s1, s2, s3) > 0 {
		return a, b.sym()
	}
	return c.sym(), c
}

// merge сшивает левую и правую триангуляции
func merge(ldo, ldi, rdi, rdo *qedge) (le, re *qedge) {
	// нижняя общая касательная
	for {
		if leftOf(rdi.org, ldi) {
			ldi = ldi.lnext()
		} else if rightOf(ldi.org, rdi) {
			rdi = rdi.rprev()
		} else {
			break
		}
	}

	basel := connect(rdi.sym(), ldi)
	if ldi.org == ldo.org {
		ldo = basel.sym()
	}
	if rdi.org == rdo.org {
		rdo = basel
	}

	valid := func(e *qedge) bool {
		return rightOf(e.dest(), basel)
	}

	// поднимаемся вверх, добавляя ребра между половинами
	for {
		lcand := basel.sym().onext()
		// у вершины с единственным ребром onext/oprev возвращает само ребро
		if valid(lcand) {
			for lcand.onext() != lcand && InCircle(basel.dest(), basel.org, lcand.dest(), lcand.onext().dest()) {
				next := lcand.onext()
				deleteEdge(lcand)
				lcand = next
			}
		}

		rcand := basel.oprev()
		if valid(rcand) {
			for rcand.oprev() != rcand && InCircle(basel.dest(), basel.org, rcand.dest(), rcand.oprev().dest()) {
				next := rcand.oprev()
				deleteEdge(rcand)
				rcand = next
			}
		}

		lvalid, rvalid := valid(lcand), valid(rcand)
		if !lvalid && !rvalid {
			break
		}

		if !lvalid || (rvalid && InCircle(lcand.dest(), lcand.org, rcand.org, rcand.dest())) {
			basel = connect(rcand, basel.sym())
		} else {
			basel = connect(basel.sym(), lcand.sym())
		}
	}
	return ldo, rdo
}
