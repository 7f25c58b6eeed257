package delaunay

import (
	"sort"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"go.uber.org/zap"
)

// Triangulation - входное множество точек и логгер.
// Состояния между вызовами нет: каждый метод строит результат заново.
type Triangulation struct {
	points []Point

	Logger *logger.ZapLogger
}

// New копирует точки, так что вызывающий может переиспользовать свой слайс.
// logger может быть nil.
func New(pts []Point, log *logger.ZapLogger) *Triangulation {
	if log == nil {
		log = logger.NewNop()
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return &Triangulation{points: cp, Logger: log}
}

func (t *Triangulation) Points() []Point {
	cp := make([]Point, len(t.points))
	copy(cp, t.points)
	return cp
}

// Run выбирает стратегию по значению перечисления
func (t *Triangulation) Run(alg Algorithm) []Triangle {
	t.Logger.Info("[run] Запуск триангуляции", zap.Stringer("algorithm", alg), zap.Int("points", len(t.points)))

	var result []Triangle
	switch alg {
	case BruteForce:
		result = t.BruteForce()
	case Incremental:
		result = t.Incremental()
	case DivideAndConquer:
		result = t.DivideAndConquer()
	default:
		t.Logger.Error("[run] Неизвестный алгоритм", zap.Int("algorithm", int(alg)))
		return nil
	}

	t.Logger.Info("[run] Триангуляция построена", zap.Stringer("algorithm", alg), zap.Int("triangles", len(result)))
	return result
}

// Triangulate - одноразовый вызов без создания Triangulation вручную
func Triangulate(pts []Point, alg Algorithm, log *logger.ZapLogger) []Triangle {
	return New(pts, log).Run(alg)
}

// IsDelaunay - треугольник p1 p2 p3 делоне, если он не вырожден и ни одна
// точка из all (кроме самих вершин) не лежит строго внутри описанной
// окружности. Точки на окружности допускаются (например, квадратная сетка).
// Оба условия проверяются точными предикатами.
func IsDelaunay(p1, p2, p3 Point, all []Point) bool {
	switch orient(p1, p2, p3) {
	case 0:
		return false
	case -1:
		p2, p3 = p3, p2
	}
	for _, p := range all {
		if p == p1 || p == p2 || p == p3 {
			continue
		}
		if inCircle(p1, p2, p3, p) > 0 {
			return false
		}
	}
	return true
}

func (t *Triangulation) isDelaunay(tri Triangle) bool {
	return IsDelaunay(tri.A, tri.B, tri.C, t.points)
}

// SortTriangles упорядочивает треугольники канонически (на месте)
func SortTriangles(tris []Triangle) {
	sort.Sort(triangles(tris))
}

// Equal сравнивает два результата как множества треугольников
func Equal(a, b []Triangle) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[Triangle]int, len(a))
	for _, t := range a {
		count[t]++
	}
	for _, t := range b {
		if count[t] == 0 {
			return false
		}
		count[t]--
	}
	return true
}
