package delaunay

import "go.uber.org/zap"

// BruteForce перебирает все C(n,3) тройки и оставляет те, что проходят
// проверку делоне. O(n^4). Порядок вывода - порядок перебора.
func (t *Triangulation) BruteForce() []Triangle {
	t.Logger.Info("[bf] Полный перебор запущен", zap.Int("points", len(t.points)))
	result := bruteForce(t.points, t.points)
	t.Logger.Info("[bf] Полный перебор завершен", zap.Int("triangles", len(result)))
	return result
}

// bruteForce перебирает тройки из sub, а пустоту окружности проверяет по all.
// Для базы разделяй и властвуй sub и all совпадают.
func bruteForce(sub, all []Point) []Triangle {
	var result []Triangle
	n := len(sub)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if IsDelaunay(sub[i], sub[j], sub[k], all) {
					result = append(result, NewTriangle(sub[i], sub[j], sub[k]))
				}
			}
		}
	}
	return result
}
