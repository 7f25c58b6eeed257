package pointgen

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
)

// Range - прямоугольник, в котором генерируются точки
type Range struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (r Range) Width() float64  { return r.MaxX - r.MinX }
func (r Range) Height() float64 { return r.MaxY - r.MinY }

// Random - n точек, равномерно распределенных в r
func Random(rng *rand.Rand, n int, r Range) []delaunay.Point {
	pts := make([]delaunay.Point, n)
	for i := range pts {
		pts[i] = delaunay.Point{
			X: r.MinX + rng.Float64()*r.Width(),
			Y: r.MinY + rng.Float64()*r.Height(),
		}
	}
	return pts
}

// Grid раскладывает n точек по центрам ячеек почти квадратной сетки.
// Соседние четверки точек лежат на одной окружности.
func Grid(n int, r Range) []delaunay.Point {
	if n <= 0 {
		return nil
	}
	pts := make([]delaunay.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := r.Width() / float64(cols)
	yStep := r.Height() / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк*столбцов может быть больше n, лишние не генерим
			if len(pts) == n {
				return pts
			}
			pts = append(pts, delaunay.Point{
				X: r.MinX + xStep/2 + float64(j)*xStep,
				Y: r.MinY + yStep/2 + float64(i)*yStep,
			})
		}
	}
	return pts
}
