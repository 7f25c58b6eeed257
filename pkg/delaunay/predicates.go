package delaunay

import (
	"math"
	"math/big"
)

// Знаки ориентации и "точка в окружности" считаются сначала во float с
// оценкой погрешности (Shewchuk, "Adaptive Precision Floating-Point
// Arithmetic and Fast Robust Geometric Predicates", 1997). Если результат
// меньше оценки, знак пересчитывается точно на big.Float. Так все алгоритмы
// принимают одни и те же решения на почти вырожденных наборах.

const (
	// 2^-53, половина машинного эпсилон
	epsilon = 1.1102230246251565e-16

	orientErrBound   = (3 + 16*epsilon) * epsilon
	inCircleErrBound = (10 + 96*epsilon) * epsilon
)

// orient - знак Orientation(a, b, c): 1 - против часовой, -1 - по часовой,
// 0 - точно на одной прямой.
func orient(a, b, c Point) int {
	left := (a.X - c.X) * (b.Y - c.Y)
	right := (a.Y - c.Y) * (b.X - c.X)
	det := left - right

	bound := orientErrBound * (math.Abs(left) + math.Abs(right))
	switch {
	case det > bound:
		return 1
	case -det > bound:
		return -1
	}
	return exactOrient(a, b, c)
}

// inCircle > 0, если d строго внутри окружности через a, b, c, обходимые
// против часовой; 0 - d на окружности. Координаты сдвинуты в d, поэтому
// совпадение d с любой из вершин дает ровно 0.
func inCircle(a, b, c, d Point) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift

	bound := inCircleErrBound * permanent
	switch {
	case det > bound:
		return 1
	case -det > bound:
		return -1
	}
	return exactInCircle(a, b, c, d)
}

// InCircle - лежит ли d строго внутри окружности через a, b, c
// (a, b, c против часовой стрелки)
func InCircle(a, b, c, d Point) bool {
	return inCircle(a, b, c, d) > 0
}

// newBigFloat - big.Float с максимальной точностью: сумма и произведение
// конечных float64 в нем не округляются.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func bigSub(x, y float64) *big.Float {
	return newBigFloat().Sub(newBigFloat().SetFloat64(x), newBigFloat().SetFloat64(y))
}

func bigMul(x, y *big.Float) *big.Float { return newBigFloat().Mul(x, y) }

// bigCross - x1*y2 - x2*y1
func bigCross(x1, y1, x2, y2 *big.Float) *big.Float {
	return newBigFloat().Sub(bigMul(x1, y2), bigMul(x2, y1))
}

func exactOrient(a, b, c Point) int {
	return bigCross(bigSub(a.X, c.X), bigSub(a.Y, c.Y), bigSub(b.X, c.X), bigSub(b.Y, c.Y)).Sign()
}

func exactInCircle(a, b, c, d Point) int {
	adx, ady := bigSub(a.X, d.X), bigSub(a.Y, d.Y)
	bdx, bdy := bigSub(b.X, d.X), bigSub(b.Y, d.Y)
	cdx, cdy := bigSub(c.X, d.X), bigSub(c.Y, d.Y)

	lift := func(x, y *big.Float) *big.Float {
		return newBigFloat().Add(bigMul(x, x), bigMul(y, y))
	}

	det := bigMul(lift(adx, ady), bigCross(bdx, bdy, cdx, cdy))
	det.Add(det, bigMul(lift(bdx, bdy), bigCross(cdx, cdy, adx, ady)))
	det.Add(det, bigMul(lift(cdx, cdy), bigCross(adx, ady, bdx, bdy)))
	return det.Sign()
}
