package delaunay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}
	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Zero(t, Distance(b, b))
}

func TestCircumcircle(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		center, radius, ok := Circumcircle(Point{0, 0}, Point{4, 0}, Point{0, 4})
		require.True(t, ok)
		assert.InDelta(t, 2, center.X, 1e-12)
		assert.InDelta(t, 2, center.Y, 1e-12)
		assert.InDelta(t, math.Sqrt(8), radius, 1e-12)
	})

	t.Run("vertex order does not matter", func(t *testing.T) {
		c1, r1, ok1 := Circumcircle(Point{1, 2}, Point{5, -1}, Point{3, 7})
		c2, r2, ok2 := Circumcircle(Point{3, 7}, Point{1, 2}, Point{5, -1})
		require.True(t, ok1)
		require.True(t, ok2)
		assert.InDelta(t, c1.X, c2.X, 1e-9)
		assert.InDelta(t, c1.Y, c2.Y, 1e-9)
		assert.InDelta(t, r1, r2, 1e-9)
	})

	t.Run("collinear fails", func(t *testing.T) {
		_, _, ok := Circumcircle(Point{0, 0}, Point{1, 1}, Point{2, 2})
		assert.False(t, ok)
	})

	t.Run("coincident fails", func(t *testing.T) {
		_, _, ok := Circumcircle(Point{1, 1}, Point{1, 1}, Point{2, 3})
		assert.False(t, ok)
	})

	t.Run("nearly collinear still succeeds", func(t *testing.T) {
		center, radius, ok := Circumcircle(Point{0, 0}, Point{1, 1e-9}, Point{2, 0})
		require.True(t, ok)
		assert.Greater(t, radius, 1e6)
		assert.Less(t, center.Y, -1e6)
	})
}

func TestOrientation(t *testing.T) {
	assert.Greater(t, Orientation(Point{0, 0}, Point{1, 0}, Point{0, 1}), 0.0)
	assert.Less(t, Orientation(Point{0, 0}, Point{0, 1}, Point{1, 0}), 0.0)
	assert.Zero(t, Orientation(Point{0, 0}, Point{1, 1}, Point{3, 3}))
	// удвоенная площадь
	assert.Equal(t, 32.0, Orientation(Point{0, 0}, Point{8, 0}, Point{0, 4}))
}

func TestInCircle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{4, 0}, Point{0, 4}
	assert.True(t, InCircle(a, b, c, Point{2, 2}))
	assert.False(t, InCircle(a, b, c, Point{10, 10}))
	// на окружности - не внутри
	assert.False(t, InCircle(a, b, c, Point{4, 4}))
}

func TestNewTriangleIsCanonical(t *testing.T) {
	p, q, r := Point{5, 5}, Point{0, 10}, Point{0, 0}
	want := Triangle{A: Point{0, 0}, B: Point{0, 10}, C: Point{5, 5}}

	perms := [][3]Point{{p, q, r}, {p, r, q}, {q, p, r}, {q, r, p}, {r, p, q}, {r, q, p}}
	for _, perm := range perms {
		assert.Equal(t, want, NewTriangle(perm[0], perm[1], perm[2]))
	}

	set := map[Triangle]bool{NewTriangle(p, q, r): true}
	assert.True(t, set[NewTriangle(r, q, p)])
}

func TestNewEdgeIsCanonical(t *testing.T) {
	a, b := Point{3, 1}, Point{1, 3}
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))
	assert.Equal(t, b, NewEdge(a, b).P)
}

func TestTriangleHelpers(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	assert.Equal(t, 8.0, tri.Area())
	assert.True(t, tri.HasVertex(Point{4, 0}))
	assert.False(t, tri.HasVertex(Point{4, 4}))
	assert.False(t, tri.Degenerate())
	assert.True(t, NewTriangle(Point{0, 0}, Point{1, 1}, Point{2, 2}).Degenerate())
	assert.Len(t, tri.Edges(), 3)
}
