package pointgen

import (
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	r := Range{MinX: -5, MaxX: 5, MinY: 100, MaxY: 200}
	pts := Random(rand.New(rand.NewSource(1)), 500, r)
	require.Len(t, pts, 500)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, r.MinX)
		assert.Less(t, p.X, r.MaxX)
		assert.GreaterOrEqual(t, p.Y, r.MinY)
		assert.Less(t, p.Y, r.MaxY)
	}

	again := Random(rand.New(rand.NewSource(1)), 500, r)
	assert.Equal(t, pts, again, "same seed gives same points")
}

func TestGrid(t *testing.T) {
	r := Range{MaxX: 100, MaxY: 100}

	t.Run("square", func(t *testing.T) {
		pts := Grid(4, r)
		assert.Equal(t, []delaunay.Point{{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 25, Y: 75}, {X: 75, Y: 75}}, pts)
	})

	t.Run("not square", func(t *testing.T) {
		pts := Grid(7, r)
		assert.Len(t, pts, 7)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Grid(0, r))
	})
}
