package bench

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/pointgen"
	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBenchmark() *Benchmark {
	return &Benchmark{
		Algorithms: delaunay.Algorithms(),
		Start:      3,
		End:        12,
		Step:       3,
		Runs:       2,
		Range:      pointgen.Range{MaxX: 100, MaxY: 100},
		Rand:       rand.New(rand.NewSource(1)),
	}
}

func TestRun(t *testing.T) {
	res, err := smallBenchmark().Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{3, 6, 9, 12}, res.PointCounts)
	for _, alg := range delaunay.Algorithms() {
		assert.Len(t, res.Times[alg], 4, alg.String())
	}
}

func TestRunValidates(t *testing.T) {
	cases := map[string]func(b *Benchmark){
		"no algorithms": func(b *Benchmark) { b.Algorithms = nil },
		"bad range":     func(b *Benchmark) { b.End = 1 },
		"zero step":     func(b *Benchmark) { b.Step = 0 },
		"zero runs":     func(b *Benchmark) { b.Runs = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			b := smallBenchmark()
			mutate(b)
			_, err := b.Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := smallBenchmark().Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChartAndSave(t *testing.T) {
	res := &Result{
		PointCounts: []int{10, 20},
		Algorithms:  []delaunay.Algorithm{delaunay.BruteForce, delaunay.Incremental},
		Times: map[delaunay.Algorithm][]time.Duration{
			delaunay.BruteForce:  {time.Millisecond, 8 * time.Millisecond},
			delaunay.Incremental: {2 * time.Millisecond, 3 * time.Millisecond},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, res.Render(&buf))
	assert.Contains(t, buf.String(), "brute-force")
	assert.Contains(t, buf.String(), "incremental")

	path := filepath.Join(t.TempDir(), "out", "bench.html")
	require.NoError(t, res.Save(path))
	assert.FileExists(t, path)

	buf.Reset()
	require.NoError(t, res.WriteTable(&buf, aurora.NewAurora(false)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"points", "brute-force", "incremental"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"10", "1ms", "2ms"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"20", "8ms", "3ms"}, strings.Fields(lines[2]))
}
