package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "delaunay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Points)
	assert.Equal(t, pointgen.Range{MaxX: 10000, MaxY: 10000}, cfg.Range.Points())

	algs, err := cfg.BenchmarkAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, delaunay.Algorithms(), algs)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
algorithm: divide-and-conquer
points: 200
range:
  x: [-10, 10]
benchmark:
  runs: 7
  algorithms: [incremental]
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "divide-and-conquer", cfg.Algorithm)
	assert.Equal(t, 200, cfg.Points)
	assert.Equal(t, [2]float64{-10, 10}, cfg.Range.X)
	assert.Equal(t, [2]float64{0, 10000}, cfg.Range.Y, "untouched key keeps default")
	assert.Equal(t, 7, cfg.Benchmark.Runs)
	assert.Equal(t, 5, cfg.Benchmark.Step)
	assert.Equal(t, []string{"incremental"}, cfg.Benchmark.Algorithms)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown algorithm": "algorithm: quickhull\n",
		"negative points":   "points: -1\n",
		"reversed range":    "range:\n  y: [5, 1]\n",
		"bad bench algo":    "benchmark:\n  algorithms: [nope]\n",
		"zero step":         "benchmark:\n  step: 0\n",
		"huge padding":      "image:\n  padding: 600\n",
		"not yaml":          "points: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
