// Package config loads the YAML configuration shared by the CLI commands.
package config

import (
	"os"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/pointgen"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Algorithm string  `yaml:"algorithm"`
	Points    int     `yaml:"points"`
	Seed      int64   `yaml:"seed"`
	Range     Range   `yaml:"range"`
	OutputDir string  `yaml:"output_dir"`
	Image     Image   `yaml:"image"`
	Server    Server  `yaml:"server"`
	Benchmark Bench   `yaml:"benchmark"`
	Log       Logging `yaml:"log"`
}

type Range struct {
	X [2]float64 `yaml:"x"`
	Y [2]float64 `yaml:"y"`
}

func (r Range) Points() pointgen.Range {
	return pointgen.Range{MinX: r.X[0], MaxX: r.X[1], MinY: r.Y[0], MaxY: r.Y[1]}
}

type Image struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Padding int `yaml:"padding"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Bench struct {
	Start      int      `yaml:"start"`
	End        int      `yaml:"end"`
	Step       int      `yaml:"step"`
	Runs       int      `yaml:"runs"`
	Algorithms []string `yaml:"algorithms"`
}

type Logging struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Algorithm: delaunay.Incremental.String(),
		Points:    50,
		Range: Range{
			X: [2]float64{0, 10000},
			Y: [2]float64{0, 10000},
		},
		OutputDir: "out",
		Image:     Image{Width: 1000, Height: 1000, Padding: 20},
		Server:    Server{Addr: ":8080"},
		Benchmark: Bench{
			Start: 5,
			End:   50,
			Step:  5,
			Runs:  3,
			Algorithms: []string{
				delaunay.BruteForce.String(),
				delaunay.Incremental.String(),
				delaunay.DivideAndConquer.String(),
			},
		},
		Log: Logging{Level: "info"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := delaunay.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	for _, name := range c.Benchmark.Algorithms {
		if _, err := delaunay.ParseAlgorithm(name); err != nil {
			return errors.Wrap(err, "benchmark")
		}
	}

	switch {
	case c.Points < 0:
		return errors.Errorf("points must not be negative, got %d", c.Points)
	case c.Range.X[0] > c.Range.X[1]:
		return errors.Errorf("x range %v is reversed", c.Range.X)
	case c.Range.Y[0] > c.Range.Y[1]:
		return errors.Errorf("y range %v is reversed", c.Range.Y)
	case c.Image.Width <= 0 || c.Image.Height <= 0:
		return errors.Errorf("image size %dx%d must be positive", c.Image.Width, c.Image.Height)
	case c.Image.Padding < 0 || 2*c.Image.Padding >= c.Image.Width || 2*c.Image.Padding >= c.Image.Height:
		return errors.Errorf("image padding %d does not fit %dx%d", c.Image.Padding, c.Image.Width, c.Image.Height)
	case c.Benchmark.Step <= 0:
		return errors.Errorf("benchmark step must be positive, got %d", c.Benchmark.Step)
	case c.Benchmark.Runs <= 0:
		return errors.Errorf("benchmark runs must be positive, got %d", c.Benchmark.Runs)
	case c.Benchmark.Start < 0 || c.Benchmark.End < c.Benchmark.Start:
		return errors.Errorf("benchmark range %d..%d is invalid", c.Benchmark.Start, c.Benchmark.End)
	}
	return nil
}

// BenchmarkAlgorithms parses the configured names. Validate has already
// rejected unknown ones.
func (c Config) BenchmarkAlgorithms() ([]delaunay.Algorithm, error) {
	algs := make([]delaunay.Algorithm, 0, len(c.Benchmark.Algorithms))
	for _, name := range c.Benchmark.Algorithms {
		alg, err := delaunay.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
