// Package bench times the triangulation algorithms over growing point counts.
package bench

import (
	"context"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/pointgen"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Benchmark struct {
	Algorithms []delaunay.Algorithm
	Start      int
	End        int
	Step       int
	Runs       int
	Range      pointgen.Range

	Rand   *rand.Rand
	Logger *logger.ZapLogger
}

type Result struct {
	PointCounts []int
	// среднее время на каждое количество точек, в порядке PointCounts
	Times map[delaunay.Algorithm][]time.Duration
	// порядок алгоритмов для вывода
	Algorithms []delaunay.Algorithm
}

func (b *Benchmark) validate() error {
	switch {
	case len(b.Algorithms) == 0:
		return errors.New("no algorithms to benchmark")
	case b.Start < 0 || b.End < b.Start:
		return errors.Errorf("invalid point range %d..%d", b.Start, b.End)
	case b.Step <= 0:
		return errors.Errorf("step must be positive, got %d", b.Step)
	case b.Runs <= 0:
		return errors.Errorf("runs must be positive, got %d", b.Runs)
	}
	return nil
}

// Run на каждом шаге генерирует Runs наборов случайных точек и гоняет на
// каждом наборе все алгоритмы. Отмена ctx проверяется между запусками.
func (b *Benchmark) Run(ctx context.Context) (*Result, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	log := b.Logger
	if log == nil {
		log = logger.NewNop()
	}
	rng := b.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	res := &Result{
		Times:      make(map[delaunay.Algorithm][]time.Duration, len(b.Algorithms)),
		Algorithms: b.Algorithms,
	}

	log.Info("[bench] Бенчмарк запущен", zap.Int("start", b.Start), zap.Int("end", b.End),
		zap.Int("step", b.Step), zap.Int("runs", b.Runs), zap.Any("algorithms", names(b.Algorithms)))

	for n := b.Start; n <= b.End; n += b.Step {
		total := make(map[delaunay.Algorithm]time.Duration, len(b.Algorithms))
		for run := 0; run < b.Runs; run++ {
			pts := pointgen.Random(rng, n, b.Range)
			for _, alg := range b.Algorithms {
				if err := ctx.Err(); err != nil {
					return nil, errors.Wrap(err, "benchmark interrupted")
				}
				// свежая триангуляция на каждый запуск, логи алгоритма не нужны
				tr := delaunay.New(pts, nil)
				started := time.Now()
				tr.Run(alg)
				total[alg] += time.Since(started)
			}
		}

		res.PointCounts = append(res.PointCounts, n)
		for _, alg := range b.Algorithms {
			avg := total[alg] / time.Duration(b.Runs)
			res.Times[alg] = append(res.Times[alg], avg)
			log.Info("[bench] Шаг завершен", zap.Int("points", n), zap.Stringer("algorithm", alg), zap.Duration("avg", avg))
		}
	}

	log.Info("[bench] Бенчмарк завершен")
	return res, nil
}

func names(algs []delaunay.Algorithm) []string {
	out := make([]string, len(algs))
	for i, a := range algs {
		out[i] = a.String()
	}
	return out
}

// Chart - график среднего времени (секунды) от количества точек
func (r *Result) Chart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "600px",
			Width:  "1200px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Сравнение времени работы алгоритмов триангуляции Делоне",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Right: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Количество точек"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Среднее время, с", Type: "value"}),
	)

	x := make([]string, len(r.PointCounts))
	for i, n := range r.PointCounts {
		x[i] = strconv.Itoa(n)
	}
	line.SetXAxis(x)

	for _, alg := range r.Algorithms {
		data := make([]opts.LineData, 0, len(r.Times[alg]))
		for _, d := range r.Times[alg] {
			data = append(data, opts.LineData{Value: d.Seconds()})
		}
		line.AddSeries(alg.String(), data)
	}
	return line
}

func (r *Result) Render(w io.Writer) error {
	return r.Chart().Render(w)
}

func (r *Result) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create benchmark chart")
	}
	if err := r.Render(f); err != nil {
		f.Close()
		return errors.Wrap(err, "render benchmark chart")
	}
	return errors.Wrap(f.Close(), "close benchmark chart")
}
