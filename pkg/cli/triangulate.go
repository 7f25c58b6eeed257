package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/pointgen"
	"github.com/0x0FACED/go-delaunay/pkg/pointio"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// площадь треугольников сравнивается с площадью оболочки с этой точностью
const coverageTolerance = 1e-9

type TriangulateOptions struct {
	Algorithm  string
	Points     int
	XMin, XMax float64
	YMin, YMax float64
	Seed       int64
	Grid       bool
	Input      string
	Out        string
	Print      bool
	Check      bool
	Imgcat     bool
}

// NewTriangulateCommand creates the triangulate command.
func NewTriangulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TriangulateOptions{}

	cmd := &cobra.Command{
		Use:   "triangulate",
		Short: "Triangulate random, grid or file points and render the result",
		Long: `Triangulate a point set and save the picture.

Points come from --input (text "x y" per line, or an .svg file) or are
generated in the configured range, randomly or on a grid. The output
format follows the --out extension: png, jpg, gif, svg or html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriangulate(rootOpts, opts, cmd)
		},
	}

	defaults := config.Default()
	f := cmd.Flags()
	f.StringVarP(&opts.Algorithm, "algorithm", "a", defaults.Algorithm, "brute-force|incremental|divide-and-conquer")
	f.IntVarP(&opts.Points, "points", "n", defaults.Points, "number of generated points")
	f.Float64Var(&opts.XMin, "x-min", defaults.Range.X[0], "generated points: min x")
	f.Float64Var(&opts.XMax, "x-max", defaults.Range.X[1], "generated points: max x")
	f.Float64Var(&opts.YMin, "y-min", defaults.Range.Y[0], "generated points: min y")
	f.Float64Var(&opts.YMax, "y-max", defaults.Range.Y[1], "generated points: max y")
	f.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 for a time based one")
	f.BoolVar(&opts.Grid, "grid", false, "place points on a grid instead of randomly")
	f.StringVar(&opts.Input, "input", "", "read points from a text or .svg file")
	f.StringVar(&opts.Out, "out", "", "output image (default out/delaunay_<timestamp>_<name>.png)")
	f.BoolVar(&opts.Print, "print", false, "print triangles to stdout")
	f.BoolVar(&opts.Check, "check", false, "verify the result and fail if it is not a Delaunay triangulation")
	f.BoolVar(&opts.Imgcat, "imgcat", false, "show the png in the terminal (iTerm)")

	return cmd
}

// apply переносит явно заданные флаги поверх конфига
func (o *TriangulateOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("algorithm") {
		cfg.Algorithm = o.Algorithm
	}
	if flags.Changed("points") {
		cfg.Points = o.Points
	}
	if flags.Changed("seed") {
		cfg.Seed = o.Seed
	}
	if flags.Changed("x-min") {
		cfg.Range.X[0] = o.XMin
	}
	if flags.Changed("x-max") {
		cfg.Range.X[1] = o.XMax
	}
	if flags.Changed("y-min") {
		cfg.Range.Y[0] = o.YMin
	}
	if flags.Changed("y-max") {
		cfg.Range.Y[1] = o.YMax
	}
}

func runTriangulate(rootOpts *RootOptions, opts *TriangulateOptions, cmd *cobra.Command) error {
	cfg, log, err := rootOpts.setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	alg, err := delaunay.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	var pts []delaunay.Point
	switch {
	case opts.Input != "":
		if pts, err = pointio.ReadFile(opts.Input); err != nil {
			return err
		}
		log.Info("[cli] Точки прочитаны", zap.String("file", opts.Input), zap.Int("points", len(pts)))
	case opts.Grid:
		pts = pointgen.Grid(cfg.Points, cfg.Range.Points())
	default:
		pts = pointgen.Random(newRand(cfg.Seed), cfg.Points, cfg.Range.Points())
	}

	tris := delaunay.Triangulate(pts, alg, log)

	out := cmd.OutOrStdout()
	if opts.Print {
		// полный перебор отдает треугольники в порядке перебора
		delaunay.SortTriangles(tris)
		if err := pointio.WriteTriangles(out, tris); err != nil {
			return errors.Wrap(err, "print triangles")
		}
	}

	path := opts.Out
	if path == "" {
		path = defaultOutput(cfg.OutputDir, "delaunay", "png")
	}
	ropts := render.Options{
		Width:   cfg.Image.Width,
		Height:  cfg.Image.Height,
		Padding: cfg.Image.Padding,
		Title:   fmt.Sprintf("%s (%s)", render.DefaultOptions().Title, alg),
	}
	if err := render.Save(path, pts, tris, ropts); err != nil {
		return err
	}
	log.Info("[cli] Изображение сохранено", zap.String("file", path), zap.Int("triangles", len(tris)))

	if opts.Imgcat {
		if err := showImage(path, os.Stdout, isTerminal(os.Stdout.Fd()), log); err != nil {
			return err
		}
	}

	if opts.Check {
		return checkResult(out, pts, tris)
	}
	return nil
}

// showImage печатает png в терминал iTerm. Не png и не терминал - только
// предупреждение в лог.
func showImage(path string, w io.Writer, tty bool, log *logger.ZapLogger) error {
	switch {
	case strings.ToLower(filepath.Ext(path)) != ".png":
		log.Warn("[cli] imgcat умеет только png", zap.String("file", path))
	case !tty:
		log.Warn("[cli] stdout не терминал, imgcat пропущен")
	default:
		if err := imgcat.CatFile(path, w); err != nil {
			return errors.Wrapf(err, "imgcat %s", path)
		}
	}
	return nil
}

func checkResult(w io.Writer, pts []delaunay.Point, tris []delaunay.Triangle) error {
	r := delaunay.Check(pts, tris)
	fmt.Fprintf(w, "triangles: %d\nviolations: %d\ndegenerate: %d\narea: %g\nhull area: %g\n",
		r.Triangles, len(r.Violations), r.Degenerate, r.Area, r.HullArea)
	if !r.Valid(coverageTolerance) {
		return errors.Errorf("not a Delaunay triangulation: %d violations, %d degenerate, area %g of hull %g",
			len(r.Violations), r.Degenerate, r.Area, r.HullArea)
	}
	return nil
}
