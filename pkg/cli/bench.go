package cli

import (
	"os"

	"github.com/0x0FACED/go-delaunay/pkg/bench"
	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type BenchOptions struct {
	Start      int
	End        int
	Step       int
	Runs       int
	Algorithms []string
	Seed       int64
	Out        string
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the running time of the algorithms",
		Long: `Time every selected algorithm on the same random point sets for point
counts from --start to --end. Prints a summary table and saves an HTML
line chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rootOpts, opts, cmd)
		},
	}

	defaults := config.Default().Benchmark
	f := cmd.Flags()
	f.IntVar(&opts.Start, "start", defaults.Start, "first point count")
	f.IntVar(&opts.End, "end", defaults.End, "last point count")
	f.IntVar(&opts.Step, "step", defaults.Step, "point count increment")
	f.IntVar(&opts.Runs, "runs", defaults.Runs, "runs averaged per point count")
	f.StringSliceVar(&opts.Algorithms, "algorithms", defaults.Algorithms, "algorithms to compare")
	f.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 for a time based one")
	f.StringVar(&opts.Out, "out", "", "HTML chart (default out/benchmark_<timestamp>_<name>.html)")

	return cmd
}

func runBench(rootOpts *RootOptions, opts *BenchOptions, cmd *cobra.Command) error {
	cfg, log, err := rootOpts.setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	flags := cmd.Flags()
	b := &cfg.Benchmark
	if flags.Changed("start") {
		b.Start = opts.Start
	}
	if flags.Changed("end") {
		b.End = opts.End
	}
	if flags.Changed("step") {
		b.Step = opts.Step
	}
	if flags.Changed("runs") {
		b.Runs = opts.Runs
	}
	if flags.Changed("algorithms") {
		b.Algorithms = opts.Algorithms
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	algs, err := cfg.BenchmarkAlgorithms()
	if err != nil {
		return err
	}

	res, err := (&bench.Benchmark{
		Algorithms: algs,
		Start:      b.Start,
		End:        b.End,
		Step:       b.Step,
		Runs:       b.Runs,
		Range:      cfg.Range.Points(),
		Rand:       newRand(cfg.Seed),
		Logger:     log,
	}).Run(cmd.Context())
	if err != nil {
		return err
	}

	// цвета только в терминал, в тестах и при перенаправлении - plain text
	f, ok := cmd.OutOrStdout().(*os.File)
	au := aurora.NewAurora(ok && isTerminal(f.Fd()))
	if err := res.WriteTable(cmd.OutOrStdout(), au); err != nil {
		return errors.Wrap(err, "print table")
	}

	path := opts.Out
	if path == "" {
		path = defaultOutput(cfg.OutputDir, "benchmark", "html")
	}
	if err := res.Save(path); err != nil {
		return err
	}
	log.Info("[cli] График сохранен", zap.String("file", path))
	return nil
}
