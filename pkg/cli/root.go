// Package cli wires the triangulation packages into the delaunay command.
package cli

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command of the delaunay CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "delaunay",
		Short: "Delaunay triangulation of planar point sets",
		Long: `Builds the Delaunay triangulation of a set of points in the plane with
one of three algorithms (brute force, incremental Bowyer-Watson or
divide and conquer), renders it and compares the algorithms' running time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewTriangulateCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// setup loads the config and builds a stderr logger for a command run.
func (o *RootOptions) setup(cmd *cobra.Command) (config.Config, *logger.ZapLogger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	level := cfg.Log.Level
	if o.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:   level,
		Output:  cmd.ErrOrStderr(),
		NoColor: !isTerminal(os.Stderr.Fd()),
	})
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func init() {
	petname.NonDeterministicMode()
}

// defaultOutput - out/<prefix>_<timestamp>_<petname>.<ext>
func defaultOutput(dir, prefix, ext string) string {
	name := fmt.Sprintf("%s_%s_%s.%s", prefix, time.Now().Format("20060102-150405"), petname.Generate(2, "-"), ext)
	return filepath.Join(dir, name)
}
