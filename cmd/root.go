// Package cmd command line of bsearch-bench
package cmd

import (
	"cmp"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	bench "github.com/Laisky/bsearch-bench"
	"github.com/Laisky/bsearch-bench/config"
	"github.com/Laisky/bsearch-bench/log"
)

const (
	defaultIntSize    = 10_000_000
	defaultStringSize = 1_000_000

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var rootCmd = newRootCmd(config.Shared)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		_ = log.Shared.Sync()
	}()

	if err := rootCmd.Execute(); err != nil {
		log.Shared.Debug("run command", zap.Error(err))
		os.Exit(1)
	}
}

// benchArgs arguments of root command
type benchArgs struct {
	IntSize    int    `mapstructure:"int-size"`
	StringSize int    `mapstructure:"string-size"`
	Seed       int64  `mapstructure:"seed"`
	Debug      bool   `mapstructure:"debug"`
	Color      string `mapstructure:"color"`
}

func (a *benchArgs) validate() error {
	if a.IntSize < 1 {
		return errors.Errorf("int-size must be at least 1, got %d", a.IntSize)
	}
	if a.StringSize < 1 {
		return errors.Errorf("string-size must be at least 1, got %d", a.StringSize)
	}

	switch a.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return errors.Errorf("color should be one of auto/always/never, got %q", a.Color)
	}

	return nil
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	args := new(benchArgs)
	cmd := &cobra.Command{
		Use:   "bsearch-bench",
		Short: "benchmark bounds-checked and unchecked binary search",
		Long: `Benchmark two binary search implementations over generated sorted arrays.

Safe reads every element by indexed access, Unsafe reads elements
by pointer arithmetic without bounds checks. Both run once on the same
int array and on the same string array, the elapsed time of each is printed.

Examples:
	$ bsearch-bench
	$ bsearch-bench --int-size 1000 --string-size 1000 --seed 42`,
		Args: NoExtraArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Unmarshal(args); err != nil {
				return err
			}

			return args.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := setupLogger(args); err != nil {
				return err
			}

			cmd.SilenceUsage = true
			return runBenchmark(cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().Int("int-size", defaultIntSize, "number of integers in the array")
	cmd.Flags().Int("string-size", defaultStringSize, "number of strings in the array")
	cmd.Flags().Int64("seed", 0, "seed to pick search targets, 0 means random")
	cmd.Flags().String("color", colorAuto, "colorize output, auto/always/never")
	cmd.PersistentFlags().Bool("debug", false, "debug")

	return cmd
}

func setupLogger(args *benchArgs) error {
	if args.Color == colorAlways ||
		(args.Color == colorAuto && bench.IsTerminal(os.Stderr)) {
		level := log.Shared.Level()
		logger, err := log.NewConsoleWithName("bsearch", level, log.WithColor(true))
		if err != nil {
			return errors.Wrap(err, "new colorful logger")
		}

		log.Shared = logger
	}

	if args.Debug {
		if err := log.Shared.ChangeLevel(log.LevelDebug); err != nil {
			return errors.Wrap(err, "change logger level to debug")
		}
	}

	return nil
}

// colorEnabled whether to colorize the report written to out
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}

	return bench.IsTerminal(out)
}

func runBenchmark(out io.Writer, args *benchArgs) error {
	r := bench.NewRand(args.Seed)
	color := colorEnabled(args.Color, out)
	log.Shared.Debug("start benchmark",
		zap.Int("int_size", args.IntSize),
		zap.Int("string_size", args.StringSize),
		zap.Int64("seed", args.Seed),
		zap.Bool("color", color))

	startAt := time.Now()
	ints := bench.GenerateSortedInts(args.IntSize)
	log.Shared.Debug("generate int array", zap.Duration("cost", time.Since(startAt)))
	if err := benchmarkDataset(out, r, "int", ints, color); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return errors.Wrap(err, "print")
	}

	startAt = time.Now()
	strs := bench.GenerateSortedStrings(args.StringSize)
	log.Shared.Debug("generate string array", zap.Duration("cost", time.Since(startAt)))
	return benchmarkDataset(out, r, "string", strs, color)
}

func benchmarkDataset[T cmp.Ordered](out io.Writer, r *rand.Rand, label string, data []T, color bool) error {
	target, err := bench.RandomTarget(r, data)
	if err != nil {
		return errors.Wrapf(err, "pick %s target", label)
	}

	if err = bench.FprintHeader(out, label, target, len(data)); err != nil {
		return err
	}

	bench.ForceGC()

	if err = bench.Benchmark(label, data, target).Fprint(out, bench.WithColor(color)); err != nil {
		return errors.Wrapf(err, "print %s report", label)
	}

	return nil
}

// NoExtraArgs make sure every args has been processed
//
// do not allow any un processed args
func NoExtraArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errors.Errorf("unknown args `%v`", args)
	}

	return nil
}
