// Command mergesort sorts a file of numbers with the parallel merge sort.
//
//	mergesort [flags] <in> <out> [K]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"GoMergeSort/MergeSort"
	"GoMergeSort/MergeSort/fork_join"
	"GoMergeSort/internal/logging"
	"GoMergeSort/internal/records"
	"GoMergeSort/metrics"
)

const usage = `Usage: %s [flags] <in> <out> [K]
    where:
      in  -- Input file. The first value is the number of values that
             follow. Each following value is a single number, integer or
             floating point, separated by whitespace or newlines.
      out -- Output file, one value per line with six decimals.
      K   -- Maximum number of simultaneous sort tasks (defaults to %d).

`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := NewOptions()
	fs := pflag.NewFlagSet("mergesort", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	// Flags stop at the first positional, so a negative K is not read as a flag.
	fs.SetInterspersed(false)
	opts.AddFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, usage, "mergesort", DefaultK)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if err := opts.Complete(fs.Args()); err != nil {
		fs.Usage()
		return 1
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logging.SetVerbosity(opts.LogVerbosity)
	logger, err := logging.NewLogger(opts.Development)
	if err != nil {
		fmt.Fprintln(stderr, "building logger:", err)
		return 1
	}
	logger = logger.WithName("mergesort")

	if err := sortFile(logger, opts, stdout); err != nil {
		logger.Error(err, "Sort failed", "in", opts.Input, "out", opts.Output)
		return 1
	}
	return 0
}

// sortFile opens both files before looking at K, so the output file exists
// even when K is rejected.
func sortFile(logger logr.Logger, opts *Options, stdout io.Writer) (err error) {
	in, inErr := os.Open(opts.Input)
	out, outErr := os.Create(opts.Output)
	if in != nil {
		defer multierr.AppendInvoke(&err, multierr.Close(in))
	}
	if out != nil {
		defer multierr.AppendInvoke(&err, multierr.Close(out))
	}
	if err := multierr.Combine(inErr, outErr); err != nil {
		return err
	}

	if opts.K <= 0 {
		fmt.Fprintln(stdout, "K should be > 0")
		return nil
	}

	values, err := records.Read(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	reg := prometheus.NewRegistry()
	var stats fork_join.Stats
	start := time.Now()
	err = MergeSort.SortFunc(values, MergeSort.CompareFloat64, opts.K,
		MergeSort.WithLogger(logger),
		MergeSort.WithObserver(metrics.NewCollector(reg)),
		MergeSort.WithStats(&stats),
	)
	if err != nil {
		return fmt.Errorf("sorting: %w", err)
	}
	logger.Info("Sorted", "n", len(values), "k", opts.K, "elapsed", time.Since(start),
		"forked", stats.Forked, "inline", stats.Inline, "peak", stats.Peak)

	if opts.Verify && !MergeSort.IsSortedFunc(values, MergeSort.CompareFloat64) {
		return errors.New("output is not sorted")
	}

	if err := records.Write(out, values); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}

	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
