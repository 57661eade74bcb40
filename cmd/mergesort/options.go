package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"GoMergeSort/internal/logging"
)

// DefaultK is the task budget used when none is given on the command line.
const DefaultK = 10

// Options contains the command-line configuration of the mergesort command.
type Options struct {
	Input  string // input record file
	Output string // output record file
	K      int    // maximum number of simultaneous sort tasks

	LogVerbosity int    // logr verbosity
	Development  bool   // human readable zap output
	MetricsFile  string // Prometheus textfile written after the sort
	Verify       bool   // check the result before writing it
}

var errUsage = errors.New("expected <in> <out> [K]")

// NewOptions returns Options initialized with default values.
func NewOptions() *Options {
	return &Options{
		K:            DefaultK,
		LogVerbosity: logging.DEFAULT,
	}
}

// AddFlags binds the Options fields to command-line flags on fs.
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&opts.LogVerbosity, "v", "v", opts.LogVerbosity,
		"Number for the log level verbosity. 1 traces task forks and joins, 2 every recursion level.")
	fs.BoolVar(&opts.Development, "development", opts.Development,
		"Use human readable log output.")
	fs.StringVar(&opts.MetricsFile, "metrics-file", opts.MetricsFile,
		"Write sort metrics in Prometheus text format to this file.")
	fs.BoolVar(&opts.Verify, "verify", opts.Verify,
		"Check that the output is sorted before writing it.")
}

// Complete fills the positional arguments <in> <out> [K].
func (opts *Options) Complete(args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	opts.Input = args[0]
	opts.Output = args[1]
	if len(args) > 2 {
		opts.K = parseK(args[2])
	}
	return nil
}

// Validate checks the Options for invalid values. K <= 0 is not an error
// here; the command reports it and exits successfully.
func (opts *Options) Validate() error {
	if opts.LogVerbosity < 0 {
		return errors.New("verbosity must be >= 0")
	}
	if opts.LogVerbosity > logging.MaxVerbosity {
		return fmt.Errorf("verbosity must be <= %d", logging.MaxVerbosity)
	}
	return nil
}

// parseK reads the leading integer of s the way strtol does: surrounding
// garbage is ignored, no digits yields 0 and overflow saturates.
func parseK(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	k, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return int(k)
}
