package MergeSort

import (
	"time"

	"github.com/go-logr/logr"

	"GoMergeSort/MergeSort/fork_join"
)

// Observer receives a summary of every sort that completed without error.
type Observer interface {
	ObserveSort(n int, stats fork_join.Stats, elapsed time.Duration)
}

type config struct {
	logger   logr.Logger
	observer Observer
	stats    *fork_join.Stats
}

// Option configures a single sort call.
type Option func(*config)

func buildConfig(opts []Option) config {
	c := config{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger sets the logger used for task tracing. Forks and joins are
// logged at V(1), every recursion level at V(2).
func WithLogger(logger logr.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithObserver registers an observer notified when the sort completes.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithStats stores the final pool statistics in s when the sort returns,
// whether or not it succeeded.
func WithStats(s *fork_join.Stats) Option {
	return func(c *config) { c.stats = s }
}
