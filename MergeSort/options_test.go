package MergeSort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"GoMergeSort/MergeSort/fork_join"
	"GoMergeSort/internal/logging/logtest"
)

func TestBuildConfigDefaults(t *testing.T) {
	c := buildConfig(nil)
	assert.False(t, c.logger.V(1).Enabled())
	assert.Nil(t, c.observer)
	assert.Nil(t, c.stats)
}

func TestSortWithTraceLogger(t *testing.T) {
	src := makeRandomInts(300)
	var stats fork_join.Stats
	require.NoError(t, Sort(src, 3, WithLogger(logtest.New(t)), WithStats(&stats)))
	assert.True(t, IsSorted(src))
	assert.LessOrEqual(t, stats.Peak, 3)
	assert.Equal(t, stats.Forked, stats.Joined)
}

// Top-level sorts share nothing, each one gets its own budget.
func TestConcurrentSorts(t *testing.T) {
	var g errgroup.Group
	inputs := make([][]int, 8)
	for i := range inputs {
		inputs[i] = makeRandomInts(20000 + i)
	}
	for i := range inputs {
		a := inputs[i]
		g.Go(func() error {
			var stats fork_join.Stats
			if err := Sort(a, 4, WithStats(&stats)); err != nil {
				return err
			}
			assert.LessOrEqual(t, stats.Peak, 4)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, a := range inputs {
		assert.True(t, IsSorted(a))
	}
}
