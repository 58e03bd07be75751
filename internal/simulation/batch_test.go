package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardle/solver/internal/words"
)

func TestRunnerSolvesWholeDictionary(t *testing.T) {
	t.Parallel()
	d := dict("ready", "speed", "split", "bough", "crane", "bards", "cider", "merit", "zebra", "vouch")
	runner := &Runner{Dict: d, Workers: 4}

	results, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(d))

	for i, res := range results {
		assert.Equal(t, d[i], res.Word, "results keep dictionary order")
		require.NoError(t, res.Err, res.Word)
		assert.Greater(t, res.Rounds, 0)
		assert.LessOrEqual(t, res.Rounds, len(d))
	}

	sum := Summarize(results)
	assert.Equal(t, len(d), sum.Words)
	assert.Zero(t, sum.Failures)
	assert.Greater(t, sum.MeanRound, 0.0)
	assert.GreaterOrEqual(t, sum.MaxRound, 1)

	solved := 0
	for _, n := range sum.Histogram {
		solved += n
	}
	assert.Equal(t, len(d), solved)
}

func TestRunnerContextCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Dict: dict("ready", "speed", "split"), Workers: 2}
	_, err := runner.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarizeCountsFailures(t *testing.T) {
	t.Parallel()
	results := []Result{
		{Word: words.MustWord("ready"), Rounds: 2},
		{Word: words.MustWord("speed"), Rounds: 4},
		{Word: words.MustWord("qajaq"), Err: ErrContradiction},
	}
	sum := Summarize(results)
	assert.Equal(t, 3, sum.Words)
	assert.Equal(t, 1, sum.Failures)
	assert.Equal(t, 3.0, sum.MeanRound)
	assert.Equal(t, 4, sum.MaxRound)
	assert.Equal(t, map[int]int{2: 1, 4: 1}, sum.Histogram)
}
