// internal/simulation/batch.go
//
// Bulk self-play benchmarking: run one independent Simulation per dictionary
// word across a bounded worker pool and aggregate the round counts. Each
// simulation owns its Game/Filter/LetterStats, so workers share nothing and
// only report completed (word, rounds) results.

package simulation

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wardle/solver/internal/words"
)

// Result is one finished self-play: the secret and the rounds it took.
// Err is set when the solver hit a contradiction for that word.
type Result struct {
	Word   words.Word
	Rounds int
	Err    error
}

// Runner benchmarks the solver over every word of a dictionary.
type Runner struct {
	Dict    words.Dictionary
	Workers int // defaults to GOMAXPROCS when <= 0
}

// Run solves every dictionary word and returns one Result per word, in
// dictionary order. The context cancels outstanding work early.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(r.Dict))
	var next sync.Mutex
	idx := 0

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				next.Lock()
				i := idx
				idx++
				next.Unlock()
				if i >= len(r.Dict) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				secret := r.Dict[i]
				rounds, err := New(secret, r.Dict).Run()
				results[i] = Result{Word: secret, Rounds: len(rounds), Err: err}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates a benchmark run.
type Summary struct {
	Words     int         `json:"words"`
	Failures  int         `json:"failures"`
	MeanRound float64     `json:"meanRounds"`
	MaxRound  int         `json:"maxRounds"`
	Histogram map[int]int `json:"histogram"` // rounds -> word count
}

// Summarize folds per-word results into a Summary. Contradictions count as
// failures and are excluded from the round statistics.
func Summarize(results []Result) Summary {
	sum := Summary{Histogram: make(map[int]int)}
	total := 0
	for _, res := range results {
		sum.Words++
		if res.Err != nil {
			sum.Failures++
			continue
		}
		sum.Histogram[res.Rounds]++
		total += res.Rounds
		if res.Rounds > sum.MaxRound {
			sum.MaxRound = res.Rounds
		}
	}
	if solved := sum.Words - sum.Failures; solved > 0 {
		sum.MeanRound = float64(total) / float64(solved)
	}
	return sum
}
