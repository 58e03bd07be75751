// internal/game/game.go
//
// Game owns one solving session: the candidate pool, the accumulated Filter,
// and the LetterStats derived from the pool. The three are kept in sync by
// construction — ApplyFeedback is the only mutator, and every candidate it
// drops is paired with the matching stats decrement. Callers never observe an
// intermediate state.
//
// Suggestion queries rank candidates by stats relevance, descending, with
// ties left in pool order (deterministic across repeated calls with no
// intervening mutation, but otherwise unspecified).

package game

import (
	"sort"

	"github.com/wardle/solver/internal/stats"
	"github.com/wardle/solver/internal/words"
)

// Game is a single solver session over a fixed dictionary.
type Game struct {
	list   []words.Word
	filter words.Filter
	stats  stats.LetterStats
}

// New starts a session with the full dictionary as the candidate pool.
func New(dict words.Dictionary) *Game {
	list := make([]words.Word, len(dict))
	copy(list, dict)
	return &Game{
		list:   list,
		filter: words.NewFilter(),
		stats:  stats.New(list),
	}
}

// Words returns the current candidate pool. The slice is shared; callers must
// treat it as read-only.
func (g *Game) Words() []words.Word { return g.list }

// Filter returns a copy of the accumulated constraints, for display.
func (g *Game) Filter() words.Filter { return g.filter }

// SuggestedWord returns the single best candidate, or false when the pool is
// empty (no word is consistent with the feedback supplied so far).
func (g *Game) SuggestedWord() (words.Word, bool) {
	top := g.SuggestedWords(1)
	if len(top) == 0 {
		return words.Word{}, false
	}
	return top[0], true
}

// SuggestedWords returns up to n candidates with the highest relevance.
// Scores are recomputed fresh from the current stats on every call.
func (g *Game) SuggestedWords(n int) []words.Word {
	type scored struct {
		word  words.Word
		score uint32
	}
	ranked := make([]scored, len(g.list))
	for i, w := range g.list {
		ranked[i] = scored{word: w, score: g.stats.Relevance(w)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]words.Word, n)
	for i := range out {
		out[i] = ranked[i].word
	}
	return out
}

// ApplyFeedback folds one (guess, feedback) round into the filter, then drops
// every candidate the tightened filter excludes, decrementing stats for each.
// Returns the number of candidates remaining.
func (g *Game) ApplyFeedback(guess words.Word, feedback words.FeedbackRow) int {
	g.filter.Restrict(guess, feedback)
	kept := g.list[:0]
	for _, w := range g.list {
		if w.Matches(&g.filter) {
			kept = append(kept, w)
		} else {
			g.stats.RemoveWord(w)
		}
	}
	g.list = kept
	return len(g.list)
}
