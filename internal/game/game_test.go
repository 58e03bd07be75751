package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardle/solver/internal/words"
)

func dict(ws ...string) words.Dictionary {
	out := make(words.Dictionary, len(ws))
	for i, w := range ws {
		out[i] = words.MustWord(w)
	}
	return out
}

func TestNewCopiesDictionary(t *testing.T) {
	t.Parallel()
	d := dict("ready", "speed", "split")
	g := New(d)
	require.Len(t, g.Words(), 3)

	g.ApplyFeedback(words.MustWord("speed"), words.FeedbackRow{})
	assert.Len(t, d, 3, "dictionary must be untouched by session mutation")
}

func TestApplyFeedbackShrinksPoolAndKeepsSecret(t *testing.T) {
	t.Parallel()
	d := dict("ready", "cardi", "bards", "split", "bough")
	g := New(d)

	remaining := g.ApplyFeedback(words.MustWord("ready"),
		words.FeedbackRow{words.Yellow, words.Black, words.Yellow, words.Green, words.Black})
	require.Equal(t, 2, remaining)
	assert.Equal(t, []words.Word{words.MustWord("cardi"), words.MustWord("bards")}, g.Words())
}

func TestSuggestedWordsDeterministic(t *testing.T) {
	t.Parallel()
	g := New(dict("ready", "speed", "split", "bough", "crane"))

	first := g.SuggestedWords(3)
	require.Len(t, first, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.SuggestedWords(3), "repeated calls must agree")
	}

	all := g.SuggestedWords(100)
	assert.Len(t, all, 5, "n larger than the pool returns the whole pool")
}

func TestSuggestedWordEmptyPool(t *testing.T) {
	t.Parallel()
	g := New(dict("ready", "speed"))
	// all-black feedback for a guess sharing letters with every candidate
	g.ApplyFeedback(words.MustWord("ready"),
		words.FeedbackRow{words.Black, words.Black, words.Black, words.Black, words.Black})
	g.ApplyFeedback(words.MustWord("split"),
		words.FeedbackRow{words.Black, words.Black, words.Black, words.Black, words.Black})

	require.Empty(t, g.Words())
	_, ok := g.SuggestedWord()
	assert.False(t, ok, "empty pool signals a contradiction")
}

// Soundness: simulator-style feedback never excludes the true secret.
func TestSecretNeverExcluded(t *testing.T) {
	t.Parallel()
	d := dict("ready", "speed", "split", "bough", "crane", "bards", "cider")
	secret := words.MustWord("cider")
	g := New(d)

	for _, guess := range []string{"ready", "speed", "crane"} {
		g.ApplyFeedback(words.MustWord(guess), score(secret, words.MustWord(guess)))
		assert.Contains(t, g.Words(), secret, "after guessing %s", guess)
	}
}

// score is a minimal two-pass oracle for the soundness test.
func score(secret, guess words.Word) words.FeedbackRow {
	var row words.FeedbackRow
	remaining := secret.LetterCount()
	for i, l := range guess {
		if l == secret[i] {
			row[i] = words.Green
			remaining[l]--
		}
	}
	for i, l := range guess {
		if row[i] == words.Black && remaining[l] > 0 {
			row[i] = words.Yellow
			remaining[l]--
		}
	}
	return row
}
