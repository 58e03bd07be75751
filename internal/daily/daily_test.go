package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardle/solver/internal/words"
)

func TestWordIndexDeterministic(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	sameDayLater := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	nextDay := day.Add(24 * time.Hour)

	i := WordIndex(day, "salt", 1000)
	assert.Equal(t, i, WordIndex(sameDayLater, "salt", 1000), "same date, same index")
	assert.NotEqual(t, i, WordIndex(day, "other-salt", 1000), "salt changes the schedule")

	require.GreaterOrEqual(t, i, 0)
	require.Less(t, i, 1000)
	require.Less(t, WordIndex(nextDay, "salt", 1000), 1000)

	assert.Equal(t, 0, WordIndex(day, "salt", 0), "empty dictionary degrades to 0")
}

func TestWord(t *testing.T) {
	t.Parallel()
	dict := words.Dictionary{words.MustWord("ready"), words.MustWord("speed"), words.MustWord("split")}
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	w := Word(day, "salt", dict)
	assert.Contains(t, dict, w)
	assert.Equal(t, w, Word(day, "salt", dict))
}
