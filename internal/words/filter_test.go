package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The "ready" fixture: feedback [yellow, black, yellow, green, black] must
// produce exactly these per-position masks and minimum counts.
func restrictReady() Filter {
	f := NewFilter()
	f.Restrict(MustWord("ready"), FeedbackRow{Yellow, Black, Yellow, Green, Black})
	return f
}

func TestRestrictReadyFixture(t *testing.T) {
	t.Parallel()
	f := restrictReady()

	r, e, a, d, y := MustLetter('r'), MustLetter('e'), MustLetter('a'), MustLetter('d'), MustLetter('y')
	assert.Equal(t, SetOf(r, e, y).Inverse(), f.Mask(0))
	assert.Equal(t, SetOf(e, y).Inverse(), f.Mask(1))
	assert.Equal(t, SetOf(e, a, y).Inverse(), f.Mask(2))
	assert.Equal(t, SetOf(d), f.Mask(3))
	assert.Equal(t, SetOf(e, y).Inverse(), f.Mask(4))

	for l := Letter(0); l < 26; l++ {
		want := uint8(0)
		if l == r || l == a || l == d {
			want = 1
		}
		assert.Equal(t, want, f.MinCount(l), "min count of %s", l)
	}

	for _, w := range []string{"cardi", "bards"} {
		assert.True(t, MustWord(w).Matches(&f), w)
	}
	for _, w := range []string{"ready", "split", "bough"} {
		assert.False(t, MustWord(w).Matches(&f), w)
	}
}

func TestRestrictIsIdempotent(t *testing.T) {
	t.Parallel()
	once := restrictReady()
	twice := restrictReady()
	twice.Restrict(MustWord("ready"), FeedbackRow{Yellow, Black, Yellow, Green, Black})
	require.Equal(t, once, twice)
}

// A repeated letter with one Black copy must only blank that copy's position:
// an earlier Yellow in the same round already accounts for one occurrence.
func TestRestrictDuplicateLetterBlack(t *testing.T) {
	t.Parallel()
	f := NewFilter()
	// "speed" against a secret with exactly one e away from both e positions
	// (e.g. "merit"): s,p black; first e yellow; second e black; d black.
	f.Restrict(MustWord("speed"), FeedbackRow{Black, Black, Yellow, Black, Black})

	e := MustLetter('e')
	assert.False(t, f.Mask(2).Contains(e), "yellow position excludes e")
	assert.False(t, f.Mask(3).Contains(e), "black duplicate position excludes e")
	assert.True(t, f.Mask(0).Contains(e), "e must stay alive elsewhere")
	assert.True(t, f.Mask(1).Contains(e))
	assert.True(t, f.Mask(4).Contains(e))
	assert.Equal(t, uint8(1), f.MinCount(e))

	// the true secret is never excluded
	assert.True(t, MustWord("merit").Matches(&f))
}

// A fully absent Black letter is removed from every position.
func TestRestrictAbsentLetter(t *testing.T) {
	t.Parallel()
	f := NewFilter()
	f.Restrict(MustWord("crane"), FeedbackRow{Black, Black, Black, Black, Black})
	for pos := 0; pos < WordLen; pos++ {
		for _, l := range []Letter{MustLetter('c'), MustLetter('r'), MustLetter('a'), MustLetter('n'), MustLetter('e')} {
			assert.False(t, f.Mask(pos).Contains(l))
		}
	}
}

// Constraints only tighten across rounds: min counts max-merge, masks shrink.
func TestRestrictAcrossRounds(t *testing.T) {
	t.Parallel()
	f := NewFilter()
	e := MustLetter('e')

	f.Restrict(MustWord("ether"), FeedbackRow{Yellow, Black, Black, Yellow, Black})
	require.Equal(t, uint8(2), f.MinCount(e))

	// a later round confirming only one e must not loosen the bound
	f.Restrict(MustWord("crane"), FeedbackRow{Black, Black, Black, Black, Green})
	require.Equal(t, uint8(2), f.MinCount(e))
	require.Equal(t, SetOf(e), f.Mask(4))
}
