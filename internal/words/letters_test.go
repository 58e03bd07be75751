package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetter(t *testing.T) {
	t.Parallel()
	for r := 'a'; r <= 'z'; r++ {
		l, err := ParseLetter(r)
		require.NoError(t, err)
		assert.Equal(t, r, l.Rune())
	}
	for _, r := range []rune{'A', 'Z', '0', ' ', 'é', '-'} {
		_, err := ParseLetter(r)
		require.Error(t, err, "rune %q", r)
	}
}

func TestLetterSetOps(t *testing.T) {
	t.Parallel()
	var s LetterSet
	a, b := MustLetter('a'), MustLetter('b')

	require.True(t, s.Insert(a))
	require.False(t, s.Insert(a), "second insert must report no change")
	require.True(t, s.Contains(a))
	require.False(t, s.Contains(b))

	require.True(t, s.Remove(a))
	require.False(t, s.Remove(a), "second remove must report no change")
	require.Equal(t, EmptySet, s)
}

func TestLetterSetIntersectInverse(t *testing.T) {
	t.Parallel()
	ab := SetOf(MustLetter('a'), MustLetter('b'))
	bc := SetOf(MustLetter('b'), MustLetter('c'))

	assert.Equal(t, SetOf(MustLetter('b')), ab.Intersect(bc))
	assert.Equal(t, FullSet, EmptySet.Inverse())
	assert.Equal(t, 24, ab.Inverse().Len())
	assert.Equal(t, FullSet, ab.Intersect(FullSet)|ab.Inverse())
}

func TestLetterSetIterationAscendingAndRestartable(t *testing.T) {
	t.Parallel()
	s := SetOf(MustLetter('z'), MustLetter('a'), MustLetter('m'))

	collect := func() []Letter {
		var out []Letter
		for l := range s.Letters() {
			out = append(out, l)
		}
		return out
	}

	want := []Letter{MustLetter('a'), MustLetter('m'), MustLetter('z')}
	require.Equal(t, want, collect())
	// iterating again starts fresh from the stored mask
	require.Equal(t, want, collect())

	// early break must not corrupt later iterations
	for range s.Letters() {
		break
	}
	require.Equal(t, want, collect())
}

func TestFullSetHasNoSpareBits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 26, FullSet.Len())
	n := 0
	for range FullSet.Letters() {
		n++
	}
	assert.Equal(t, 26, n)
}
