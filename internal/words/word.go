// internal/words/word.go
//
// Word: an exact five-letter sequence, the unit the whole solver works in.
// Parses from text, counts its letters, and reports whether it is still
// consistent with an accumulated Filter.

package words

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length; every Word holds exactly this many letters.
const WordLen = 5

// ErrMalformedWord marks dictionary entries or guesses that are not exactly
// five lowercase ASCII letters.
var ErrMalformedWord = errors.New("malformed word")

// Word is an immutable five-letter word, copyable by value.
type Word [WordLen]Letter

// ParseWord converts s into a Word.
// Fails with ErrMalformedWord on wrong length or a non-letter character.
func ParseWord(s string) (Word, error) {
	var w Word
	i := 0
	for _, r := range s {
		if i >= WordLen {
			return Word{}, fmt.Errorf("%w: %q is longer than %d letters", ErrMalformedWord, s, WordLen)
		}
		l, err := ParseLetter(r)
		if err != nil {
			return Word{}, fmt.Errorf("%w: %q", ErrMalformedWord, s)
		}
		w[i] = l
		i++
	}
	if i != WordLen {
		return Word{}, fmt.Errorf("%w: %q must have %d letters", ErrMalformedWord, s, WordLen)
	}
	return w, nil
}

// MustWord parses a trusted literal and panics on error. Test fixtures only.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	out := make([]byte, WordLen)
	for i, l := range w {
		out[i] = byte(l.Rune())
	}
	return string(out)
}

// LetterCount returns the per-letter occurrence count within the word.
func (w Word) LetterCount() LetterMap[uint8] {
	var count LetterMap[uint8]
	for _, l := range w {
		count[l]++
	}
	return count
}

// Letters returns the set of distinct letters in the word.
func (w Word) Letters() LetterSet {
	var s LetterSet
	for _, l := range w {
		s.Insert(l)
	}
	return s
}

// Matches reports whether the word is still consistent with f: every letter
// must be allowed at its position, and every letter's occurrence count must
// reach the filter's recorded minimum.
func (w Word) Matches(f *Filter) bool {
	for pos, l := range w {
		if !f.mask[pos].Contains(l) {
			return false
		}
	}
	count := w.LetterCount()
	for l, need := range f.minCount {
		if count[l] < need {
			return false
		}
	}
	return true
}
