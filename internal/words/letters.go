// internal/words/letters.go
//
// Letter-level building blocks for the solver core.
// Defines:
//   - Letter: a single symbol of the 26-letter alphabet, stored as 0..25.
//   - LetterSet: a 26-bit bitmask set with membership/insert/remove/intersect
//     and lazy ascending iteration.
//   - LetterMap[T]: a dense 26-slot array indexed by Letter, nestable to hold
//     co-occurrence tables.
//
// Everything here is a small value type; none of the operations can fail once
// a Letter has been constructed.

package words

import (
	"fmt"
	"iter"
	"math/bits"
)

// Letter is a lowercase ASCII letter encoded as an integer in [0,26).
// It is usable directly as an array index (see LetterMap).
type Letter uint8

// ParseLetter converts r to a Letter.
// Fails when r is not a lowercase ASCII letter.
func ParseLetter(r rune) (Letter, error) {
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("%w: invalid letter %q", ErrMalformedWord, r)
	}
	return Letter(r - 'a'), nil
}

// MustLetter is the trusted literal path: it panics on out-of-range input.
// Intended for compile-time constants in tests and fixtures.
func MustLetter(r rune) Letter {
	l, err := ParseLetter(r)
	if err != nil {
		panic(err)
	}
	return l
}

// Rune returns the letter as its lowercase character.
func (l Letter) Rune() rune { return rune(l) + 'a' }

func (l Letter) String() string { return string(l.Rune()) }

// LetterSet is a bitmask over the alphabet: bit i set means letter i is a
// member. Bits 26..31 are always zero.
type LetterSet uint32

const (
	// EmptySet contains no letters.
	EmptySet LetterSet = 0
	// FullSet contains all 26 letters.
	FullSet LetterSet = 0x3ffffff
)

// SetOf builds a LetterSet from the given letters.
func SetOf(letters ...Letter) LetterSet {
	var s LetterSet
	for _, l := range letters {
		s |= 1 << l
	}
	return s
}

// Contains reports whether l is a member of the set.
func (s LetterSet) Contains(l Letter) bool { return s&(1<<l) != 0 }

// Insert adds l and reports whether the set changed.
func (s *LetterSet) Insert(l Letter) bool {
	old := *s
	*s = old | 1<<l
	return *s != old
}

// Remove deletes l and reports whether the set changed.
func (s *LetterSet) Remove(l Letter) bool {
	old := *s
	*s = old &^ (1 << l)
	return *s != old
}

// Intersect returns the letters present in both sets.
func (s LetterSet) Intersect(other LetterSet) LetterSet { return s & other }

// Inverse returns the complement within the 26-letter alphabet.
func (s LetterSet) Inverse() LetterSet { return ^s & FullSet }

// Len returns the number of member letters.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Letters iterates members in ascending letter order. The sequence is lazy
// and restartable: every range over it starts fresh from the stored mask.
func (s LetterSet) Letters() iter.Seq[Letter] {
	return func(yield func(Letter) bool) {
		rest := uint32(s)
		for rest != 0 {
			next := bits.TrailingZeros32(rest)
			rest &^= 1 << next
			if !yield(Letter(next)) {
				return
			}
		}
	}
}

func (s LetterSet) String() string {
	out := make([]byte, 0, 26)
	for l := range s.Letters() {
		out = append(out, byte(l.Rune()))
	}
	return "{" + string(out) + "}"
}

// LetterMap is a dense fixed-size table with one slot per letter.
// The zero value has every slot default-initialized; index it directly with a
// Letter. Nesting (LetterMap[LetterMap[uint32]]) gives a 26×26 table.
type LetterMap[T any] [26]T
