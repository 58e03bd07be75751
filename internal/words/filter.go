// internal/words/filter.go
//
// Filter folds rounds of guess feedback into two constraints:
//   - mask:     one allowed-letter set per position (starts full).
//   - minCount: per-letter lower bound on occurrences across the word.
//
// Over a Filter's lifetime masks only ever lose members and minimum counts
// only ever grow, so constraints tighten monotonically and re-applying the
// same round is idempotent.

package words

// Filter is the accumulated constraint state for one solving session.
// The zero value is NOT usable; construct with NewFilter.
type Filter struct {
	mask     [WordLen]LetterSet
	minCount LetterMap[uint8]
}

// NewFilter returns a filter that admits every word.
func NewFilter() Filter {
	var f Filter
	for i := range f.mask {
		f.mask[i] = FullSet
	}
	return f
}

// Mask returns the allowed-letter set for position pos.
func (f *Filter) Mask(pos int) LetterSet { return f.mask[pos] }

// MinCount returns the occurrence lower bound recorded for l.
func (f *Filter) MinCount(l Letter) uint8 { return f.minCount[l] }

// Restrict applies one round of feedback for the given guess.
//
// A round-local min-count tally is kept while walking the positions in
// order. Black consults that running tally: if an earlier Green/Yellow in
// the SAME guess already accounted for an occurrence of the letter, only
// this position is cleared (the copy is excess); otherwise the letter is
// absent entirely and is removed from every position. Getting this wrong
// blanks repeated letters too aggressively — guessing "speed" against a
// secret with a single "e" must keep "e" alive at the non-Black positions.
//
// The round tally is then max-merged into the lifetime minimums.
func (f *Filter) Restrict(guess Word, feedback FeedbackRow) {
	var round LetterMap[uint8]
	for pos, l := range guess {
		switch feedback[pos] {
		case Green:
			f.mask[pos] = SetOf(l)
			round[l]++
		case Yellow:
			f.mask[pos].Remove(l)
			round[l]++
		case Black:
			if round[l] > 0 {
				f.mask[pos].Remove(l)
			} else {
				for i := range f.mask {
					f.mask[i].Remove(l)
				}
			}
		}
	}
	for l, n := range round {
		if n > f.minCount[l] {
			f.minCount[l] = n
		}
	}
}
