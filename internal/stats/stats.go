// internal/stats/stats.go
//
// LetterStats is the co-occurrence frequency table behind suggestion ranking.
// For the live candidate pool it tracks:
//   - total:       pool size.
//   - counts[x][y]: number of candidates containing both x and y; the
//                   diagonal counts[x][x] is the plain occurrence count of x.
//
// The table shrinks in lockstep with the pool: RemoveWord must be called
// exactly once per word dropped from the pool and never for a retained word.
// Game owns that discipline (stats are never mutated independently).

package stats

import "github.com/wardle/solver/internal/words"

// LetterStats holds pool-wide letter frequencies for relevance scoring.
type LetterStats struct {
	total  uint32
	counts words.LetterMap[words.LetterMap[uint32]]
}

// New builds stats over an initial candidate pool.
func New(pool []words.Word) LetterStats {
	var s LetterStats
	for _, w := range pool {
		s.total++
		letters := w.Letters()
		for x := range letters.Letters() {
			for y := range letters.Letters() {
				s.counts[x][y]++
			}
		}
	}
	return s
}

// Total returns the current pool size.
func (s *LetterStats) Total() uint32 { return s.total }

// Count returns the number of pool words containing both x and y.
func (s *LetterStats) Count(x, y words.Letter) uint32 { return s.counts[x][y] }

// RemoveWord decrements the total and every letter-pair cell touched by w.
func (s *LetterStats) RemoveWord(w words.Word) {
	s.total--
	letters := w.Letters()
	for x := range letters.Letters() {
		for y := range letters.Letters() {
			s.counts[x][y]--
		}
	}
}

// Relevance scores w against the current pool: each distinct letter
// contributes total - |count(x) - total/2|, so letters appearing in close to
// half the remaining candidates score highest (testing them splits the pool
// most evenly). Duplicate letters in w count once.
func (s *LetterStats) Relevance(w words.Word) uint32 {
	var sum uint32
	half := s.total / 2
	for x := range w.Letters().Letters() {
		sum += s.total - absDiff(s.counts[x][x], half)
	}
	return sum
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
