// internal/simulation/simulation.go
//
// Simulation drives a Game against a known secret: it repeatedly takes the
// game's best suggestion, scores it with the official two-pass Wordle rule,
// feeds the result back, and stops after the all-green round. Used for the
// auto-fill assist flow and, in bulk, for benchmarking solver quality across
// the dictionary (see batch.go).

package simulation

import (
	"errors"
	"fmt"
	"iter"

	"github.com/wardle/solver/internal/game"
	"github.com/wardle/solver/internal/words"
)

// ErrContradiction is returned when the candidate pool empties before the
// secret is found: the secret is not in the dictionary, or the feedback
// sequence was inconsistent.
var ErrContradiction = errors.New("no candidate word remains")

// Round is one guess/feedback pair of a solve.
type Round struct {
	Guess    words.Word
	Feedback words.FeedbackRow
}

// Won reports whether this round solved the puzzle.
func (r Round) Won() bool { return r.Feedback == words.AllGreen }

// Simulation owns a Game plus the secret's letter multiset, which the scoring
// oracle consumes per round for duplicate-letter budgeting.
type Simulation struct {
	secret words.Word
	counts words.LetterMap[uint8]
	game   *game.Game
}

// New prepares a simulation of solving secret over dict.
func New(secret words.Word, dict words.Dictionary) *Simulation {
	return &Simulation{
		secret: secret,
		counts: secret.LetterCount(),
		game:   game.New(dict),
	}
}

// Secret returns the word being solved for.
func (s *Simulation) Secret() words.Word { return s.secret }

// Score computes feedback for guess against the secret using the official
// two-pass rule. Pass one marks greens and tallies the secret's unmatched
// letters; pass two upgrades blacks to yellow only while that letter still
// has remaining budget. A guess with two copies of a letter against a secret
// with one gets at most one non-black mark for it.
func (s *Simulation) Score(guess words.Word) words.FeedbackRow {
	var feedback words.FeedbackRow
	remaining := s.counts
	for i, l := range guess {
		if l == s.secret[i] {
			feedback[i] = words.Green
			remaining[l]--
		}
	}
	for i, l := range guess {
		if feedback[i] == words.Black && remaining[l] > 0 {
			feedback[i] = words.Yellow
			remaining[l]--
		}
	}
	return feedback
}

// Step plays one round: suggest, score, apply.
// Returns ErrContradiction when no suggestion remains.
func (s *Simulation) Step() (Round, error) {
	guess, ok := s.game.SuggestedWord()
	if !ok {
		return Round{}, fmt.Errorf("%w (secret %q)", ErrContradiction, s.secret)
	}
	feedback := s.Score(guess)
	s.game.ApplyFeedback(guess, feedback)
	return Round{Guess: guess, Feedback: feedback}, nil
}

// Rounds returns the lazy solve sequence, inclusive of the winning round.
// On contradiction the sequence yields the error and stops.
func (s *Simulation) Rounds() iter.Seq2[Round, error] {
	return func(yield func(Round, error) bool) {
		for {
			round, err := s.Step()
			if !yield(round, err) || err != nil || round.Won() {
				return
			}
		}
	}
}

// Run plays to completion and returns the full transcript.
func (s *Simulation) Run() ([]Round, error) {
	var rounds []Round
	for round, err := range s.Rounds() {
		if err != nil {
			return rounds, err
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}
