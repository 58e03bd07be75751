// internal/words/feedback.go
//
// Feedback: the per-position result of scoring a guess against a secret,
// using the official Wordle colors.
//   - Green:  correct letter in the correct position.
//   - Yellow: letter present elsewhere in the secret, not at this position.
//   - Black:  letter absent (after duplicate-letter budgeting).
//
// A FeedbackRow pairs positionally with a Word. Rows encode to JSON as
// ["black","yellow",...] for the HTTP API and parse from the compact "byg"
// form for the CLI.

package words

import (
	"encoding/json"
	"fmt"
)

// Feedback classifies one guess position.
type Feedback uint8

const (
	Black Feedback = iota
	Yellow
	Green
)

// FeedbackRow is one round of feedback, one entry per word position.
type FeedbackRow [WordLen]Feedback

// AllGreen is the winning row.
var AllGreen = FeedbackRow{Green, Green, Green, Green, Green}

func (f Feedback) String() string {
	switch f {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "black"
	}
}

// MarshalJSON encodes the color name as a JSON string.
func (f Feedback) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts "black", "yellow", or "green".
func (f *Feedback) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "black":
		*f = Black
	case "yellow":
		*f = Yellow
	case "green":
		*f = Green
	default:
		return fmt.Errorf("invalid feedback %q", s)
	}
	return nil
}

// ParseFeedbackRow reads the compact form used on the command line:
// one of b/y/g per position, e.g. "ybygb".
func ParseFeedbackRow(s string) (FeedbackRow, error) {
	var row FeedbackRow
	if len(s) != WordLen {
		return row, fmt.Errorf("feedback %q must have %d colors", s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'b':
			row[i] = Black
		case 'y':
			row[i] = Yellow
		case 'g':
			row[i] = Green
		default:
			return row, fmt.Errorf("feedback %q: invalid color %q (want b/y/g)", s, s[i])
		}
	}
	return row, nil
}

// UnmarshalJSON rejects rows that do not carry exactly one color per
// position. Plain array decoding would zero-fill short input, which reads as
// Black and silently tightens a filter.
func (r *FeedbackRow) UnmarshalJSON(b []byte) error {
	var colors []Feedback
	if err := json.Unmarshal(b, &colors); err != nil {
		return err
	}
	if len(colors) != WordLen {
		return fmt.Errorf("feedback row has %d colors, want %d", len(colors), WordLen)
	}
	copy(r[:], colors)
	return nil
}

func (r FeedbackRow) String() string {
	out := make([]byte, WordLen)
	for i, f := range r {
		out[i] = f.String()[0]
	}
	return string(out)
}
