// internal/words/dict.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Load the candidate dictionary from an environment-provided file or fall
//     back to the embedded default list.
//   - Parse every token into a Word; a malformed entry is a load-time error,
//     never a runtime one.
//
// The dictionary is an explicit value handed to game construction, not a
// package-level singleton, so callers control its lifecycle.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   (one 5-letter lowercase word per token)

package words

import (
	"fmt"
	"os"
	"strings"

	"github.com/wardle/solver/assets"
)

// Dictionary is the full candidate word list, loaded once at startup.
type Dictionary []Word

// LoadDictionary reads the word list named by the WORDS_FILE environment
// variable, or the embedded default when unset. Every token must parse.
func LoadDictionary() (Dictionary, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return ParseDictionary(strings.Fields(string(raw)))
	}
	tokens, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	return ParseDictionary(tokens)
}

// ParseDictionary converts whitespace-split tokens into Words.
// Fails on the first malformed entry, and on an empty list: a solver with no
// candidates has nothing to suggest, and the daily-word pick needs at least
// one word to index.
func ParseDictionary(tokens []string) (Dictionary, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty word list")
	}
	dict := make(Dictionary, 0, len(tokens))
	for i, tok := range tokens {
		w, err := ParseWord(tok)
		if err != nil {
			return nil, fmt.Errorf("dictionary entry %d: %w", i+1, err)
		}
		dict = append(dict, w)
	}
	return dict, nil
}

// Contains reports whether w is in the dictionary.
func (d Dictionary) Contains(w Word) bool {
	for _, dw := range d {
		if dw == w {
			return true
		}
	}
	return false
}
