// internal/daily/daily.go
//
// Deterministic daily-puzzle selection: every date maps to one dictionary
// word via HMAC(salt, YYYY-MM-DD), so a deployment picks the same secret all
// day without storing any state. The /daily endpoints use this to benchmark
// the solver against "today's" word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/wardle/solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % dictLen.
func WordIndex(date time.Time, salt string, dictLen int) int {
	if dictLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(dictLen))
}

// Word returns the dictionary word for a date.
func Word(date time.Time, salt string, dict words.Dictionary) words.Word {
	return dict[WordIndex(date, salt, len(dict))]
}
