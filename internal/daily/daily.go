// internal/daily/daily.go
//
// Deterministic word-of-the-day selection.
// Every player sees the same target on a given UTC date, and the mapping
// from date to word cannot be guessed without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Calendar maps UTC dates onto entries of a word list.
type Calendar struct {
	Salt string
}

// Index returns the position of date's word in a list of n words,
// HMAC-SHA256(salt, YYYY-MM-DD) mod n. Returns -1 when n <= 0.
func (c Calendar) Index(date time.Time, n int) int {
	if n <= 0 {
		return -1
	}
	mac := hmac.New(sha256.New, []byte(c.Salt))
	mac.Write([]byte(DateKey(date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)[:8]) % uint64(n))
}

// Word returns the word for date, or "" and false if list is empty.
func (c Calendar) Word(list []string, date time.Time) (string, bool) {
	i := c.Index(date, len(list))
	if i < 0 {
		return "", false
	}
	return list[i], true
}
