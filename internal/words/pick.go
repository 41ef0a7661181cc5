// internal/words/pick.go
//
// Target word selection: uniform random draws or a deterministic daily pick.

package words

import (
	"crypto/rand"
	mrand "math/rand"
	"time"

	"github.com/robalobadob/tusmo/internal/daily"
)

// PickRandom returns a uniformly chosen word. Draws are independent, so the
// same word may come up in consecutive rounds. l must not be empty.
func PickRandom(l WordList, r *mrand.Rand) string {
	return l[r.Intn(len(l))]
}

// PickDaily returns the word of the day for date. l must not be empty.
func PickDaily(l WordList, salt string, date time.Time) string {
	w, _ := daily.Calendar{Salt: salt}.Word(l, date)
	return w
}

// RandomSource hands out a random target for each new round.
type RandomSource struct {
	list WordList
	rng  *mrand.Rand
}

// NewRandomSource builds a RandomSource over l. A nil r draws from crypto/rand.
// An empty l returns ErrEmptySource.
func NewRandomSource(l WordList, r *mrand.Rand) (*RandomSource, error) {
	if len(l) == 0 {
		return nil, ErrEmptySource
	}
	if r == nil {
		r = mrand.New(cryptoSource{})
	}
	return &RandomSource{list: l, rng: r}, nil
}

// Pick returns the next target word.
func (s *RandomSource) Pick() string { return PickRandom(s.list, s.rng) }

// DailySource returns the same target for every round started on a given UTC day.
// List must not be empty.
type DailySource struct {
	List WordList
	Salt string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Pick returns today's target word.
func (s *DailySource) Pick() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return PickDaily(s.List, s.Salt, now())
}

// cryptoSource is a math/rand Source backed by crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Int63() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(buf[0]) |
		int64(buf[1])<<8 |
		int64(buf[2])<<16 |
		int64(buf[3])<<24 |
		int64(buf[4])<<32 |
		int64(buf[5])<<40 |
		int64(buf[6])<<48 |
		int64(buf[7]&0x7f)<<56
}

func (cryptoSource) Seed(int64) {}
