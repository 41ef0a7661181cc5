// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load target words from a file (one per line) or the embedded default list.
//   - Normalize entries: trim surrounding whitespace, uppercase.
//   - Optional strict validation that every entry has the round's word length.
//   - Build a lookup set for optional guess validation.
//
// Constraints:
//   • An empty list is an error (ErrEmptySource).
//   • Load does not check word length; callers run Validate or Filter.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/tusmo/assets"
)

var (
	// ErrEmptySource is returned when a word list holds no usable entries.
	ErrEmptySource = errors.New("words: word list is empty")
	// ErrWordLength is the kind behind LengthError.
	ErrWordLength = errors.New("words: wrong word length")
)

// LengthError reports list entries that do not have the expected length.
type LengthError struct {
	Length int
	Words  []string
}

func (e *LengthError) Error() string {
	const maxShown = 5
	shown := e.Words
	more := ""
	if len(shown) > maxShown {
		more = fmt.Sprintf(" (+%d more)", len(shown)-maxShown)
		shown = shown[:maxShown]
	}
	return fmt.Sprintf("words: %d entries are not %d letters long: %s%s",
		len(e.Words), e.Length, strings.Join(shown, ", "), more)
}

func (e *LengthError) Unwrap() error { return ErrWordLength }

// WordList is a non-empty list of normalized (uppercase, trimmed) words.
type WordList []string

// Normalize trims whitespace and uppercases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// Load reads one word per line from path.
// Unreadable paths return a wrapped IO error; an empty result returns ErrEmptySource.
func Load(path string) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}

	list, err := FromLines(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Str("path", path).Int("words", len(list)).Msg("loaded word list")
	return list, nil
}

// LoadEmbedded returns the default list compiled into the binary.
func LoadEmbedded() (WordList, error) {
	list, err := FromLines(assets.AnswersLines())
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", "embedded").Int("words", len(list)).Msg("loaded word list")
	return list, nil
}

// FromLines normalizes raw lines into a WordList. Blank lines are skipped.
func FromLines(lines []string) (WordList, error) {
	out := make(WordList, 0, len(lines))
	for _, line := range lines {
		if w := Normalize(line); w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptySource
	}
	return out, nil
}

// Validate returns a *LengthError if any entry is not length letters long.
func (l WordList) Validate(length int) error {
	var bad []string
	for _, w := range l {
		if utf8.RuneCountInString(w) != length {
			bad = append(bad, w)
		}
	}
	if len(bad) > 0 {
		return &LengthError{Length: length, Words: bad}
	}
	return nil
}

// Filter keeps only the entries that are length letters long.
// The result may be empty; callers check before picking from it.
func (l WordList) Filter(length int) WordList {
	out := make(WordList, 0, len(l))
	for _, w := range l {
		if utf8.RuneCountInString(w) == length {
			out = append(out, w)
		}
	}
	return out
}

// Vocabulary is a lookup set of normalized words.
type Vocabulary map[string]struct{}

// Vocabulary converts the list into a lookup set.
func (l WordList) Vocabulary() Vocabulary {
	m := make(Vocabulary, len(l))
	for _, w := range l {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether w (in any case) is in the set.
func (v Vocabulary) Contains(w string) bool {
	_, ok := v[Normalize(w)]
	return ok
}
