// internal/game/types.go
//
// Core type definitions for the Tusmo game engine.
// Defines:
//   - Mark: per-letter feedback for a guess (correct/present/absent).
//   - AttemptResult: the marked letters of one submission.
//   - KeyboardState: best-known mark per letter across a round.
//   - Status: round lifecycle (in_progress → won | lost).

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target elsewhere, within the remaining count.
//   - "absent":  letter is not in the target, or all its occurrences are used up.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// rank orders marks for keyboard precedence: correct > present > absent.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// Tile is one marked letter of a submitted guess.
type Tile struct {
	Letter rune `json:"letter"`
	Mark   Mark `json:"mark"`
}

// AttemptResult holds one tile per position of a submitted guess.
type AttemptResult []Tile

// Word returns the guessed word.
func (a AttemptResult) Word() string {
	rs := make([]rune, len(a))
	for i, t := range a {
		rs[i] = t.Letter
	}
	return string(rs)
}

// Solved reports whether every tile is correct.
func (a AttemptResult) Solved() bool {
	if len(a) == 0 {
		return false
	}
	for _, t := range a {
		if t.Mark != MarkCorrect {
			return false
		}
	}
	return true
}

// Status is the lifecycle state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether no further input is accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
