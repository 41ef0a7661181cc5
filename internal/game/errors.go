package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteGuess is returned by Submit when the typed input is not
	// exactly WordLength-1 letters. The round is left unchanged.
	ErrIncompleteGuess = errors.New("incomplete guess")
	// ErrNotInWordList is returned by Submit when a vocabulary is configured
	// and the guess is not in it.
	ErrNotInWordList = errors.New("not in word list")
	// ErrInvalidState is only returned in strict mode, for calls that would
	// otherwise be silently ignored.
	ErrInvalidState = errors.New("invalid state")
	// ErrTargetLength is returned by New and NewGame when the Source hands
	// out a word of the wrong length.
	ErrTargetLength = errors.New("target word has wrong length")
)

// GuessError describes an incomplete submission.
type GuessError struct {
	WordLength int // full word length, forced first letter included
	Typed      int // free letters typed so far
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("guess must be %d letters", e.WordLength)
}

func (e *GuessError) Unwrap() error { return ErrIncompleteGuess }

// TargetError describes a target word rejected at round start.
type TargetError struct {
	WordLength int
	Got        int
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("target word has %d letters, want %d", e.Got, e.WordLength)
}

func (e *TargetError) Unwrap() error { return ErrTargetLength }
