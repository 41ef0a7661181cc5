// internal/game/engine.go
//
// Core game engine for a single Tusmo session.
// Responsibilities:
//   - Start rounds with a target drawn from a Source.
//   - Accept letter-by-letter input (AddLetter/Backspace) and submissions.
//   - Score submissions and keep the keyboard state current.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - The first letter of every attempt is the target's first letter. It is
//     revealed at round start and is not part of free input, so a complete
//     attempt is WordLength-1 typed letters.
//   - An Engine is not safe for concurrent use. Hosts serving several players
//     keep one Engine per player and serialize calls to it.
package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultWordLength  = 5
	defaultMaxAttempts = 6
)

// Source supplies the target word of each new round. Words must be
// uppercase and exactly Config.WordLength letters long.
type Source interface {
	Pick() string
}

// Vocabulary decides which guesses are acceptable.
type Vocabulary interface {
	Contains(word string) bool
}

// Config holds engine options. Zero values take the defaults (5 letters, 6 attempts).
type Config struct {
	WordLength  int
	MaxAttempts int

	// Strict surfaces ErrInvalidState instead of ignoring out-of-place calls.
	Strict bool
	// Vocabulary, if set, rejects unknown guesses with ErrNotInWordList.
	Vocabulary Vocabulary
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Result is what Submit hands back to the presentation layer.
type Result struct {
	Attempt  AttemptResult
	Keyboard KeyboardState
	Status   Status
}

// Engine owns the state of the current round.
type Engine struct {
	cfg    Config
	source Source
	log    zerolog.Logger

	roundID  string
	target   []rune
	attempt  int
	input    []rune
	status   Status
	keyboard KeyboardState
	history  []AttemptResult
}

// New constructs an engine and starts its first round.
func New(src Source, cfg Config) (*Engine, error) {
	if cfg.WordLength <= 0 {
		cfg.WordLength = defaultWordLength
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	l := log.Logger
	if cfg.Logger != nil {
		l = *cfg.Logger
	}
	e := &Engine{cfg: cfg, source: src, log: l}
	if _, err := e.NewGame(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewGame discards the current round and starts a new one.
// Returns the revealed first letter of the new target.
//
// A target that is not WordLength letters long is rejected with a
// *TargetError and the current round is kept as it was.
func (e *Engine) NewGame() (rune, error) {
	target := e.source.Pick()
	if n := utf8.RuneCountInString(target); n != e.cfg.WordLength {
		e.log.Error().Int("len", n).Int("want", e.cfg.WordLength).Msg("target word has wrong length")
		return 0, &TargetError{WordLength: e.cfg.WordLength, Got: n}
	}

	e.roundID = uuid.NewString()
	e.target = []rune(target)
	e.attempt = 0
	e.input = e.input[:0]
	e.status = StatusInProgress
	e.keyboard = KeyboardState{}
	e.history = nil

	e.log.Debug().Str("round", e.roundID).Str("target", target).Msg("round started")
	return e.FirstLetter(), nil
}

// AddLetter appends a letter to the current attempt. Ignored once the round
// is over or the attempt is full. The letter is expected in uppercase.
func (e *Engine) AddLetter(letter rune) error {
	if e.status != StatusInProgress || len(e.input) >= e.cfg.WordLength-1 {
		return e.ignored("add letter")
	}
	e.input = append(e.input, letter)
	return nil
}

// Backspace removes the last typed letter. Ignored once the round is over
// or when nothing is typed.
func (e *Engine) Backspace() error {
	if e.status != StatusInProgress || len(e.input) == 0 {
		return e.ignored("backspace")
	}
	e.input = e.input[:len(e.input)-1]
	return nil
}

// Submit scores the current attempt.
//
// Validation rules:
//   - Exactly WordLength-1 letters typed, else a *GuessError (ErrIncompleteGuess).
//   - If a Vocabulary is configured, the full word must be in it (ErrNotInWordList).
//
// Both failures leave the round unchanged.
//
// State transitions:
//   - Guess equals target → won.
//   - Else the attempt index advances; reaching MaxAttempts → lost.
//
// Once the round is over, Submit changes nothing and returns the final status.
func (e *Engine) Submit() (Result, error) {
	if e.status != StatusInProgress {
		return Result{Keyboard: e.keyboard.Clone(), Status: e.status}, e.ignored("submit")
	}
	if len(e.input) != e.cfg.WordLength-1 {
		return Result{}, &GuessError{WordLength: e.cfg.WordLength, Typed: len(e.input)}
	}

	guess := string(e.target[:1]) + string(e.input)
	if e.cfg.Vocabulary != nil && !e.cfg.Vocabulary.Contains(guess) {
		return Result{}, fmt.Errorf("%q: %w", guess, ErrNotInWordList)
	}

	attempt := Score(string(e.target), guess)
	e.keyboard.Merge(attempt)
	e.history = append(e.history, attempt)

	if guess == string(e.target) {
		e.status = StatusWon
	} else {
		e.attempt++
		if e.attempt >= e.cfg.MaxAttempts {
			e.status = StatusLost
		} else {
			e.input = e.input[:0]
		}
	}

	if e.status.Terminal() {
		e.log.Debug().Str("round", e.roundID).Str("status", string(e.status)).
			Int("attempts", len(e.history)).Msg("round finished")
	}
	return Result{Attempt: attempt, Keyboard: e.keyboard.Clone(), Status: e.status}, nil
}

func (e *Engine) ignored(op string) error {
	if !e.cfg.Strict {
		return nil
	}
	return fmt.Errorf("%s in %s round: %w", op, e.status, ErrInvalidState)
}

// FirstLetter is the revealed first letter of the current target.
func (e *Engine) FirstLetter() rune {
	if len(e.target) == 0 {
		return 0
	}
	return e.target[0]
}

// Status reports the round status.
func (e *Engine) Status() Status { return e.status }

// WordLength is the configured word length.
func (e *Engine) WordLength() int { return e.cfg.WordLength }

// MaxAttempts is the configured number of attempts per round.
func (e *Engine) MaxAttempts() int { return e.cfg.MaxAttempts }

// AttemptIndex is the number of failed submissions so far.
func (e *Engine) AttemptIndex() int { return e.attempt }

// AttemptsUsed is the number of submissions made this round.
func (e *Engine) AttemptsUsed() int { return len(e.history) }

// Input is the free input of the current attempt, first letter excluded.
func (e *Engine) Input() string { return string(e.input) }

// Keyboard returns a copy of the keyboard state.
func (e *Engine) Keyboard() KeyboardState { return e.keyboard.Clone() }

// History returns the submitted attempts in order.
func (e *Engine) History() []AttemptResult {
	out := make([]AttemptResult, len(e.history))
	for i, a := range e.history {
		out[i] = append(AttemptResult(nil), a...)
	}
	return out
}

// Answer reveals the target once the round is over.
func (e *Engine) Answer() (string, bool) {
	if !e.status.Terminal() {
		return "", false
	}
	return string(e.target), true
}

// Snapshot is a copy of the round state, safe to keep and compare.
type Snapshot struct {
	RoundID      string
	AttemptIndex int
	Input        string
	Status       Status
	Keyboard     KeyboardState
	History      []AttemptResult
}

// Snapshot captures the current round state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		RoundID:      e.roundID,
		AttemptIndex: e.attempt,
		Input:        string(e.input),
		Status:       e.status,
		Keyboard:     e.keyboard.Clone(),
		History:      e.History(),
	}
}
