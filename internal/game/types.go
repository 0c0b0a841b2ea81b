// internal/game/types.go
//
// Core type definitions for the wordlet game engine.
// Defines:
//   - LetterStatus: per-letter feedback, ordered by informativeness.
//   - GuessLetter / GuessResult: a scored guess, one entry per position.
//   - Outcome: coarse session state (playing/won/lost).
//   - Difficulty: easy or hard, fixed for the life of a session.
//   - RowState: per-board-row classification used by the terminal shell.

package game

import "fmt"

const (
	// WordLength is the number of letters in every secret and guess.
	WordLength = 5

	// DefaultMaxAttempts is the classic six-row board.
	DefaultMaxAttempts = 6
)

// LetterStatus is the evaluation result for a single letter of a guess.
// The numeric order encodes informativeness: a keyboard entry only ever
// moves to a higher value, so merging is a max operation.
type LetterStatus int

const (
	StatusUnknown LetterStatus = iota // letter has not been played yet
	StatusAbsent                      // letter is not in the answer (at this count)
	StatusPresent                     // letter is in the answer, wrong position
	StatusCorrect                     // letter is in the right position
)

// String reports the status in the form used for logging.
func (s LetterStatus) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusPresent:
		return "present"
	case StatusAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// GuessLetter pairs one letter of a guess with its evaluated status.
type GuessLetter struct {
	Letter rune
	Status LetterStatus
}

// GuessResult is the per-position scoring of one submitted guess.
// Immutable once produced; the session hands out the slices it stores,
// so callers must treat them as read-only.
type GuessResult []GuessLetter

// Word reconstructs the guessed word from the result.
func (r GuessResult) Word() string {
	b := make([]rune, len(r))
	for i, gl := range r {
		b[i] = gl.Letter
	}
	return string(b)
}

// AllCorrect reports whether every position scored StatusCorrect.
func (r GuessResult) AllCorrect() bool {
	for _, gl := range r {
		if gl.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// Outcome is the coarse state of a session.
type Outcome string

const (
	InProgress Outcome = "playing"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Difficulty selects the guess-constraint policy for a session.
type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

// ParseDifficulty maps a CLI/config string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Hard:
		return Difficulty(s), nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q (valid: easy, hard)", s)
}

// RowState classifies one row of the board for rendering.
type RowState int

const (
	RowEmpty          RowState = iota // row not reached yet
	RowCurrent                        // row accepting input
	RowAlreadyGuessed                 // row holds a scored guess
)
