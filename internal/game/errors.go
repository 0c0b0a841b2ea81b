// internal/game/errors.go
//
// Engine errors returned by Session.SubmitGuess.
// All of these are recoverable rejections: the session state is left
// untouched and no attempt is consumed. Callers branch on them with
// errors.Is; ConstraintError additionally carries which hard-mode
// constraint was violated so the shell can name it for the player.

package game

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrSessionOver is returned for guesses submitted after Won/Lost.
	ErrSessionOver = errors.New("game is already over")

	// ErrInvalidWord is returned when a guess fails the dictionary
	// membership or length check.
	ErrInvalidWord = errors.New("not in word list")

	// ErrDuplicateGuess is returned when the same word is submitted twice
	// in one session.
	ErrDuplicateGuess = errors.New("word already guessed")

	// ErrHardModeViolation matches any ConstraintError via errors.Is.
	ErrHardModeViolation = errors.New("hard mode constraint violated")
)

// ConstraintError reports the first hard-mode constraint a guess violated.
// Position is 1-based because the message is shown to the player; a zero
// Position means the letter was required somewhere, not at a fixed slot.
type ConstraintError struct {
	Letter   rune
	Position int
}

func (e *ConstraintError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("letter %d must be %c", e.Position, unicode.ToUpper(e.Letter))
	}
	return fmt.Sprintf("guess must contain %c", unicode.ToUpper(e.Letter))
}

// Is lets errors.Is(err, ErrHardModeViolation) match constraint errors.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrHardModeViolation
}
