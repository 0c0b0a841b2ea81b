// internal/game/keyboard.go
//
// Cumulative per-letter knowledge for the on-screen keyboard.
// Each alphabet letter carries its best-known status across every guess
// in the session; merging keeps the most informative value, so a letter
// once shown Correct never regresses even when a later occurrence of the
// same letter scores Absent (which legitimately happens with duplicates).

package game

// Keyboard maps each letter a-z to its best-known LetterStatus.
// The zero value is ready to use: every entry starts at StatusUnknown.
type Keyboard struct {
	status [26]LetterStatus
}

// Merge folds one guess result into the keyboard, position by position.
// Entries only ever move up the informativeness order.
func (k *Keyboard) Merge(res GuessResult) {
	for _, gl := range res {
		i := letterIndex(gl.Letter)
		if i < 0 || i >= 26 {
			continue
		}
		if gl.Status > k.status[i] {
			k.status[i] = gl.Status
		}
	}
}

// Status returns the best-known status for a letter.
// Non a-z runes report StatusUnknown.
func (k *Keyboard) Status(letter rune) LetterStatus {
	i := letterIndex(letter)
	if i < 0 || i >= 26 {
		return StatusUnknown
	}
	return k.status[i]
}

// Uncovered reports whether the letter is known to be in the answer
// (Correct or Present). Hard mode requires uncovered letters to appear
// in every subsequent guess.
func (k *Keyboard) Uncovered(letter rune) bool {
	return k.Status(letter) >= StatusPresent
}
