// internal/game/evaluate.go
//
// Pure guess scoring. Evaluate implements the standard two-pass algorithm:
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) answer letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for
//     that letter, mark Present and decrement the count; otherwise Absent.
//
// The two passes are what make repeated letters come out right: when the
// answer holds a letter fewer times than the guess does, only that many
// occurrences are credited and the rest score Absent. A single-pass
// "does the answer contain this letter" check would over-credit.

package game

import "fmt"

// Evaluate scores guess against answer and returns one status per position.
// Both arguments must be normalized (lowercase a-z) and the same length;
// a length mismatch means an upstream invariant was broken, so it panics
// rather than returning an error.
func Evaluate(guess, answer string) GuessResult {
	if len(guess) != len(answer) {
		panic(fmt.Sprintf("game: evaluate length mismatch: guess %d vs answer %d", len(guess), len(answer)))
	}

	n := len(guess)
	res := make(GuessResult, n)
	guessRunes := []rune(guess)
	answerRunes := []rune(answer)

	// Letter frequency for the non-correct positions (a-z).
	var counts [26]int

	for i := 0; i < n; i++ {
		res[i].Letter = guessRunes[i]
		if guessRunes[i] == answerRunes[i] {
			res[i].Status = StatusCorrect
		} else {
			counts[letterIndex(answerRunes[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i].Status == StatusCorrect {
			continue
		}
		j := letterIndex(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i].Status = StatusPresent
			counts[j]--
		} else {
			res[i].Status = StatusAbsent
		}
	}
	return res
}

// letterIndex maps a lowercase ASCII letter rune to 0..25.
// Assumes inputs are validated to a-z elsewhere.
func letterIndex(r rune) int { return int(r - 'a') }

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
