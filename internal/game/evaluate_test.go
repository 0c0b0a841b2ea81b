package game

import (
	"strings"
	"testing"
)

func statuses(r GuessResult) []LetterStatus {
	out := make([]LetterStatus, len(r))
	for i, gl := range r {
		out[i] = gl.Status
	}
	return out
}

func assertStatuses(t *testing.T, got GuessResult, want []LetterStatus) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("result length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Status != want[i] {
			t.Fatalf("position %d: got %v, want %v (full result %v)", i, got[i].Status, want[i], statuses(got))
		}
	}
}

func TestEvaluateAnswerAgainstItself(t *testing.T) {
	for _, w := range []string{"crane", "abbey", "fuzzy"} {
		res := Evaluate(w, w)
		if !res.AllCorrect() {
			t.Fatalf("evaluating %q against itself: got %v, want all correct", w, statuses(res))
		}
	}
}

func TestEvaluateMixedStatuses(t *testing.T) {
	// heart vs haste: h in place, e/a/t misplaced, r absent.
	res := Evaluate("heart", "haste")
	assertStatuses(t, res, []LetterStatus{
		StatusCorrect, StatusPresent, StatusPresent, StatusAbsent, StatusPresent,
	})
}

func TestEvaluateDuplicateLettersLimitedByAnswerCount(t *testing.T) {
	// spell vs sleep: only one l in sleep, so the second l must not be
	// credited even though the answer "contains l".
	res := Evaluate("spell", "sleep")
	assertStatuses(t, res, []LetterStatus{
		StatusCorrect, StatusPresent, StatusCorrect, StatusPresent, StatusAbsent,
	})
}

func TestEvaluateCorrectPositionsConsumeCountsFirst(t *testing.T) {
	// added vs ahead: three d's in the guess, one d in the answer, and
	// the exact match at the last position must claim it.
	res := Evaluate("added", "ahead")
	assertStatuses(t, res, []LetterStatus{
		StatusCorrect, StatusAbsent, StatusAbsent, StatusPresent, StatusCorrect,
	})
}

func TestEvaluateEraseVersusSpeed(t *testing.T) {
	// speed holds two e's; the guess's two e's are both credited, its
	// lone s is credited, and nothing more.
	res := Evaluate("erase", "speed")
	assertStatuses(t, res, []LetterStatus{
		StatusPresent, StatusAbsent, StatusAbsent, StatusPresent, StatusPresent,
	})
}

func TestEvaluateLlamaVersusAlloy(t *testing.T) {
	res := Evaluate("llama", "alloy")
	assertStatuses(t, res, []LetterStatus{
		StatusPresent, StatusCorrect, StatusPresent, StatusAbsent, StatusAbsent,
	})
}

func TestEvaluateNeverOverCreditsALetter(t *testing.T) {
	cases := []struct{ guess, answer string }{
		{"spell", "sleep"},
		{"added", "ahead"},
		{"erase", "speed"},
		{"llama", "alloy"},
		{"eerie", "tepee"},
		{"mamma", "gamma"},
	}
	for _, c := range cases {
		res := Evaluate(c.guess, c.answer)
		for r := 'a'; r <= 'z'; r++ {
			credited := 0
			for _, gl := range res {
				if gl.Letter == r && gl.Status != StatusAbsent {
					credited++
				}
			}
			if inAnswer := strings.Count(c.answer, string(r)); credited > inAnswer {
				t.Fatalf("%q vs %q: letter %c credited %d times but appears %d times in answer",
					c.guess, c.answer, r, credited, inAnswer)
			}
		}
	}
}

func TestEvaluatePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for mismatched lengths")
		}
	}()
	Evaluate("toolong", "crane")
}
