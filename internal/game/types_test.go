package game

import "testing"

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, "hard": Hard} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Fatalf("ParseDifficulty(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}

func TestGuessResultWord(t *testing.T) {
	res := Evaluate("crane", "slump")
	if got := res.Word(); got != "crane" {
		t.Fatalf("Word() = %q, want crane", got)
	}
}

func TestConstraintErrorMessages(t *testing.T) {
	positional := &ConstraintError{Letter: 'e', Position: 4}
	if got := positional.Error(); got != "letter 4 must be E" {
		t.Fatalf("positional message = %q", got)
	}
	anywhere := &ConstraintError{Letter: 'e'}
	if got := anywhere.Error(); got != "guess must contain E" {
		t.Fatalf("anywhere message = %q", got)
	}
}

func TestLetterStatusOrderingMatchesInformativeness(t *testing.T) {
	if !(StatusUnknown < StatusAbsent && StatusAbsent < StatusPresent && StatusPresent < StatusCorrect) {
		t.Fatal("status ordering must be unknown < absent < present < correct")
	}
}
