package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func testDict(t *testing.T, seed int64) *Dictionary {
	t.Helper()
	d, err := New(
		[]string{"crane", "slump", "abbey", "sleep"},
		[]string{"pasta", "sloop"},
		rand.New(rand.NewSource(seed)),
	)
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	return d
}

func TestPickSecretIsDeterministicForASeed(t *testing.T) {
	a := testDict(t, 42)
	b := testDict(t, 42)
	for i := 0; i < 20; i++ {
		wa, wb := a.PickSecret(), b.PickSecret()
		if wa != wb {
			t.Fatalf("pick %d: %q vs %q with the same seed", i, wa, wb)
		}
		if !a.IsAnswer(wa) {
			t.Fatalf("pick %d: %q is not in the answers partition", i, wa)
		}
	}
}

func TestIsValidGuessNormalizesAndChecksLength(t *testing.T) {
	d := testDict(t, 1)
	cases := []struct {
		in   string
		want bool
	}{
		{"crane", true},
		{"CRANE", true},
		{" crane ", true},
		{"pasta", true}, // allowed-only word
		{"cranes", false},
		{"cran", false},
		{"zzzzz", false},
		{"", false},
	}
	for _, c := range cases {
		if got := d.IsValidGuess(c.in); got != c.want {
			t.Fatalf("IsValidGuess(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAllowedIsASupersetOfAnswers(t *testing.T) {
	d := testDict(t, 1)
	for _, w := range []string{"crane", "slump", "abbey", "sleep"} {
		if !d.IsValidGuess(w) {
			t.Fatalf("answer %q is not an accepted guess", w)
		}
	}
	if d.IsAnswer("pasta") {
		t.Fatal("allowed-only word leaked into the answers partition")
	}
	answers, allowed := d.Stats()
	if answers != 4 || allowed != 6 {
		t.Fatalf("stats = (%d, %d), want (4, 6)", answers, allowed)
	}
}

func TestNewDropsInvalidWords(t *testing.T) {
	d, err := New(
		[]string{"crane", "toolong", "ab1de", "", "  SLUMP  "},
		nil,
		rand.New(rand.NewSource(1)),
	)
	if err != nil {
		t.Fatalf("new dictionary: %v", err)
	}
	answers, _ := d.Stats()
	if answers != 2 {
		t.Fatalf("answers = %d, want 2 (invalid entries dropped, case folded)", answers)
	}
	if !d.IsAnswer("slump") {
		t.Fatal("uppercase input should normalize to a valid answer")
	}
}

func TestNewRequiresAnswersAndRandomness(t *testing.T) {
	if _, err := New(nil, nil, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected an error for an empty answers list")
	}
	if _, err := New([]string{"crane"}, nil, nil); err == nil {
		t.Fatal("expected an error for a nil random source")
	}
}

func writeWordFile(t *testing.T, name string, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFromFiles(t *testing.T) {
	cfg := Config{
		AnswersFile: writeWordFile(t, "answers.txt", "crane\nslump\n"),
		AllowedFile: writeWordFile(t, "allowed.txt", "pasta\nnoise\n"),
		Rand:        rand.New(rand.NewSource(7)),
	}
	d, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	answers, allowed := d.Stats()
	if answers != 2 || allowed != 4 {
		t.Fatalf("stats = (%d, %d), want (2, 4)", answers, allowed)
	}
	if !d.IsValidGuess("pasta") || d.IsAnswer("pasta") {
		t.Fatal("allowed file words must be guessable but not answers")
	}
}

func TestLoadAllowedFileOnlyServesBothLists(t *testing.T) {
	cfg := Config{
		AllowedFile: writeWordFile(t, "allowed.txt", "crane\nslump\n"),
		Rand:        rand.New(rand.NewSource(7)),
	}
	d, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w := d.PickSecret(); !d.IsValidGuess(w) {
		t.Fatalf("secret %q is not guessable", w)
	}
	answers, _ := d.Stats()
	if answers != 2 {
		t.Fatalf("answers = %d, want the allowed list reused", answers)
	}
}

func TestLoadAnswersFileOnlyServesBothLists(t *testing.T) {
	cfg := Config{
		AnswersFile: writeWordFile(t, "answers.txt", "crane\nslump\n"),
		Rand:        rand.New(rand.NewSource(7)),
	}
	d, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	answers, allowed := d.Stats()
	if answers != 2 || allowed != 2 {
		t.Fatalf("stats = (%d, %d), want the answers file used for both lists", answers, allowed)
	}
	if !d.IsValidGuess("crane") {
		t.Fatal("answers file words must be guessable")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(Config{
		AnswersFile: filepath.Join(t.TempDir(), "missing.txt"),
		AllowedFile: filepath.Join(t.TempDir(), "missing.txt"),
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err == nil {
		t.Fatal("expected an error for a missing word file")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	d, err := Load(Config{Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	answers, allowed := d.Stats()
	if answers == 0 || allowed < answers {
		t.Fatalf("stats = (%d, %d), want non-empty answers within allowed", answers, allowed)
	}
	for _, w := range []string{"crane", "slate", "speed", "erase"} {
		if !d.IsValidGuess(w) {
			t.Fatalf("embedded lists should accept %q", w)
		}
	}
}
