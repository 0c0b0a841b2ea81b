// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed-guess lists from environment-provided files
//     or fall back to the embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Pick a uniformly random secret from the answers partition.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Randomness is an injected source rather than ambient process state so
// that a seeded game is fully reproducible and tests are deterministic.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/robalobadob/wordlet/assets"
)

// Length is the number of letters in every dictionary word.
const Length = 5

// Config controls dictionary construction.
type Config struct {
	// AnswersFile / AllowedFile override the embedded lists when set.
	// Setting only one of them makes that file serve as both lists.
	AnswersFile string
	AllowedFile string

	// Rand supplies randomness for PickSecret. Required.
	Rand *rand.Rand
}

// Dictionary is an immutable pair of word lists plus a random source.
type Dictionary struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
	rng        *rand.Rand
}

// Load builds a Dictionary per cfg. Returns an error if the answers list
// ends up empty or a configured file cannot be read.
func Load(cfg Config) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Both lists provided.
	case cfg.AnswersFile != "" && cfg.AllowedFile != "":
		if ansList, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}

	// Only an allowed file provided: use it for both.
	case cfg.AnswersFile == "" && cfg.AllowedFile != "":
		if allowList, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	// Only an answers file provided: use it for both.
	case cfg.AnswersFile != "" && cfg.AllowedFile == "":
		if ansList, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}
		allowList = ansList

	// Fall back to the embedded defaults.
	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, err
		}
	}

	return New(ansList, allowList, cfg.Rand)
}

// New builds a Dictionary from in-memory lists. Words are normalized to
// lowercase; entries that are not exactly Length letters a-z are dropped.
// Answers are always included in the allowed set.
func New(answers, allowed []string, rng *rand.Rand) (*Dictionary, error) {
	if rng == nil {
		return nil, errors.New("words: a random source is required")
	}
	ansList := normalize(answers)
	if len(ansList) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	d := &Dictionary{
		answers:    ansList,
		answersSet: toSet(ansList),
		allowedSet: toSet(ansList),
		rng:        rng,
	}
	for _, w := range normalize(allowed) {
		d.allowedSet[w] = struct{}{}
	}
	return d, nil
}

// PickSecret returns a uniformly random answer word.
func (d *Dictionary) PickSecret() string {
	return d.answers[d.rng.Intn(len(d.answers))]
}

// IsValidGuess reports whether w, case-normalized, is an accepted guess
// (answers ∪ guesses). Wrong-length input simply reports false.
func (d *Dictionary) IsValidGuess(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// IsAnswer reports whether w is in the answers partition.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid Length-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return normalize(out), sc.Err()
}

// normalize lowercases and filters a raw list down to valid words.
func normalize(list []string) []string {
	var out []string
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == Length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
