// assets/embed.go
//
// Embedded default word lists, so the game runs with no external files.
// answers.txt is the secret-word pool; allowed.txt holds additional
// accepted guesses (the words package always unions answers in).
// Lines are one word each; blanks and #-comments are skipped.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded secret-word pool.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded extra accepted guesses.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
