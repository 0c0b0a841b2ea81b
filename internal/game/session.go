// internal/game/session.go
//
// Game session state machine for a single wordlet game.
// Responsibilities:
//   - Own the secret answer, guess history, keyboard state, and outcome.
//   - Validate and apply guesses (dictionary, duplicates, hard mode).
//   - Track state transitions: playing → won/lost.
//
// Validation happens before any mutation, so SubmitGuess is atomic: a
// rejected guess leaves the session exactly as it was and consumes no
// attempt. Sessions are owned by a single caller; nothing here is safe
// for concurrent use and nothing needs to be.

package game

import (
	"fmt"
	"strings"
)

// Wordlist is the dictionary surface the session needs for validation.
// *words.Dictionary satisfies it.
type Wordlist interface {
	// IsValidGuess reports whether the candidate, case-normalized, is an
	// accepted guess word of the right length.
	IsValidGuess(candidate string) bool
}

// Options configures a new session.
type Options struct {
	// Answer is the secret word, already picked by the caller
	// (normally words.Dictionary.PickSecret).
	Answer string

	// Difficulty is fixed for the life of the session. Defaults to Easy.
	Difficulty Difficulty

	// MaxAttempts defaults to DefaultMaxAttempts when zero.
	MaxAttempts int

	// Words validates submitted guesses.
	Words Wordlist
}

// Session owns all state for one game. Construct with New, drive with
// SubmitGuess, read with the accessor methods.
type Session struct {
	answer      string
	words       Wordlist
	difficulty  Difficulty
	maxAttempts int
	history     []GuessResult
	keyboard    Keyboard
	outcome     Outcome
	solved      []bool // positions scored Correct in any applied guess
}

// Snapshot is the read-only result of a successful SubmitGuess.
type Snapshot struct {
	Result    GuessResult
	Outcome   Outcome
	Remaining int
}

// New constructs a session around a secret answer.
func New(opts Options) (*Session, error) {
	ans := strings.ToLower(strings.TrimSpace(opts.Answer))
	if len(ans) != WordLength || !isAlpha(ans) {
		return nil, fmt.Errorf("game: answer must be %d letters a-z, got %q", WordLength, opts.Answer)
	}
	if opts.Words == nil {
		return nil, fmt.Errorf("game: a word list is required")
	}
	diff := opts.Difficulty
	if diff == "" {
		diff = Easy
	}
	max := opts.MaxAttempts
	if max <= 0 {
		max = DefaultMaxAttempts
	}
	return &Session{
		answer:      ans,
		words:       opts.Words,
		difficulty:  diff,
		maxAttempts: max,
		outcome:     InProgress,
		solved:      make([]bool, WordLength),
	}, nil
}

// SubmitGuess validates raw, scores it, and advances the state machine.
//
// Preconditions are checked in order:
//  1. the session must still be in progress (ErrSessionOver),
//  2. the word must pass the dictionary check (ErrInvalidWord),
//  3. the word must not repeat an earlier guess (ErrDuplicateGuess),
//  4. in hard mode, the word must respect everything already revealed
//     (*ConstraintError, matching ErrHardModeViolation).
//
// Any rejection returns before the session is touched. On success the
// guess is appended to history, folded into the keyboard, and the
// outcome recomputed: all-Correct wins, exhausting attempts loses.
func (s *Session) SubmitGuess(raw string) (Snapshot, error) {
	if s.outcome != InProgress {
		return Snapshot{}, ErrSessionOver
	}

	guess := strings.ToLower(strings.TrimSpace(raw))
	if len(guess) != len(s.answer) || !s.words.IsValidGuess(guess) {
		return Snapshot{}, ErrInvalidWord
	}
	for _, prev := range s.history {
		if prev.Word() == guess {
			return Snapshot{}, ErrDuplicateGuess
		}
	}
	if s.difficulty == Hard {
		if err := s.checkConstraints(guess); err != nil {
			return Snapshot{}, err
		}
	}

	res := Evaluate(guess, s.answer)
	s.history = append(s.history, res)
	s.keyboard.Merge(res)
	for i, gl := range res {
		if gl.Status == StatusCorrect {
			s.solved[i] = true
		}
	}

	if res.AllCorrect() {
		s.outcome = Won
	} else if len(s.history) >= s.maxAttempts {
		s.outcome = Lost
	}

	return Snapshot{Result: res, Outcome: s.outcome, Remaining: s.Remaining()}, nil
}

// checkConstraints enforces hard mode against the already-revealed state.
// Solved positions must keep their letter; letters uncovered on the
// keyboard must appear somewhere in the guess (anywhere is enough, they
// do not have to move).
func (s *Session) checkConstraints(guess string) error {
	for i, r := range guess {
		if s.solved[i] && byte(r) != s.answer[i] {
			return &ConstraintError{Letter: rune(s.answer[i]), Position: i + 1}
		}
	}
	for _, r := range s.answer {
		if s.keyboard.Uncovered(r) && !strings.ContainsRune(guess, r) {
			return &ConstraintError{Letter: r}
		}
	}
	return nil
}

// Outcome reports the current state: InProgress, Won, or Lost.
func (s *Session) Outcome() Outcome { return s.outcome }

// Difficulty reports the policy the session was constructed with.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Remaining reports how many attempts are left.
func (s *Session) Remaining() int { return s.maxAttempts - len(s.history) }

// MaxAttempts reports the attempt limit.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// History returns the scored guesses in submission order.
// The results are shared, not copied; treat them as read-only.
func (s *Session) History() []GuessResult { return s.history }

// Keyboard exposes the cumulative letter knowledge for rendering.
func (s *Session) Keyboard() *Keyboard { return &s.keyboard }

// Answer reveals the secret once the session is terminal.
// The second return is false while the game is still in progress.
func (s *Session) Answer() (string, bool) {
	if s.outcome == InProgress {
		return "", false
	}
	return s.answer, true
}

// RowStates classifies each board row for the shell: rows holding scored
// guesses, the row currently accepting input (none once the game is
// over), and untouched rows.
func (s *Session) RowStates() []RowState {
	rows := make([]RowState, s.maxAttempts)
	for i := range rows {
		switch {
		case i < len(s.history):
			rows[i] = RowAlreadyGuessed
		case i == len(s.history) && s.outcome == InProgress:
			rows[i] = RowCurrent
		default:
			rows[i] = RowEmpty
		}
	}
	return rows
}
