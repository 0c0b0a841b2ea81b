// internal/tui/app.go
//
// Interactive shell around a game session.
// Responsibilities:
//   - Own the tcell screen and the event loop (keys + resize).
//   - Collect typed letters into the current row and submit on Enter.
//   - Translate engine rejections into one-line player feedback.
//   - Quit on Esc/Ctrl-C, or on any key once the game is over.
//
// The app is a pure consumer of the engine: it reads history, keyboard
// state, row states, and the outcome, and mutates the session only
// through SubmitGuess.

package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordlet/internal/game"
)

// messageKind selects the color a status message is drawn in.
type messageKind int

const (
	msgInfo messageKind = iota
	msgError
	msgSuccess
)

// App drives one game in the terminal.
type App struct {
	screen  tcell.Screen
	session *game.Session
	theme   Theme
	log     zerolog.Logger

	input   []rune
	message string
	kind    messageKind
	done    bool // terminal outcome reached; next key quits
}

// New constructs an App around an in-progress session.
func New(session *game.Session, theme Theme, log zerolog.Logger) *App {
	return &App{
		session: session,
		theme:   theme,
		log:     log,
		message: "Guess the word! Type a five-letter word and press Enter.",
	}
}

// Run owns the terminal until the player quits: it initializes the
// screen, loops over draw/poll/handle, and restores the terminal on the
// way out, including on a handler panic.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	a.screen = screen
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	for {
		a.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey processes one key press. Returns true when the app should quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	// Once the game is over any key dismisses the final message.
	if a.done {
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyEnter:
		a.submit()
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' && len(a.input) < game.WordLength {
			a.input = append(a.input, r)
		}
	}
	return false
}

// submit feeds the current row to the engine and updates the status line.
func (a *App) submit() {
	if len(a.input) != game.WordLength {
		return
	}
	word := string(a.input)

	snap, err := a.session.SubmitGuess(word)
	if err != nil {
		a.log.Debug().Str("guess", word).Err(err).Msg("guess rejected")
		a.message = rejectionMessage(err)
		a.kind = msgError
		return
	}

	a.log.Info().
		Str("guess", word).
		Str("outcome", string(snap.Outcome)).
		Int("remaining", snap.Remaining).
		Msg("guess applied")

	a.input = a.input[:0]
	switch snap.Outcome {
	case game.Won:
		a.message = "You won! Press any key to exit."
		a.kind = msgSuccess
		a.done = true
	case game.Lost:
		answer, _ := a.session.Answer()
		a.message = "Game over. The word was " + answer + ". Press any key to exit."
		a.kind = msgError
		a.done = true
	default:
		a.message = ""
		a.kind = msgInfo
	}
}

// rejectionMessage names the rejection for the player.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidWord):
		return "Not in word list."
	case errors.Is(err, game.ErrDuplicateGuess):
		return "You already guessed that word."
	case errors.Is(err, game.ErrHardModeViolation):
		return "Hard mode: " + err.Error() + "."
	case errors.Is(err, game.ErrSessionOver):
		return "The game is already over."
	}
	return err.Error()
}
