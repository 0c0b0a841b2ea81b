// internal/tui/draw.go
//
// Rendering for the terminal shell: title, six-row tile board, status
// line, and the on-screen keyboard. Everything is centered on the
// screen width and redrawn from scratch each frame; tcell diffs the
// cell buffer so a full redraw stays cheap.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordlet/internal/game"
)

const (
	tileWidth = 4 // three colored cells plus a gap

	titleRow    = 1
	boardTop    = 3
	statusPad   = 1 // blank rows between board and status line
	keyboardPad = 1 // blank rows between status and keyboard
)

var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// draw renders one full frame.
func (a *App) draw() {
	a.screen.Clear()
	width, _ := a.screen.Size()

	a.drawTitle(width)
	a.drawBoard(width)

	statusRow := boardTop + a.session.MaxAttempts() + statusPad
	a.drawStatus(width, statusRow)
	a.drawKeyboard(width, statusRow+1+keyboardPad)

	a.screen.Show()
}

func (a *App) drawTitle(width int) {
	style := tcell.StyleDefault.Foreground(a.theme.Border).Bold(true)
	drawText(a.screen, center(width, len("W O R D L E T")), titleRow, style, "W O R D L E T")
}

// drawBoard renders one text row per board row: scored guesses as
// colored tiles, the current row as typed input plus placeholders,
// untouched rows as placeholders only.
func (a *App) drawBoard(width int) {
	boardWidth := game.WordLength*tileWidth - 1
	x0 := center(width, boardWidth)
	history := a.session.History()

	for row, state := range a.session.RowStates() {
		y := boardTop + row
		switch state {
		case game.RowAlreadyGuessed:
			a.drawGuessRow(x0, y, history[row])
		case game.RowCurrent:
			a.drawInputRow(x0, y)
		default:
			a.drawEmptyRow(x0, y)
		}
	}
}

func (a *App) drawGuessRow(x0, y int, res game.GuessResult) {
	for i, gl := range res {
		style := tcell.StyleDefault.
			Foreground(tcell.ColorBlack).
			Background(a.tileColor(gl.Status))
		drawTile(a.screen, x0+i*tileWidth, y, style, gl.Letter)
	}
}

func (a *App) drawInputRow(x0, y int) {
	inputStyle := tcell.StyleDefault.Foreground(a.theme.Input).Bold(true)
	emptyStyle := tcell.StyleDefault.Foreground(a.theme.EmptyTile)
	for i := 0; i < game.WordLength; i++ {
		if i < len(a.input) {
			drawTile(a.screen, x0+i*tileWidth, y, inputStyle, a.input[i])
		} else {
			drawTile(a.screen, x0+i*tileWidth, y, emptyStyle, '_')
		}
	}
}

func (a *App) drawEmptyRow(x0, y int) {
	style := tcell.StyleDefault.Foreground(a.theme.EmptyTile)
	for i := 0; i < game.WordLength; i++ {
		drawTile(a.screen, x0+i*tileWidth, y, style, '.')
	}
}

func (a *App) drawStatus(width, y int) {
	if a.message == "" {
		return
	}
	color := a.theme.Welcome
	switch a.kind {
	case msgError:
		color = a.theme.Error
	case msgSuccess:
		color = a.theme.Success
	}
	style := tcell.StyleDefault.Foreground(color)
	drawText(a.screen, center(width, len(a.message)), y, style, a.message)
}

// drawKeyboard renders the QWERTY rows, each letter colored by its
// best-known status.
func (a *App) drawKeyboard(width, y int) {
	kb := a.session.Keyboard()
	for row, letters := range keyboardRows {
		rowWidth := 2*len(letters) - 1
		x := center(width, rowWidth)
		for i, r := range letters {
			status := kb.Status(r)
			style := tcell.StyleDefault.Foreground(a.keyColor(status))
			if status == game.StatusCorrect || status == game.StatusPresent {
				style = tcell.StyleDefault.
					Foreground(tcell.ColorBlack).
					Background(a.keyColor(status))
			}
			a.screen.SetContent(x+i*2, y+row, upper(r), nil, style)
		}
	}
}

func (a *App) tileColor(s game.LetterStatus) tcell.Color {
	switch s {
	case game.StatusCorrect:
		return a.theme.TileCorrect
	case game.StatusPresent:
		return a.theme.TilePresent
	default:
		return a.theme.TileAbsent
	}
}

func (a *App) keyColor(s game.LetterStatus) tcell.Color {
	switch s {
	case game.StatusCorrect:
		return a.theme.KeyCorrect
	case game.StatusPresent:
		return a.theme.KeyPresent
	case game.StatusAbsent:
		return a.theme.KeyAbsent
	default:
		return a.theme.KeyUnknown
	}
}

// drawTile paints a three-cell tile with the letter in the middle.
func drawTile(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, ' ', nil, style)
	s.SetContent(x+1, y, upper(r), nil, style)
	s.SetContent(x+2, y, ' ', nil, style)
}

// drawText writes a string starting at (x, y).
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// center returns the left offset that centers a span of the given width.
func center(screenWidth, spanWidth int) int {
	x := (screenWidth - spanWidth) / 2
	if x < 0 {
		return 0
	}
	return x
}

// upper maps a-z to A-Z for display; everything else passes through.
func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
