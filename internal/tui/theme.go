// internal/tui/theme.go
//
// Color palettes for the terminal shell. Two built-in themes, dark and
// light, matching what works on the respective terminal backgrounds.
// A theme is plain data; the draw code decides where each color goes.

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds every color the shell draws with.
type Theme struct {
	Border  tcell.Color // board and keyboard frames
	Input   tcell.Color // letters being typed in the current row
	Welcome tcell.Color // welcome/status text
	Success tcell.Color // win message
	Error   tcell.Color // rejection and game-over messages

	EmptyTile tcell.Color // untouched board tiles

	TileCorrect tcell.Color // letter in the right place
	TilePresent tcell.Color // letter in the word, wrong place
	TileAbsent  tcell.Color // letter not in the word

	KeyUnknown tcell.Color // keyboard letter not played yet
	KeyCorrect tcell.Color
	KeyPresent tcell.Color
	KeyAbsent  tcell.Color
}

// LightTheme is the palette for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Border:      tcell.ColorBlack,
		Input:       tcell.ColorBlack,
		Welcome:     tcell.ColorBlack,
		Success:     tcell.ColorGreen,
		Error:       tcell.ColorRed,
		EmptyTile:   tcell.ColorGray,
		TileCorrect: tcell.ColorGreen,
		TilePresent: tcell.ColorYellow,
		TileAbsent:  tcell.ColorBlack,
		KeyUnknown:  tcell.ColorBlack,
		KeyCorrect:  tcell.ColorGreen,
		KeyPresent:  tcell.ColorYellow,
		KeyAbsent:   tcell.ColorGray,
	}
}

// DarkTheme is the default palette; it differs from light only where
// black-on-dark would vanish.
func DarkTheme() Theme {
	t := LightTheme()
	t.Border = tcell.ColorWhite
	t.Input = tcell.ColorWhite
	t.Welcome = tcell.ColorWhite
	t.TileAbsent = tcell.ColorGray
	t.KeyUnknown = tcell.ColorWhite
	return t
}

// ParseTheme maps a CLI/config string to a Theme.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (valid: dark, light)", name)
}
