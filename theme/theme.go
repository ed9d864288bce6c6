package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Block rune // █ lit LCD cell (part activity)
	LED   rune // ● MIDI MESSAGE LED
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Block: '█',
			LED:   '●',
		},
	}
}

// Color roles mapped to palette indices
const (
	RoleChassis = 0 // frame around the LCD
	RoleLCDBg   = 1 // olive background
	RoleLCDFg   = 2 // yellow-green segments
	RoleLEDOff  = 3
	RoleLEDOn   = 4
	RoleText    = 5 // status and help lines
)

// Style helpers

func (t *Theme) Chassis() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(RoleChassis))
}

func (t *Theme) LCDBg() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(RoleLCDBg))
}

func (t *Theme) LCDFg() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(RoleLCDFg))
}

func (t *Theme) LEDOff() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(RoleLEDOff))
}

func (t *Theme) LEDOn() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(RoleLEDOn))
}

func (t *Theme) Text() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(RoleText))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
