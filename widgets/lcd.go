package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mt32-panel/theme"
)

// glyph maps an LCD byte to a printable rune per the unit's character
// set: control bytes 0x01/0x02 select the block and bar glyphs, anything
// else outside printable ASCII renders as a space.
func glyph(b byte, th *theme.Theme) rune {
	switch {
	case b == 0x01:
		return th.Symbols.Block
	case b == 0x02:
		return '|'
	case b < 0x20 || b > 0x7E:
		return ' '
	}
	return rune(b)
}

// RenderLCD renders the 20-byte display line inside the chassis frame.
func RenderLCD(buf []byte, th *theme.Theme) string {
	var line strings.Builder
	for _, b := range buf {
		line.WriteRune(glyph(b, th))
	}

	lcd := lipgloss.NewStyle().
		Foreground(th.LCDFg()).
		Background(th.LCDBg()).
		Padding(0, 1).
		Render(line.String())

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Chassis())
	return frame.Render(lcd)
}
