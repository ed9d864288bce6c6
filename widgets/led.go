package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"mt32-panel/theme"
)

// RenderLED renders the MIDI MESSAGE indicator with its label.
func RenderLED(on bool, th *theme.Theme) string {
	color := th.LEDOff()
	if on {
		color = th.LEDOn()
	}
	dot := lipgloss.NewStyle().Foreground(color).Render(string(th.Symbols.LED))
	label := lipgloss.NewStyle().Foreground(th.Text()).Render("MIDI MESSAGE")
	return dot + " " + label
}
