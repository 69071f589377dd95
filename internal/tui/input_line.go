package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine pads the text field onto a shaded line exactly width cells
// wide. The field must stay on one visual line or the grid below jumps.
func renderInputLine(width int, inputView string) string {
	if width < 14 {
		width = 14
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > width {
		// Reset styling so a cut escape sequence does not bleed.
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
