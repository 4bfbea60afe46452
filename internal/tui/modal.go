package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const modalMaxWidth = 64

// modalBodyWidth is the inner width of a modal on a screen width columns wide.
func modalBodyWidth(width int) int {
	w := width - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox frames content with a title. The box is placed by the caller.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	head := styleHeader().Render(title)
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), bodyW))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPanelRuleFg).
		Padding(0, 1).
		Width(bodyW + 2)
	return box.Render(strings.Join([]string{head, rule, content}, "\n"))
}

// placeModal centers a modal over an empty screen.
func placeModal(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
