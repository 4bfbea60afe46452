package tui

import (
	"strings"

	"todopanes/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// badge draws a list's icon on its color.
func badge(l model.List) string {
	icon := padIcon(l.Icon)
	bg, ok := parseHex(l.Color)
	if !ok {
		return icon
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(contrastFg(bg))).
		Render(icon)
}

// padIcon pads glyphs to two cells so names line up whether the icon is an
// emoji or a narrow character.
func padIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = glyphBullet()
	}
	if w := runewidth.StringWidth(icon); w < 2 {
		icon += strings.Repeat(" ", 2-w)
	}
	return icon
}

func parseHex(s string) (colorful.Color, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// contrastFg picks black or white text for the given background by lightness.
func contrastFg(bg colorful.Color) string {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}

// colorSwatch renders a short block of color for the list editor.
func colorSwatch(hex string, selected bool) string {
	c, ok := parseHex(hex)
	if !ok {
		return "??"
	}
	st := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Foreground(lipgloss.Color(contrastFg(c)))
	if selected {
		return st.Bold(true).Render("[" + glyphCheck() + "]")
	}
	return st.Render("   ")
}
