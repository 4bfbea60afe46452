package tui

import (
	"strings"

	"todopanes/internal/model"
	"todopanes/internal/validation"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type listField int

const (
	listFieldName listField = iota
	listFieldIcons
	listFieldColors
)

const (
	iconGridCols  = 8
	colorGridCols = 6
)

// listEditor is the state of the new-list modal.
type listEditor struct {
	name  textinput.Model
	icon  int
	color int
	focus listField
	err   string

	// returnTo is the modal to go back to when the editor closes.
	returnTo modalKind
}

func newListEditor() listEditor {
	ti := textinput.New()
	ti.Placeholder = "List name"
	ti.Prompt = ""
	ti.CharLimit = 60
	return listEditor{name: ti}
}

func (e *listEditor) open(returnTo modalKind) tea.Cmd {
	e.name.SetValue("")
	e.icon = max(0, model.IndexOf(model.ListIcons, model.NewListIcon))
	e.color = 0
	e.err = ""
	e.returnTo = returnTo
	e.focus = listFieldName
	return e.name.Focus()
}

func (e *listEditor) blur() {
	e.name.Blur()
}

func (e *listEditor) setWidth(w int) {
	if w < 10 {
		w = 10
	}
	e.name.Width = w
}

func (e *listEditor) cycleFocus(delta int) tea.Cmd {
	n := int(listFieldColors) + 1
	e.focus = listField((int(e.focus) + delta + n) % n)
	if e.focus == listFieldName {
		return e.name.Focus()
	}
	e.name.Blur()
	return nil
}

// moveInGrid moves the icon or color selection by arrow key. It reports whether
// the key was consumed.
func (e *listEditor) moveInGrid(key string) bool {
	var idx *int
	var n, cols int
	switch e.focus {
	case listFieldIcons:
		idx, n, cols = &e.icon, len(model.ListIcons), iconGridCols
	case listFieldColors:
		idx, n, cols = &e.color, len(model.ListColors), colorGridCols
	default:
		return false
	}
	next := *idx
	switch key {
	case "left", "h":
		next--
	case "right", "l":
		next++
	case "up", "k":
		next -= cols
	case "down", "j":
		next += cols
	default:
		return false
	}
	if next >= 0 && next < n {
		*idx = next
	}
	return true
}

func (e *listEditor) updateField(msg tea.Msg) tea.Cmd {
	if e.focus != listFieldName {
		return nil
	}
	var cmd tea.Cmd
	e.name, cmd = e.name.Update(msg)
	e.err = ""
	return cmd
}

func (e listEditor) form() validation.ListForm {
	f := validation.ListForm{Name: e.name.Value()}
	if e.icon >= 0 && e.icon < len(model.ListIcons) {
		f.Icon = model.ListIcons[e.icon]
	}
	if e.color >= 0 && e.color < len(model.ListColors) {
		f.Color = model.ListColors[e.color]
	}
	return f.Normalize()
}

func (e listEditor) view(width int) string {
	label := styleMuted()
	focusMark := func(f listField, s string) string {
		if e.focus == f {
			return styleHeader().Render(s)
		}
		return label.Render(s)
	}

	var b strings.Builder
	b.WriteString(focusMark(listFieldName, "Name") + "\n")
	b.WriteString(e.name.View() + "\n\n")

	b.WriteString(focusMark(listFieldIcons, "Icon") + "\n")
	for i, icon := range model.ListIcons {
		cell := " " + padIcon(icon) + " "
		if i == e.icon {
			if e.focus == listFieldIcons {
				cell = styleSelected().Render(cell)
			} else {
				cell = "[" + padIcon(icon) + "]"
			}
		}
		b.WriteString(cell)
		if (i+1)%iconGridCols == 0 || i == len(model.ListIcons)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(focusMark(listFieldColors, "Color") + "\n")
	for i, c := range model.ListColors {
		b.WriteString(colorSwatch(c, i == e.color) + " ")
		if (i+1)%colorGridCols == 0 {
			b.WriteString("\n")
		}
	}

	f := e.form()
	preview := badge(model.List{Name: f.Name, Icon: f.Icon, Color: f.Color}) + " " + f.Name
	b.WriteString("\n" + label.Render("Preview ") + preview + "\n")
	if e.err != "" {
		b.WriteString(styleFlash(true).Render(e.err) + "\n")
	}
	b.WriteString("\n" + label.Render("tab: field   arrows: pick   enter: create   esc: cancel"))
	return renderModalBox(width, "New List", b.String())
}
