package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// rowDelegate renders one-line rows for todos, lists and list choices. The
// selection highlight is only drawn when the owning pane has focus.
type rowDelegate struct {
	focused *bool
}

func newRowDelegate(focused *bool) rowDelegate {
	return rowDelegate{focused: focused}
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	width := m.Width()
	if width < 4 {
		return
	}
	selected := index == m.Index() && (d.focused == nil || *d.focused)

	var left, right string
	switch it := item.(type) {
	case todoItem:
		left, right = renderTodoRow(it)
	case listRow:
		left, right = renderListRow(it)
	case listChoice:
		left = badge(it.list) + " " + it.list.Name
		if it.current {
			right = glyphCheck()
		}
	default:
		left = fmt.Sprint(item)
	}

	line := " " + left
	if right != "" {
		gap := width - xansi.StringWidth(line) - xansi.StringWidth(right) - 1
		if gap < 1 {
			gap = 1
		}
		line += strings.Repeat(" ", gap) + right
	}
	line = fitLine(line, width)
	if selected {
		line = styleSelected().Render(xansi.Strip(line))
	}
	fmt.Fprint(w, line)
}

func renderTodoRow(it todoItem) (string, string) {
	box := glyphCheckbox(it.todo.Completed)
	title := it.todo.Title
	if it.todo.Completed {
		title = styleMuted().Strikethrough(true).Render(title)
	}
	left := box + " " + title
	if strings.TrimSpace(it.todo.Notes) != "" {
		left += " " + styleMuted().Render(glyphBullet())
	}
	if !it.showList {
		return left, ""
	}
	name := it.todo.ListName
	if it.hasList {
		return left, styleMuted().Render(name) + " " + badge(it.list)
	}
	return left, styleMuted().Render(name)
}

func renderListRow(r listRow) (string, string) {
	count := styleMuted().Render(strconv.Itoa(r.count))
	if r.completed {
		icon := lipgloss.NewStyle().Bold(true).Render(padIcon(glyphCheck()))
		return icon + " " + r.list.Name, count
	}
	return badge(r.list) + " " + r.list.Name, count
}
