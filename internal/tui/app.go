package tui

import (
	"strconv"
	"strings"
	"time"

	"todopanes/internal/layout"
	"todopanes/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// panelChrome is the header line plus the rule under it.
const panelChrome = 2

const newTodoLabel = " + New Todo "

type reloadTickMsg struct{}

func (m appModel) Init() tea.Cmd { return tickReload() }

// tickReload polls the store so dispatches made outside the TUI show up.
func tickReload() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func (m appModel) storeChanged() bool {
	return m.store.Version() != m.seenVersion
}

// resize recomputes the split bounds for the terminal height, keeping the
// current split position where it still fits.
func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height
	b := layout.NewBounds(float64(height), layout.TerminalMetrics)
	if !m.sized {
		m.split = layout.NewSplit(b)
		m.sized = true
	} else {
		m.split.Resize(b)
	}
	m.resizeLists()
}

func (m *appModel) resizeLists() {
	w := m.width
	if m.view == viewCompleted {
		m.todosList.SetSize(w, max(0, m.height-1-panelChrome))
	} else {
		top, bottom := m.split.Rows()
		m.todosList.SetSize(w, max(0, top-panelChrome))
		m.listsList.SetSize(w, max(0, bottom-panelChrome))
		m.backlogList.SetSize(w, max(0, bottom-panelChrome))
	}
	bodyW := modalBodyWidth(w)
	m.pickList.SetSize(bodyW, max(3, min(len(m.pickList.Items()), m.height-10)))
	m.todoEd.setWidth(bodyW)
	m.listEd.setWidth(bodyW)
}

// gripRow is the screen row of the drag handle, or -1 when the view has none.
func (m appModel) gripRow() int {
	if m.view == viewCompleted {
		return -1
	}
	top, _ := m.split.Rows()
	return top
}

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.modal != modalNone {
		return normalizePane(placeModal(m.width, m.height, m.viewModal()), m.width, m.height)
	}

	var body string
	if m.view == viewCompleted {
		body = m.renderPanel(m.todosList, model.CompletedListName, strconv.Itoa(len(m.todosList.Items())), m.height-1, true)
	} else {
		top, bottom := m.split.Rows()
		topTitle, bottomTitle := "Todos", "My Lists"
		bottomList := m.listsList
		if m.view == viewList {
			if l, ok := m.store.State().FindList(m.openList); ok {
				topTitle = badge(l) + " " + l.Name
			} else {
				topTitle = m.openList
			}
			bottomTitle = "Backlog"
			bottomList = m.backlogList
		}
		topRight := strconv.Itoa(len(m.todosList.Items()))
		body = strings.Join([]string{
			m.renderPanel(m.todosList, topTitle, topRight, top, m.pane == paneTop),
			m.renderGrip(),
			m.renderPanel(bottomList, bottomTitle, strconv.Itoa(len(bottomList.Items())), bottom, m.pane == paneBottom),
		}, "\n")
	}
	return normalizePane(body+"\n"+m.renderFooter(), m.width, m.height)
}

func (m appModel) renderPanel(l list.Model, title, right string, height int, focused bool) string {
	if height <= 0 {
		return ""
	}
	head := styleHeader()
	if !focused {
		head = head.Foreground(colorMuted)
	}
	header := " " + head.Render(title)
	if right != "" {
		gap := m.width - xansi.StringWidth(header) - xansi.StringWidth(right) - 1
		header += strings.Repeat(" ", max(1, gap)) + styleMuted().Render(right)
	}
	rule := lipgloss.NewStyle().Foreground(colorPanelRuleFg).Render(strings.Repeat(glyphHRule(), max(0, m.width)))

	content := header + "\n" + rule
	if height > panelChrome {
		rows := l.View()
		if len(l.Items()) == 0 {
			rows = " " + styleMuted().Render(emptyHint(m.view, title))
		}
		content += "\n" + rows
	}
	return normalizePane(content, m.width, height)
}

func emptyHint(v view, title string) string {
	switch {
	case v == viewCompleted:
		return "Nothing completed yet"
	case title == "Backlog":
		return "Backlog is empty"
	case title == "My Lists":
		return "No lists. Press a to add one"
	default:
		return "No todos. Press n to add one"
	}
}

// renderGrip draws the row between the panels: the new-todo button on the
// left and the drag handle on the right.
func (m appModel) renderGrip() string {
	btn := lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true).Render(newTodoLabel)
	bar := glyphMoveBar()
	if m.drag.active {
		bar = styleSelected().Render(bar)
	}
	gap := m.width - xansi.StringWidth(btn) - xansi.StringWidth(bar) - 1
	line := btn + strings.Repeat(" ", max(1, gap)) + bar + " "
	return lipgloss.NewStyle().Foreground(colorGripFg).Background(colorGripBg).Render(fitLine(line, m.width))
}

func (m appModel) renderFooter() string {
	if m.flash != "" {
		return " " + styleFlash(m.flashErr).Render(m.flash)
	}
	var keys []string
	switch m.view {
	case viewHome:
		keys = []string{"n new", "space done", "enter open", "a list", "D del list", "tab pane", "K/J resize", "q quit"}
	case viewList:
		keys = []string{"n new", "space done", "b backlog", "enter edit", "D del list", "tab pane", "esc back"}
	case viewCompleted:
		keys = []string{"space reopen", "d delete", "enter edit", "esc back"}
	}
	return " " + styleMuted().Render(strings.Join(keys, " "+glyphSep()+" "))
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalEditTodo:
		return m.todoEd.view(m.width, m.store.State(), m.opts.Now())
	case modalPickList:
		help := styleMuted().Render("enter: choose   a: new list   esc: back")
		return renderModalBox(m.width, "Move to list", m.pickList.View()+"\n\n"+help)
	case modalEditList:
		return m.listEd.view(m.width)
	case modalConfirmDeleteList:
		body := deleteListBody(m.confirmFor, m.store.State().CascadeCount(m.confirmFor))
		return renderConfirmModal(m.width, "Delete list", body, "Delete", "Cancel", m.confirmFocus)
	}
	return ""
}
