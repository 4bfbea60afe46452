package tui

import (
	"strings"
	"time"

	"todopanes/internal/model"
	"todopanes/internal/store"
	"todopanes/internal/validation"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

type todoField int

const (
	todoFieldTitle todoField = iota
	todoFieldNotes
)

// todoEditor is the state of the add/edit todo modal.
type todoEditor struct {
	// editing is set when orig is an existing todo.
	editing bool
	orig    model.Todo

	title textinput.Model
	notes textarea.Model
	focus todoField

	listName  string
	committed bool
	completed bool

	err string
}

func newTodoEditor() todoEditor {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Notes (markdown)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 10000
	ta.SetHeight(5)

	return todoEditor{title: ti, notes: ta}
}

func (e *todoEditor) openNew(listName string, committed bool) tea.Cmd {
	e.editing = false
	e.orig = model.Todo{}
	e.title.SetValue("")
	e.notes.SetValue("")
	e.listName = listName
	e.committed = committed
	e.completed = false
	e.err = ""
	return e.focusField(todoFieldTitle)
}

func (e *todoEditor) openEdit(t model.Todo) tea.Cmd {
	e.editing = true
	e.orig = t
	e.title.SetValue(t.Title)
	e.title.CursorEnd()
	e.notes.SetValue(t.Notes)
	e.listName = t.ListName
	e.committed = t.IsCommitted
	e.completed = t.Completed
	e.err = ""
	return e.focusField(todoFieldTitle)
}

func (e *todoEditor) focusField(f todoField) tea.Cmd {
	e.focus = f
	if f == todoFieldNotes {
		e.title.Blur()
		return e.notes.Focus()
	}
	e.notes.Blur()
	return e.title.Focus()
}

func (e *todoEditor) blur() {
	e.title.Blur()
	e.notes.Blur()
}

func (e *todoEditor) setWidth(w int) {
	if w < 10 {
		w = 10
	}
	e.title.Width = w
	e.notes.SetWidth(w)
}

func (e todoEditor) form() validation.TodoForm {
	return validation.TodoForm{
		Title:    e.title.Value(),
		Notes:    e.notes.Value(),
		ListName: e.listName,
	}.Normalize()
}

// blankTitle reports whether closing the editor should discard it.
func (e todoEditor) blankTitle() bool {
	return strings.TrimSpace(e.title.Value()) == ""
}

// updateField forwards a key to the focused input.
func (e *todoEditor) updateField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.focus == todoFieldNotes {
		e.notes, cmd = e.notes.Update(msg)
	} else {
		e.title, cmd = e.title.Update(msg)
	}
	e.err = ""
	return cmd
}

// action builds the dispatch for a validated form: AddTodo for a new todo,
// UpdateTodo with the full record otherwise.
func (e todoEditor) action(st *store.Store, f validation.TodoForm) store.Action {
	if !e.editing {
		t := st.NewTodo(f.Title, f.Notes, f.ListName, e.committed)
		t.Completed = e.completed
		return store.AddTodo{Todo: t}
	}
	t := e.orig
	t.Title = f.Title
	t.Notes = f.Notes
	t.ListName = f.ListName
	t.IsCommitted = e.committed
	t.Completed = e.completed
	return store.UpdateTodo{Todo: t}
}

func (e todoEditor) view(width int, st store.State, now time.Time) string {
	bodyW := modalBodyWidth(width)
	label := styleMuted()

	var b strings.Builder
	b.WriteString(label.Render("Title") + "\n")
	b.WriteString(e.title.View() + "\n\n")

	b.WriteString(label.Render("Notes") + "\n")
	if e.focus == todoFieldNotes || strings.TrimSpace(e.notes.Value()) == "" {
		b.WriteString(e.notes.View())
	} else {
		b.WriteString(normalizePane(renderNotes(e.notes.Value(), bodyW), bodyW, e.notes.Height()))
	}
	b.WriteString("\n\n")

	listLabel := e.listName
	if l, ok := st.FindList(e.listName); ok {
		listLabel = badge(l) + " " + l.Name
	} else if e.listName != "" {
		listLabel += label.Render(" (missing)")
	}
	b.WriteString(label.Render("List ") + listLabel + label.Render("   ctrl+l: change") + "\n")
	b.WriteString(glyphCheckbox(!e.committed) + " Backlog" + label.Render(" (ctrl+b)   "))
	b.WriteString(glyphCheckbox(e.completed) + " Completed" + label.Render(" (ctrl+t)") + "\n")

	if e.editing && e.orig.CreatedAt > 0 {
		added := humanize.RelTime(time.UnixMilli(e.orig.CreatedAt), now, "ago", "from now")
		b.WriteString(label.Render("Added "+added) + "\n")
	}
	if e.err != "" {
		b.WriteString(styleFlash(true).Render(e.err) + "\n")
	}

	help := "tab: field   esc/ctrl+s: save & close"
	if e.editing {
		help += "   ctrl+d: delete"
	}
	b.WriteString("\n" + label.Render(help))

	title := "New Todo"
	if e.editing {
		title = "Edit Todo"
	}
	return renderModalBox(width, title, b.String())
}
