package tui

import (
	"fmt"
	"time"

	"todopanes/internal/model"
	"todopanes/internal/store"
	"todopanes/internal/validation"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

const flashDuration = 2500 * time.Millisecond

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case reloadTickMsg:
		if m.storeChanged() {
			m.refresh()
		}
		return m, tickReload()

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		switch m.modal {
		case modalEditTodo:
			return m.updateTodoEditor(msg)
		case modalPickList:
			return m.updatePickList(msg)
		case modalEditList:
			return m.updateListEditor(msg)
		case modalConfirmDeleteList:
			return m.updateConfirmDeleteList(msg)
		}
		return m.updateKey(msg)
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch m.modal {
	case modalEditTodo:
		cmd = m.todoEd.updateField(msg)
	case modalEditList:
		cmd = m.listEd.updateField(msg)
	}
	return m, cmd
}

func (m *appModel) setFlash(text string, isErr bool) tea.Cmd {
	m.flashSeq++
	m.flash = text
	m.flashErr = isErr
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "backspace":
		if m.view != viewHome {
			m.goHome()
		}
		return m, nil

	case "tab", "shift+tab":
		if m.view != viewCompleted {
			if m.pane == paneTop {
				m.setPane(paneBottom)
			} else {
				m.setPane(paneTop)
			}
		}
		return m, nil

	case "K", "ctrl+up":
		m.nudgeSplit(-1)
		return m, nil
	case "J", "ctrl+down":
		m.nudgeSplit(1)
		return m, nil

	case "n":
		cmd := m.openNewTodo()
		return m, cmd

	case "a":
		if m.view == viewHome {
			m.modal = modalEditList
			cmd := m.listEd.open(modalNone)
			return m, cmd
		}
		return m, nil

	case "D":
		cmd := m.requestDeleteList()
		return m, cmd

	case " ", "x":
		if t, ok := m.focusedTodo(); ok {
			m.dispatch(store.ToggleTodo{ID: t.ID})
		}
		return m, nil

	case "d", "delete":
		if t, ok := m.focusedTodo(); ok {
			m.dispatch(store.DeleteTodo{ID: t.ID})
			cmd := m.setFlash(fmt.Sprintf("Deleted %q", t.Title), false)
			return m, cmd
		}
		return m, nil

	case "b":
		if t, ok := m.focusedTodo(); ok && !t.Completed {
			t.IsCommitted = !t.IsCommitted
			m.dispatch(store.UpdateTodo{Todo: t})
			where := "Todos"
			if !t.IsCommitted {
				where = "Backlog"
			}
			cmd := m.setFlash(fmt.Sprintf("Moved %q to %s", t.Title, where), false)
			return m, cmd
		}
		return m, nil

	case "y":
		if t, ok := m.focusedTodo(); ok {
			if err := copyToClipboard(t.Title); err != nil {
				m.log.Warn("clipboard", zap.Error(err))
				cmd := m.setFlash("Copy failed: "+err.Error(), true)
				return m, cmd
			}
			cmd := m.setFlash("Copied title", false)
			return m, cmd
		}
		return m, nil

	case "enter":
		if t, ok := m.focusedTodo(); ok {
			m.modal = modalEditTodo
			cmd := m.todoEd.openEdit(t)
			return m, cmd
		}
		if r, ok := m.listsList.SelectedItem().(listRow); ok && m.view == viewHome && m.pane == paneBottom {
			m.openListRow(r)
		}
		return m, nil
	}

	l := m.focusedList()
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m *appModel) nudgeSplit(dy float64) {
	if m.view == viewCompleted {
		return
	}
	m.split.Nudge(dy)
	m.resizeLists()
}

func (m *appModel) goHome() {
	name := m.openList
	wasCompleted := m.view == viewCompleted
	m.view = viewHome
	m.openList = ""
	m.refresh()
	m.resizeLists()
	m.setPane(paneBottom)
	if wasCompleted {
		name = model.CompletedListName
	}
	selectListRowByName(&m.listsList, name, wasCompleted)
}

func (m *appModel) openListRow(r listRow) {
	if r.completed {
		m.view = viewCompleted
	} else {
		m.view = viewList
		m.openList = r.list.Name
	}
	m.todosList.Select(0)
	m.backlogList.Select(0)
	m.refresh()
	m.resizeLists()
	m.setPane(paneTop)
}

// defaultListName is where a new todo goes when the user did not pick a list.
func (m appModel) defaultListName() string {
	if m.view == viewList {
		return m.openList
	}
	if m.view == viewHome && m.pane == paneBottom {
		if r, ok := m.listsList.SelectedItem().(listRow); ok && !r.completed {
			return r.list.Name
		}
	}
	st := m.store.State()
	if st.HasList(model.DefaultListName) || len(st.Lists) == 0 {
		return model.DefaultListName
	}
	return st.Lists[0].Name
}

func (m *appModel) openNewTodo() tea.Cmd {
	committed := !(m.view == viewList && m.pane == paneBottom)
	m.modal = modalEditTodo
	return m.todoEd.openNew(m.defaultListName(), committed)
}

// requestDeleteList asks to delete the list under the cursor (home) or the
// open list (list view).
func (m *appModel) requestDeleteList() tea.Cmd {
	name := ""
	switch m.view {
	case viewList:
		name = m.openList
	case viewHome:
		if m.pane != paneBottom {
			return nil
		}
		r, ok := m.listsList.SelectedItem().(listRow)
		if !ok || r.completed {
			return nil
		}
		name = r.list.Name
	default:
		return nil
	}
	if !m.opts.ConfirmDeleteList {
		return m.deleteList(name)
	}
	m.modal = modalConfirmDeleteList
	m.confirmFor = name
	m.confirmFocus = confirmFocusCancel
	return nil
}

func (m *appModel) deleteList(name string) tea.Cmd {
	n := m.store.State().CascadeCount(name)
	m.dispatch(store.DeleteList{Name: name})
	return m.setFlash(fmt.Sprintf("Deleted list %q (%d todos)", name, n), false)
}

func (m appModel) updateConfirmDeleteList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case "y":
		name := m.confirmFor
		m.closeAllModals()
		cmd := m.deleteList(name)
		return m, cmd
	case "enter":
		name := m.confirmFor
		confirmed := m.confirmFocus == confirmFocusConfirm
		m.closeAllModals()
		if confirmed {
			cmd := m.deleteList(name)
			return m, cmd
		}
	case "n", "esc":
		m.closeAllModals()
	}
	return m, nil
}

func (m appModel) updateTodoEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "ctrl+s":
		cmd := m.submitTodoEditor()
		return m, cmd
	case "tab", "shift+tab":
		if m.todoEd.focus == todoFieldTitle {
			cmd := m.todoEd.focusField(todoFieldNotes)
			return m, cmd
		}
		cmd := m.todoEd.focusField(todoFieldTitle)
		return m, cmd
	case "ctrl+b":
		m.todoEd.committed = !m.todoEd.committed
		return m, nil
	case "ctrl+t":
		m.todoEd.completed = !m.todoEd.completed
		return m, nil
	case "ctrl+l":
		m.todoEd.blur()
		m.openPicker(m.todoEd.listName)
		return m, nil
	case "ctrl+d":
		if !m.todoEd.editing {
			return m, nil
		}
		t := m.todoEd.orig
		m.closeAllModals()
		m.dispatch(store.DeleteTodo{ID: t.ID})
		cmd := m.setFlash(fmt.Sprintf("Deleted %q", t.Title), false)
		return m, cmd
	case "enter":
		// Enter in the title jumps to notes; in notes it is a newline.
		if m.todoEd.focus == todoFieldTitle {
			cmd := m.todoEd.focusField(todoFieldNotes)
			return m, cmd
		}
	}
	cmd := m.todoEd.updateField(msg)
	return m, cmd
}

// submitTodoEditor closes the editor, dispatching the edit unless the title is
// blank. Invalid input keeps the editor open with the error shown.
func (m *appModel) submitTodoEditor() tea.Cmd {
	if m.todoEd.blankTitle() {
		m.closeAllModals()
		return nil
	}
	f := m.todoEd.form()
	if err := validation.Todo(f); err != nil {
		m.log.Warn("todo editor", zap.Error(err))
		m.todoEd.err = err.Error()
		return nil
	}
	a := m.todoEd.action(m.store, f)
	m.log.Debug("todo editor submit", zap.String("action", string(a.Type())), zap.String("list", f.ListName))
	m.closeAllModals()
	m.dispatch(a)
	if add, ok := a.(store.AddTodo); ok {
		selectTodoByID(&m.todosList, add.Todo.ID)
		selectTodoByID(&m.backlogList, add.Todo.ID)
	}
	return nil
}

func (m *appModel) openPicker(current string) {
	m.modal = modalPickList
	m.pickList.SetItems(listChoices(m.store.State(), current))
	m.pickList.Select(0)
	for i, it := range m.pickList.Items() {
		if c, ok := it.(listChoice); ok && c.current {
			m.pickList.Select(i)
			break
		}
	}
	m.resizeLists()
}

func (m appModel) updatePickList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.modal = modalEditTodo
		cmd := m.todoEd.focusField(m.todoEd.focus)
		return m, cmd
	case "enter":
		if c, ok := m.pickList.SelectedItem().(listChoice); ok {
			m.todoEd.listName = c.list.Name
		}
		m.modal = modalEditTodo
		cmd := m.todoEd.focusField(m.todoEd.focus)
		return m, cmd
	case "a":
		m.modal = modalEditList
		cmd := m.listEd.open(modalPickList)
		return m, cmd
	}
	var cmd tea.Cmd
	m.pickList, cmd = m.pickList.Update(msg)
	return m, cmd
}

func (m appModel) updateListEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		cmd := m.closeListEditor("")
		return m, cmd
	case "tab":
		cmd := m.listEd.cycleFocus(1)
		return m, cmd
	case "shift+tab":
		cmd := m.listEd.cycleFocus(-1)
		return m, cmd
	case "enter":
		f := m.listEd.form()
		if err := validation.List(f); err != nil {
			m.log.Warn("list editor", zap.Error(err))
			m.listEd.err = err.Error()
			return m, nil
		}
		dup := m.store.State().HasList(f.Name)
		m.dispatch(store.AddList{List: model.List{Name: f.Name, Icon: f.Icon, Color: f.Color}})
		cmd := m.closeListEditor(f.Name)
		if dup {
			flash := m.setFlash(fmt.Sprintf("A list named %q already exists", f.Name), true)
			return m, tea.Batch(cmd, flash)
		}
		return m, cmd
	}
	if m.listEd.moveInGrid(key) {
		return m, nil
	}
	cmd := m.listEd.updateField(msg)
	return m, cmd
}

// closeListEditor returns to where the editor was opened from. created is the
// new list's name, or empty when cancelled.
func (m *appModel) closeListEditor(created string) tea.Cmd {
	m.listEd.blur()
	switch m.listEd.returnTo {
	case modalPickList:
		current := m.todoEd.listName
		if created != "" {
			current = created
			m.todoEd.listName = created
		}
		m.openPicker(current)
		return nil
	default:
		m.closeAllModals()
		if created != "" && m.view == viewHome {
			m.setPane(paneBottom)
			selectListRowByName(&m.listsList, created, false)
		}
		return nil
	}
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != modalNone {
		return m, nil
	}

	if m.drag.active {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.split.Move(float64(msg.Y - m.drag.originY))
			m.resizeLists()
		case tea.MouseActionRelease:
			m.split.Move(float64(msg.Y - m.drag.originY))
			m.split.End()
			m.drag = dragState{}
			m.resizeLists()
			m.log.Debug("split drag end", zap.Float64("top", m.split.Top()))
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		l := m.focusedList()
		l.CursorUp()
		return m, nil
	case tea.MouseButtonWheelDown:
		l := m.focusedList()
		l.CursorDown()
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	grip := m.gripRow()
	if grip >= 0 && msg.Y == grip {
		if msg.X < xansi.StringWidth(newTodoLabel) {
			cmd := m.openNewTodo()
			return m, cmd
		}
		m.drag = dragState{active: true, originY: msg.Y}
		m.split.Start()
		m.log.Debug("split drag start", zap.Int("y", msg.Y), zap.Float64("top", m.split.Top()))
		return m, nil
	}
	return m.clickPanel(msg.Y)
}

// clickPanel focuses the panel under row y and selects the row clicked.
func (m appModel) clickPanel(y int) (tea.Model, tea.Cmd) {
	if m.view == viewCompleted {
		selectVisibleRow(&m.todosList, y-panelChrome)
		return m, nil
	}
	top, bottom := m.split.Rows()
	switch {
	case y < top:
		m.setPane(paneTop)
		selectVisibleRow(&m.todosList, y-panelChrome)
	case y > top && y <= top+bottom:
		m.setPane(paneBottom)
		l := &m.listsList
		if m.view == viewList {
			l = &m.backlogList
		}
		selectVisibleRow(l, y-top-1-panelChrome)
	}
	return m, nil
}
