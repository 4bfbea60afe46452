package tui

import (
	"time"

	"todopanes/internal/layout"
	"todopanes/internal/model"
	"todopanes/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"
)

// Options are the interactive preferences resolved by the CLI.
type Options struct {
	Theme             string
	Glyphs            string
	ConfirmDeleteList bool
	Logger            *zap.Logger
	// Now is the clock used for "added … ago" labels.
	Now func() time.Time
}

// paneFocus is shared by pointer with the row delegates so copies of appModel
// still drive the same selection highlight.
type paneFocus struct {
	top    bool
	bottom bool
}

type appModel struct {
	store *store.Store
	log   *zap.Logger
	opts  Options

	width  int
	height int
	sized  bool
	split  layout.Split

	view     view
	pane     pane
	openList string

	// todosList is the top panel of every view: committed todos on home and on
	// a list, all completed todos on the Completed view.
	todosList   list.Model
	listsList   list.Model
	backlogList list.Model
	pickList    list.Model
	focus       *paneFocus

	drag dragState

	modal        modalKind
	todoEd       todoEditor
	listEd       listEditor
	confirmFor   string
	confirmFocus confirmModalFocus

	flash    string
	flashErr bool
	flashSeq int

	// seenVersion is the store version the lists were last built from.
	seenVersion uint64
}

func newAppModel(st *store.Store, opts Options) appModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	focus := &paneFocus{top: true}
	pickFocused := true

	m := appModel{
		store:       st,
		log:         opts.Logger,
		opts:        opts,
		split:       layout.NewSplit(layout.NewBounds(24, layout.TerminalMetrics)),
		view:        viewHome,
		pane:        paneTop,
		todosList:   newList("Todos", newRowDelegate(&focus.top)),
		listsList:   newList("My Lists", newRowDelegate(&focus.bottom)),
		backlogList: newList("Backlog", newRowDelegate(&focus.bottom)),
		pickList:    newList("Lists", newRowDelegate(&pickFocused)),
		focus:       focus,
		todoEd:      newTodoEditor(),
		listEd:      newListEditor(),
	}
	m.refresh()
	return m
}

func (m *appModel) setPane(p pane) {
	if m.view == viewCompleted {
		p = paneTop
	}
	m.pane = p
	m.focus.top = p == paneTop
	m.focus.bottom = p == paneBottom
}

// focusedList is the list that receives navigation keys.
func (m *appModel) focusedList() *list.Model {
	if m.pane == paneBottom {
		switch m.view {
		case viewHome:
			return &m.listsList
		case viewList:
			return &m.backlogList
		}
	}
	return &m.todosList
}

// focusedTodo is the selected todo of the focused pane, if it shows todos.
func (m *appModel) focusedTodo() (model.Todo, bool) {
	return selectedTodo(*m.focusedList())
}

// refresh rebuilds every list from the current store state, keeping the
// cursor on the same todo or list where it still exists.
func (m *appModel) refresh() {
	st := m.store.State()
	m.seenVersion = m.store.Version()

	if m.view == viewList && !st.HasList(m.openList) {
		m.view = viewHome
		m.openList = ""
		m.setPane(paneBottom)
	}

	topID := ""
	if t, ok := selectedTodo(m.todosList); ok {
		topID = t.ID
	}
	topIdx := m.todosList.Index()

	switch m.view {
	case viewHome:
		m.todosList.SetItems(todoItems(st, st.CommittedTodos(), true))

		var rowName string
		var rowCompleted bool
		if r, ok := m.listsList.SelectedItem().(listRow); ok {
			rowName, rowCompleted = r.list.Name, r.completed
		}
		rowIdx := m.listsList.Index()
		m.listsList.SetItems(listRows(st))
		if !selectListRowByName(&m.listsList, rowName, rowCompleted) {
			m.listsList.Select(clampIndex(rowIdx, len(m.listsList.Items())))
		}
	case viewList:
		backID := ""
		if t, ok := selectedTodo(m.backlogList); ok {
			backID = t.ID
		}
		backIdx := m.backlogList.Index()
		m.todosList.SetItems(todoItems(st, st.ListTodos(m.openList, true), false))
		m.backlogList.SetItems(todoItems(st, st.ListTodos(m.openList, false), false))
		if !selectTodoByID(&m.backlogList, backID) {
			m.backlogList.Select(clampIndex(backIdx, len(m.backlogList.Items())))
		}
	case viewCompleted:
		m.todosList.SetItems(todoItems(st, st.CompletedTodos(), true))
	}
	if !selectTodoByID(&m.todosList, topID) {
		m.todosList.Select(clampIndex(topIdx, len(m.todosList.Items())))
	}
}

// dispatch sends a to the store and rebuilds the view from the result.
func (m *appModel) dispatch(a store.Action) {
	m.store.Dispatch(a)
	m.refresh()
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
