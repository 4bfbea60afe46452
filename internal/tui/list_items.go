package tui

import (
	"todopanes/internal/model"
	"todopanes/internal/store"

	"github.com/charmbracelet/bubbles/list"
)

type todoItem struct {
	todo model.Todo
	// list is the todo's list, when it still exists.
	list    model.List
	hasList bool
	// showList prints the list name next to the title (home and Completed views).
	showList bool
}

func (i todoItem) FilterValue() string { return i.todo.Title }
func (i todoItem) Title() string       { return i.todo.Title }

// listRow is a row of the Lists panel. A completed row stands for the
// Completed pseudo-list rather than a stored list.
type listRow struct {
	list      model.List
	count     int
	completed bool
}

func (r listRow) FilterValue() string { return r.list.Name }
func (r listRow) Title() string       { return r.list.Name }

// listChoice is a row of the list picker modal.
type listChoice struct {
	list    model.List
	current bool
}

func (c listChoice) FilterValue() string { return c.list.Name }
func (c listChoice) Title() string       { return c.list.Name }

func newList(title string, delegate list.ItemDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	// Panels draw their own header and footer, so keep list chrome off.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	// q, esc and the paging letters mean something else here.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.PrevPage.SetKeys("pgup")
	l.KeyMap.NextPage.SetKeys("pgdown")
	l.KeyMap.CursorUp.SetKeys("up", "k", "ctrl+p")
	l.KeyMap.CursorDown.SetKeys("down", "j", "ctrl+n")
	l.KeyMap.GoToStart.SetKeys("home", "g", "<")
	l.KeyMap.GoToEnd.SetKeys("end", "G", ">")
	return l
}

func todoItems(st store.State, todos []model.Todo, showList bool) []list.Item {
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		l, ok := st.FindList(t.ListName)
		items = append(items, todoItem{todo: t, list: l, hasList: ok, showList: showList})
	}
	return items
}

func listRows(st store.State) []list.Item {
	items := make([]list.Item, 0, len(st.Lists)+1)
	for _, l := range st.Lists {
		items = append(items, listRow{list: l, count: st.OpenCount(l.Name)})
	}
	items = append(items, listRow{
		list:      model.List{Name: model.CompletedListName},
		count:     len(st.CompletedTodos()),
		completed: true,
	})
	return items
}

func listChoices(st store.State, current string) []list.Item {
	items := make([]list.Item, 0, len(st.Lists))
	for _, l := range st.Lists {
		items = append(items, listChoice{list: l, current: l.Name == current})
	}
	return items
}

func selectedTodo(l list.Model) (model.Todo, bool) {
	if it, ok := l.SelectedItem().(todoItem); ok {
		return it.todo, true
	}
	return model.Todo{}, false
}

// selectTodoByID keeps the cursor on the same todo after a refresh.
func selectTodoByID(l *list.Model, id string) bool {
	for i, it := range l.Items() {
		if ti, ok := it.(todoItem); ok && ti.todo.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}

func selectListRowByName(l *list.Model, name string, completed bool) bool {
	for i, it := range l.Items() {
		if r, ok := it.(listRow); ok && r.completed == completed && r.list.Name == name {
			l.Select(i)
			return true
		}
	}
	return false
}

// selectVisibleRow selects the row drawn at line row of the list body.
func selectVisibleRow(l *list.Model, row int) bool {
	if row < 0 {
		return false
	}
	idx := l.Paginator.Page*l.Paginator.PerPage + row
	if idx >= len(l.Items()) {
		return false
	}
	l.Select(idx)
	return true
}
