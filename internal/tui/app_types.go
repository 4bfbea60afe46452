package tui

type view int

const (
	viewHome view = iota
	// viewList shows one list: committed todos on top, backlog below.
	viewList
	viewCompleted
)

func (v view) String() string {
	switch v {
	case viewList:
		return "list"
	case viewCompleted:
		return "completed"
	default:
		return "home"
	}
}

// pane is the focused half of the split.
type pane int

const (
	paneTop pane = iota
	paneBottom
)

type modalKind int

const (
	modalNone modalKind = iota
	modalEditTodo
	modalPickList
	modalEditList
	modalConfirmDeleteList
)

type flashDoneMsg struct{ seq int }

// dragState is the mouse gesture currently resizing the split, if any.
type dragState struct {
	active  bool
	originY int
}

func (m *appModel) closeAllModals() {
	m.modal = modalNone
	m.confirmFor = ""
	m.todoEd.blur()
	m.listEd.blur()
}
