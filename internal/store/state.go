package store

import (
	"sort"

	"todopanes/internal/model"
)

// State is the whole application state. Treat it as immutable: Apply returns a
// new State rather than editing one in place.
type State struct {
	Todos []model.Todo `json:"todos"`
	Lists []model.List `json:"lists"`
}

// InitialState holds no todos and the default "Tasks" list.
func InitialState() State {
	return State{
		Todos: []model.Todo{},
		Lists: []model.List{model.DefaultList()},
	}
}

func (s State) FindTodo(id string) (model.Todo, bool) {
	for _, t := range s.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// FindList returns the first list with the given name.
func (s State) FindList(name string) (model.List, bool) {
	for _, l := range s.Lists {
		if l.Name == name {
			return l, true
		}
	}
	return model.List{}, false
}

func (s State) HasList(name string) bool {
	_, ok := s.FindList(name)
	return ok
}

// CommittedTodos is the home "Todos" working set: committed, open todos across
// all lists, newest first.
func (s State) CommittedTodos() []model.Todo {
	return SortByRecency(s.filter(func(t model.Todo) bool {
		return t.IsCommitted && !t.Completed
	}))
}

// ListTodos returns the open todos filed under name with the given commitment,
// newest first.
func (s State) ListTodos(name string, committed bool) []model.Todo {
	return SortByRecency(s.filter(func(t model.Todo) bool {
		return t.ListName == name && t.IsCommitted == committed && !t.Completed
	}))
}

// CompletedTodos is the Completed pseudo-list, newest first.
func (s State) CompletedTodos() []model.Todo {
	return SortByRecency(s.filter(func(t model.Todo) bool { return t.Completed }))
}

// OpenCount counts todos in list name that are not completed.
func (s State) OpenCount(name string) int {
	n := 0
	for _, t := range s.Todos {
		if t.ListName == name && !t.Completed {
			n++
		}
	}
	return n
}

// CascadeCount is how many todos DeleteList(name) would remove.
func (s State) CascadeCount(name string) int {
	n := 0
	for _, t := range s.Todos {
		if t.ListName == name {
			n++
		}
	}
	return n
}

func (s State) filter(keep func(model.Todo) bool) []model.Todo {
	var out []model.Todo
	for _, t := range s.Todos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortByRecency returns a copy of todos ordered by CreatedAt, newest first.
// Todos created in the same millisecond keep their relative insertion order.
func SortByRecency(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	copy(out, todos)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}
