package store

import "todopanes/internal/model"

// Apply returns the state that results from applying a to s.
//
// Apply is pure and total: it never mutates s (including the backing arrays of
// s.Todos and s.Lists), never panics, and returns s unchanged for actions it does
// not recognise. Collections an action does not touch are shared with s.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case AddTodo:
		s.Todos = appendTodo(s.Todos, a.Todo)
	case UpdateTodo:
		s.Todos = mapTodos(s.Todos, a.Todo.ID, func(model.Todo) model.Todo { return a.Todo })
	case DeleteTodo:
		s.Todos = filterTodos(s.Todos, func(t model.Todo) bool { return t.ID != a.ID })
	case ToggleTodo:
		s.Todos = mapTodos(s.Todos, a.ID, func(t model.Todo) model.Todo {
			t.Completed = !t.Completed
			return t
		})
	case AddList:
		lists := make([]model.List, 0, len(s.Lists)+1)
		lists = append(lists, s.Lists...)
		s.Lists = append(lists, a.List)
	case DeleteList:
		lists := make([]model.List, 0, len(s.Lists))
		for _, l := range s.Lists {
			if l.Name != a.Name {
				lists = append(lists, l)
			}
		}
		s.Lists = lists
		s.Todos = filterTodos(s.Todos, func(t model.Todo) bool { return t.ListName != a.Name })
	}
	return s
}

func appendTodo(todos []model.Todo, t model.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos)+1)
	out = append(out, todos...)
	return append(out, t)
}

// mapTodos copies todos, replacing the element with the given id by f(element).
func mapTodos(todos []model.Todo, id string, f func(model.Todo) model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	for i, t := range todos {
		if t.ID == id {
			t = f(t)
		}
		out[i] = t
	}
	return out
}

func filterTodos(todos []model.Todo, keep func(model.Todo) bool) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
