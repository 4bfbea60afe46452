package store

import (
	"testing"

	"todopanes/internal/model"
)

func ids(todos []model.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func sameIDs(got []model.Todo, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func sampleState() State {
	return State{
		Lists: []model.List{model.DefaultList(), {Name: "Work"}},
		Todos: []model.Todo{
			{ID: "a", ListName: "Tasks", CreatedAt: 100, IsCommitted: true},
			{ID: "b", ListName: "Work", CreatedAt: 300, IsCommitted: true},
			{ID: "c", ListName: "Tasks", CreatedAt: 200, IsCommitted: false},
			{ID: "d", ListName: "Tasks", CreatedAt: 400, IsCommitted: true, Completed: true},
			{ID: "e", ListName: "Ghost", CreatedAt: 250, IsCommitted: true},
			{ID: "f", ListName: "Work", CreatedAt: 50, IsCommitted: false, Completed: true},
		},
	}
}

func TestState_CommittedTodos(t *testing.T) {
	got := sampleState().CommittedTodos()
	if !sameIDs(got, "b", "e", "a") {
		t.Fatalf("committed: got %v", ids(got))
	}
}

func TestState_ListTodosSplitsCommittedAndBacklog(t *testing.T) {
	s := sampleState()
	if got := s.ListTodos("Tasks", true); !sameIDs(got, "a") {
		t.Fatalf("Tasks committed: %v", ids(got))
	}
	if got := s.ListTodos("Tasks", false); !sameIDs(got, "c") {
		t.Fatalf("Tasks backlog: %v", ids(got))
	}
	if got := s.ListTodos("Work", false); len(got) != 0 {
		t.Fatalf("completed backlog todo should be hidden: %v", ids(got))
	}
}

func TestState_CompletedPseudoList(t *testing.T) {
	got := sampleState().CompletedTodos()
	if !sameIDs(got, "d", "f") {
		t.Fatalf("completed: %v", ids(got))
	}
}

func TestState_Counts(t *testing.T) {
	s := sampleState()
	if n := s.OpenCount("Tasks"); n != 2 {
		t.Fatalf("open Tasks = %d", n)
	}
	if n := s.CascadeCount("Tasks"); n != 3 {
		t.Fatalf("cascade Tasks = %d", n)
	}
}

func TestSortByRecency_StableAndCopying(t *testing.T) {
	in := []model.Todo{
		{ID: "x", CreatedAt: 10},
		{ID: "y", CreatedAt: 20},
		{ID: "z", CreatedAt: 10},
	}
	got := SortByRecency(in)
	if !sameIDs(got, "y", "x", "z") {
		t.Fatalf("order: %v", ids(got))
	}
	if in[0].ID != "x" || in[1].ID != "y" {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestState_Find(t *testing.T) {
	s := sampleState()
	if td, ok := s.FindTodo("c"); !ok || td.ListName != "Tasks" {
		t.Fatalf("FindTodo: %+v %v", td, ok)
	}
	if _, ok := s.FindTodo("zz"); ok {
		t.Fatalf("FindTodo found missing id")
	}
	if !s.HasList("Work") || s.HasList("Ghost") {
		t.Fatalf("HasList mismatch")
	}
}
