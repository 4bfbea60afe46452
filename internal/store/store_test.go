package store

import (
	"fmt"
	"testing"
	"time"

	"todopanes/internal/model"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStore_StartsFromInitialState(t *testing.T) {
	s := New()
	st := s.State()
	if len(st.Todos) != 0 || len(st.Lists) != 1 || st.Lists[0] != model.DefaultList() {
		t.Fatalf("unexpected initial state: %+v", st)
	}
	if s.Version() != 0 {
		t.Fatalf("expected version 0, got %d", s.Version())
	}
}

func TestStore_DispatchSwapsSnapshot(t *testing.T) {
	s := New()
	before := s.State()

	td := s.NewTodo("Buy milk", "", "Tasks", true)
	after := s.Dispatch(AddTodo{Todo: td})

	if len(before.Todos) != 0 {
		t.Fatalf("old snapshot changed: %+v", before.Todos)
	}
	if len(after.Todos) != 1 || s.State().Todos[0].ID != td.ID {
		t.Fatalf("dispatch result not stored: %+v", s.State())
	}
	if s.Version() != 1 {
		t.Fatalf("expected version 1, got %d", s.Version())
	}

	s.Dispatch(DeleteTodo{ID: "missing"})
	if s.Version() != 2 {
		t.Fatalf("no-op dispatch should still bump version, got %d", s.Version())
	}
}

func TestStore_NewTodoIDsAndTimestamps(t *testing.T) {
	clock := []time.Time{
		time.UnixMilli(5000),
		time.UnixMilli(4000), // clock stepped back
		time.UnixMilli(7000),
	}
	i := 0
	n := 0
	s := New(
		WithClock(func() time.Time { c := clock[i]; i++; return c }),
		WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)

	a := s.NewTodo("a", "", " Tasks ", true)
	b := s.NewTodo("b", "note", "Tasks", false)
	c := s.NewTodo("c", "", "Tasks", true)

	if a.ID != "id-1" || b.ID != "id-2" || c.ID != "id-3" {
		t.Fatalf("unexpected ids: %s %s %s", a.ID, b.ID, c.ID)
	}
	if a.CreatedAt != 5000 || b.CreatedAt != 5000 || c.CreatedAt != 7000 {
		t.Fatalf("createdAt must not decrease: %d %d %d", a.CreatedAt, b.CreatedAt, c.CreatedAt)
	}
	if a.ListName != "Tasks" || b.IsCommitted || b.Notes != "note" || a.Completed {
		t.Fatalf("unexpected fields: %+v %+v", a, b)
	}
}

func TestStore_DefaultIDsAreUnique(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := s.NewTodo("x", "", "Tasks", true).ID
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}

func TestStore_WithStateSeedsSnapshot(t *testing.T) {
	s := New(WithState(State{Lists: []model.List{{Name: "Work"}}}))
	st := s.State()
	if st.Todos == nil || len(st.Todos) != 0 {
		t.Fatalf("expected empty non-nil todos, got %#v", st.Todos)
	}
	if len(st.Lists) != 1 || st.Lists[0].Name != "Work" {
		t.Fatalf("unexpected lists: %+v", st.Lists)
	}
}

func TestStore_LogsDispatches(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(WithLogger(zap.New(core)))

	s.Dispatch(AddList{List: model.List{Name: "Work"}})
	s.Dispatch(Unknown{Tag: "NOPE"})

	entries := logs.FilterMessage("dispatch").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 dispatch log entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["action"]; got != "ADD_LIST" {
		t.Fatalf("expected action=ADD_LIST, got %v", got)
	}
	if got := entries[1].ContextMap()["action"]; got != "NOPE" {
		t.Fatalf("expected action=NOPE, got %v", got)
	}
}
