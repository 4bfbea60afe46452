package store

import (
	"strings"
	"sync"
	"time"

	"todopanes/internal/model"

	"go.uber.org/zap"
)

// Store owns the application state. It is created once by the root of the view
// tree and handed to whatever needs to read or dispatch; there is no package-level
// instance.
//
// Dispatch is the only write path. Every dispatch swaps in a new State and bumps
// Version, so readers holding an older snapshot keep a consistent view.
type Store struct {
	mu      sync.RWMutex
	state   State
	version uint64

	log     *zap.Logger
	now     func() time.Time
	newID   func() string
	lastTS  int64
	started bool
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDFunc(f func() string) Option {
	return func(s *Store) {
		if f != nil {
			s.newID = f
		}
	}
}

// WithState seeds the store with st instead of InitialState.
func WithState(st State) Option {
	return func(s *Store) {
		if st.Todos == nil {
			st.Todos = []model.Todo{}
		}
		if st.Lists == nil {
			st.Lists = []model.List{}
		}
		s.state = st
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		state: InitialState(),
		log:   zap.NewNop(),
		now:   time.Now,
		newID: newTodoID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Version increases by one on every Dispatch, including no-op ones.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	next := Apply(s.state, a)
	s.state = next
	s.version++
	v := s.version
	s.mu.Unlock()

	if a == nil {
		s.log.Debug("dispatch", zap.String("action", "<nil>"), zap.Uint64("version", v))
		return next
	}
	s.log.Debug("dispatch",
		zap.String("action", string(a.Type())),
		zap.Int("todos", len(next.Todos)),
		zap.Int("lists", len(next.Lists)),
		zap.Uint64("version", v),
	)
	return next
}

// NewTodo builds an AddTodo payload with a fresh id and the current time.
// CreatedAt never decreases across calls on the same Store, even if the clock
// steps backwards. Title validation is the caller's job.
func (s *Store) NewTodo(title, notes, listName string, committed bool) model.Todo {
	s.mu.Lock()
	ts := s.now().UnixMilli()
	if s.started && ts < s.lastTS {
		ts = s.lastTS
	}
	s.lastTS = ts
	s.started = true
	id := s.newID()
	s.mu.Unlock()

	return model.Todo{
		ID:          id,
		Title:       title,
		Notes:       notes,
		ListName:    strings.TrimSpace(listName),
		CreatedAt:   ts,
		IsCommitted: committed,
	}
}
