package store

import "github.com/google/uuid"

func newTodoID() string {
	return uuid.NewString()
}
