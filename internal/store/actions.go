package store

import "todopanes/internal/model"

// ActionType is the wire tag of an action.
type ActionType string

const (
	ActionAddTodo    ActionType = "ADD_TODO"
	ActionUpdateTodo ActionType = "UPDATE_TODO"
	ActionDeleteTodo ActionType = "DELETE_TODO"
	ActionToggleTodo ActionType = "TOGGLE_TODO"
	ActionAddList    ActionType = "ADD_LIST"
	ActionDeleteList ActionType = "DELETE_LIST"
)

// Action is a tagged request to transform State. See Apply.
type Action interface {
	Type() ActionType
}

// AddTodo appends Todo. The caller supplies ID and CreatedAt (see Store.NewTodo).
type AddTodo struct{ Todo model.Todo }

// UpdateTodo replaces the todo with the same ID by the full record.
type UpdateTodo struct{ Todo model.Todo }

type DeleteTodo struct{ ID string }

// ToggleTodo flips Completed on the todo with ID.
type ToggleTodo struct{ ID string }

type AddList struct{ List model.List }

// DeleteList removes the named list and every todo filed under it.
type DeleteList struct{ Name string }

// Unknown carries a tag that was decoded but is not understood. Apply ignores it.
type Unknown struct{ Tag string }

func (AddTodo) Type() ActionType    { return ActionAddTodo }
func (UpdateTodo) Type() ActionType { return ActionUpdateTodo }
func (DeleteTodo) Type() ActionType { return ActionDeleteTodo }
func (ToggleTodo) Type() ActionType { return ActionToggleTodo }
func (AddList) Type() ActionType    { return ActionAddList }
func (DeleteList) Type() ActionType { return ActionDeleteList }
func (u Unknown) Type() ActionType  { return ActionType(u.Tag) }
