package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"todopanes/internal/model"
)

// envelope is the wire shape of an action: {"type": "...", "payload": ...}.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EncodeAction marshals a into its envelope form.
func EncodeAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, errors.New("nil action")
	}
	var payload any
	switch a := a.(type) {
	case AddTodo:
		payload = a.Todo
	case UpdateTodo:
		payload = a.Todo
	case DeleteTodo:
		payload = a.ID
	case ToggleTodo:
		payload = a.ID
	case AddList:
		payload = a.List
	case DeleteList:
		payload = a.Name
	case Unknown:
		payload = nil
	default:
		return nil, fmt.Errorf("unsupported action %T", a)
	}
	env := envelope{Type: string(a.Type())}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Payload = b
	}
	return json.Marshal(env)
}

// DecodeAction parses an envelope. A well-formed envelope with an unrecognised
// type decodes to Unknown without error; Apply ignores it.
func DecodeAction(b []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	tag := strings.TrimSpace(env.Type)
	if tag == "" {
		return nil, errors.New("decode action: missing type")
	}

	switch ActionType(tag) {
	case ActionAddTodo, ActionUpdateTodo:
		var t model.Todo
		if err := decodePayload(tag, env.Payload, &t); err != nil {
			return nil, err
		}
		if ActionType(tag) == ActionAddTodo {
			return AddTodo{Todo: t}, nil
		}
		return UpdateTodo{Todo: t}, nil
	case ActionDeleteTodo, ActionToggleTodo, ActionDeleteList:
		var key string
		if err := decodePayload(tag, env.Payload, &key); err != nil {
			return nil, err
		}
		switch ActionType(tag) {
		case ActionDeleteTodo:
			return DeleteTodo{ID: key}, nil
		case ActionToggleTodo:
			return ToggleTodo{ID: key}, nil
		default:
			return DeleteList{Name: key}, nil
		}
	case ActionAddList:
		var l model.List
		if err := decodePayload(tag, env.Payload, &l); err != nil {
			return nil, err
		}
		return AddList{List: l}, nil
	default:
		return Unknown{Tag: tag}, nil
	}
}

func decodePayload(tag string, raw json.RawMessage, dst any) error {
	if isNullOrEmpty(raw) {
		return fmt.Errorf("decode %s: missing payload", tag)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s payload: %w", tag, err)
	}
	return nil
}

// ReadActions reads one envelope per line. Blank lines and lines starting with
// '#' are skipped. Errors carry the 1-based line number.
func ReadActions(r io.Reader) ([]Action, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var out []Action
	lineNo := 0
	for sc.Scan() {
		lineNo++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		a, err := DecodeAction(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, a)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeState parses a {"todos": [...], "lists": [...]} snapshot. Missing
// collections decode as empty, not as the defaults.
func DecodeState(b []byte) (State, error) {
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if st.Todos == nil {
		st.Todos = []model.Todo{}
	}
	if st.Lists == nil {
		st.Lists = []model.List{}
	}
	return st, nil
}

func isNullOrEmpty(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	s := strings.TrimSpace(string(b))
	return s == "" || s == "null"
}
