// Package publish renders todo state as a markdown checklist.
package publish

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"todopanes/internal/model"
	"todopanes/internal/store"
)

type RenderOptions struct {
	IncludeCompleted bool
	// Created adds each todo's creation time (UTC, RFC 3339).
	Created bool
}

// RenderListMarkdown renders one list: its committed todos, then its backlog,
// then (optionally) its completed todos, each newest first.
func RenderListMarkdown(st store.State, name string, opt RenderOptions) (string, error) {
	name = strings.TrimSpace(name)
	l, ok := st.FindList(name)
	if !ok {
		return "", fmt.Errorf("list not found: %s", name)
	}
	var buf bytes.Buffer
	writeList(&buf, st, l, opt)
	return buf.String(), nil
}

// RenderStateMarkdown renders every list in order. Todos whose list no longer
// exists are collected under a trailing "Unfiled" heading.
func RenderStateMarkdown(st store.State, opt RenderOptions) string {
	var buf bytes.Buffer
	for i, l := range st.Lists {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeList(&buf, st, l, opt)
	}

	var unfiled []model.Todo
	for _, t := range st.Todos {
		if !st.HasList(t.ListName) && (opt.IncludeCompleted || !t.Completed) {
			unfiled = append(unfiled, t)
		}
	}
	if len(unfiled) > 0 {
		if len(st.Lists) > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("# Unfiled\n\n")
		for _, t := range store.SortByRecency(unfiled) {
			writeTodo(&buf, t, opt)
		}
	}
	return buf.String()
}

func writeList(buf *bytes.Buffer, st store.State, l model.List, opt RenderOptions) {
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(l.Icon + " " + l.Name)
	writeLn("# " + title)

	sections := []struct {
		heading string
		todos   []model.Todo
	}{
		{"Todos", st.ListTodos(l.Name, true)},
		{"Backlog", st.ListTodos(l.Name, false)},
	}
	if opt.IncludeCompleted {
		var done []model.Todo
		for _, t := range st.CompletedTodos() {
			if t.ListName == l.Name {
				done = append(done, t)
			}
		}
		sections = append(sections, struct {
			heading string
			todos   []model.Todo
		}{model.CompletedListName, done})
	}

	for _, sec := range sections {
		if len(sec.todos) == 0 {
			continue
		}
		writeLn("")
		writeLn("## " + sec.heading)
		writeLn("")
		for _, t := range sec.todos {
			writeTodo(buf, t, opt)
		}
	}
}

func writeTodo(buf *bytes.Buffer, t model.Todo, opt RenderOptions) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	line := "- " + box + " " + strings.TrimSpace(t.Title)
	if opt.Created && t.CreatedAt > 0 {
		line += " (" + time.UnixMilli(t.CreatedAt).UTC().Format(time.RFC3339) + ")"
	}
	buf.WriteString(line + "\n")

	notes := strings.TrimSpace(t.Notes)
	if notes == "" {
		return
	}
	for _, ln := range strings.Split(notes, "\n") {
		buf.WriteString("  " + strings.TrimRight(ln, " \t") + "\n")
	}
}
