package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	ListName    string   `json:"listName"`
	IsCommitted bool     `json:"isCommitted"`
	CreatedAt   int64    `json:"createdAt"`
	Tags        []string `json:"tags"`
	Notes       *string  `json:"notes"`
}

func TestWriteEDN_KebabKeywords(t *testing.T) {
	var buf bytes.Buffer
	v := sample{ListName: "Tasks", IsCommitted: true, CreatedAt: 1700000000123, Tags: []string{"a", "b"}}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("edn: %v", err)
	}
	want := `{:created-at 1700000000123 :is-committed true :list-name "Tasks" :notes nil :tags ["a" "b"]}` + "\n"
	if buf.String() != want {
		t.Fatalf("got  %q\nwant %q", buf.String(), want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"todos": []any{}, "lists": []string{"x"}}, true); err != nil {
		t.Fatalf("edn: %v", err)
	}
	want := "{\n  :lists [\n    \"x\"\n  ]\n  :todos []\n}\n"
	if buf.String() != want {
		t.Fatalf("got  %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_JSONKeepsEmoji(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]string{"icon": "📝"}, "json", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if buf.String() != "{\"icon\":\"📝\"}\n" {
		t.Fatalf("unexpected json %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, 1, "yaml", false)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
