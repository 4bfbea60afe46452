package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.Core().Enabled(-1) {
		t.Fatalf("expected no-op logger")
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	l, err := New(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Debug("dispatch")
	Sync(l)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"dispatch"`) || !strings.Contains(string(b), `"logger":"todopanes"`) {
		t.Fatalf("unexpected log contents: %s", b)
	}
}

func TestNew_RejectsBadLevel(t *testing.T) {
	if _, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}); err == nil {
		t.Fatalf("expected level error")
	}
}
