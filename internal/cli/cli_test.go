package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todopanes/internal/store"
	"todopanes/internal/tui"
)

// isolate keeps tests away from the user's config file and environment.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"TODOPANES_CONFIG", "TODOPANES_THEME", "TODOPANES_GLYPHS", "TODOPANES_DEBUG_LOG", "TODOPANES_FORMAT"} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "config.toml")
}

func runCLI(t *testing.T, app *App, stdin string, args ...string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	if app == nil {
		app = &App{runTUI: func(*store.Store, tui.Options) error {
			t.Fatalf("unexpected TUI start")
			return nil
		}}
	}
	cmd := newRootCmd(app)
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustEnvelope(t *testing.T, stdout []byte) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout: %v\n%s", err, stdout)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected data key: %s", stdout)
	}
	return env
}

const actionStream = `# build a list, fill it, then remove it
{"type":"ADD_LIST","payload":{"name":"Work","icon":"💡","color":"#39BCF9"}}
{"type":"ADD_TODO","payload":{"id":"1","title":"Report","listName":"Work","createdAt":1000,"isCommitted":true}}

{"type":"TOGGLE_TODO","payload":"1"}
{"type":"SOMETHING_ELSE"}
{"type":"ADD_TODO","payload":{"id":"2","title":"Milk","listName":"Tasks","createdAt":2000,"isCommitted":false}}
{"type":"DELETE_LIST","payload":"Work"}
`

func TestApply_ReplaysStdin(t *testing.T) {
	cfg := isolate(t)
	stdout, _, err := runCLI(t, nil, actionStream, "--config", cfg, "apply")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	env := mustEnvelope(t, stdout)

	data := env["data"].(map[string]any)
	todos := data["todos"].([]any)
	lists := data["lists"].([]any)
	if len(todos) != 1 || todos[0].(map[string]any)["id"] != "2" {
		t.Fatalf("unexpected todos: %v", todos)
	}
	if len(lists) != 1 || lists[0].(map[string]any)["name"] != "Tasks" {
		t.Fatalf("unexpected lists: %v", lists)
	}

	meta := env["meta"].(map[string]any)
	if meta["actions"] != float64(6) || meta["ignored"] != float64(1) || meta["version"] != float64(6) {
		t.Fatalf("unexpected meta: %v", meta)
	}
}

func TestApply_FromSnapshotFile(t *testing.T) {
	cfg := isolate(t)
	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(seed, []byte(`{"todos":[{"id":"x","title":"Seeded","listName":"Home","createdAt":5,"isCommitted":true}],"lists":[{"name":"Home","icon":"🏠","color":"#4FDC83"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	actions := filepath.Join(dir, "actions.jsonl")
	if err := os.WriteFile(actions, []byte(`{"type":"TOGGLE_TODO","payload":"x"}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, nil, "", "--config", cfg, "apply", "--from", seed, actions)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	data := mustEnvelope(t, stdout)["data"].(map[string]any)
	todo := data["todos"].([]any)[0].(map[string]any)
	if todo["completed"] != true || todo["title"] != "Seeded" {
		t.Fatalf("unexpected todo: %v", todo)
	}
	if lists := data["lists"].([]any); len(lists) != 1 {
		t.Fatalf("seed lists should replace the default list: %v", lists)
	}
}

func TestApply_BadLineReportsSourceAndLine(t *testing.T) {
	cfg := isolate(t)
	_, _, err := runCLI(t, nil, "{\"type\":\"ADD_LIST\",\"payload\":{\"name\":\"A\"}}\n{nope\n", "--config", cfg, "apply", "-")
	if err == nil {
		t.Fatalf("expected error")
	}
	var ie inputError
	if !errors.As(err, &ie) || ie.source != "stdin" {
		t.Fatalf("expected stdin input error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number, got %v", err)
	}
}

func TestApply_EDNOutput(t *testing.T) {
	cfg := isolate(t)
	stdout, _, err := runCLI(t, nil, actionStream, "--config", cfg, "--format", "edn", "apply")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	out := string(stdout)
	for _, want := range []string{":data", ":list-name \"Tasks\"", ":is-committed false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("edn output missing %q:\n%s", want, out)
		}
	}
}

func TestLayout_TerminalGeometryAndDrags(t *testing.T) {
	cfg := isolate(t)
	stdout, _, err := runCLI(t, nil, "", "--config", cfg, "layout", "--height", "30", "--drag=-5", "--drag=100")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	data := mustEnvelope(t, stdout)["data"].(map[string]any)

	bounds := data["bounds"].(map[string]any)
	if bounds["topMin"] != float64(2) || bounds["maxSection"] != float64(24) {
		t.Fatalf("unexpected bounds: %v", bounds)
	}
	def := data["default"].(map[string]any)
	if def["topRows"] != float64(17) || def["bottomRows"] != float64(11) {
		t.Fatalf("unexpected default split: %v", def)
	}
	drags := data["drags"].([]any)
	if len(drags) != 2 {
		t.Fatalf("expected 2 drags, got %v", drags)
	}
	if d := drags[0].(map[string]any); d["topRows"] != float64(12) {
		t.Fatalf("first drag: %v", d)
	}
	if d := drags[1].(map[string]any); d["top"] != float64(24) || d["bottomRows"] != float64(4) {
		t.Fatalf("second drag should clamp: %v", d)
	}
}

func TestLayout_Phone(t *testing.T) {
	cfg := isolate(t)
	stdout, _, err := runCLI(t, nil, "", "--config", cfg, "layout", "--phone", "--height", "844")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	data := mustEnvelope(t, stdout)["data"].(map[string]any)
	bounds := data["bounds"].(map[string]any)
	if data["metrics"] != "phone" || bounds["topMin"] != float64(116) || bounds["maxSection"] != float64(649) {
		t.Fatalf("unexpected phone layout: %v", data)
	}
}

func TestLayout_RejectsBadHeight(t *testing.T) {
	cfg := isolate(t)
	if _, _, err := runCLI(t, nil, "", "--config", cfg, "layout"); err == nil {
		t.Fatalf("missing --height should fail")
	}
	_, _, err := runCLI(t, nil, "", "--config", cfg, "layout", "--height", "0")
	if err == nil || !strings.Contains(err.Error(), "--height must be positive") {
		t.Fatalf("expected height error, got %v", err)
	}
}

func TestPalette_ListsColorsAndIcons(t *testing.T) {
	cfg := isolate(t)
	stdout, _, err := runCLI(t, nil, "", "--config", cfg, "palette")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	data := mustEnvelope(t, stdout)["data"].(map[string]any)
	if colors := data["colors"].([]any); len(colors) != 12 {
		t.Fatalf("expected 12 colors, got %d", len(colors))
	}
	if def := data["defaultList"].(map[string]any); def["name"] != "Tasks" {
		t.Fatalf("unexpected default list: %v", def)
	}
}

func TestRoot_NoArgsStartsTUIWithResolvedOptions(t *testing.T) {
	cfg := isolate(t)
	if err := os.WriteFile(cfg, []byte("[tui]\ntheme = \"light\"\nglyphs = \"ascii\"\nconfirm-delete-list = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TODOPANES_GLYPHS", "unicode")

	var got tui.Options
	var st *store.Store
	app := &App{runTUI: func(s *store.Store, opts tui.Options) error {
		st, got = s, opts
		return nil
	}}
	if _, _, err := runCLI(t, app, "", "--config", cfg, "--theme", "dark"); err != nil {
		t.Fatalf("root: %v", err)
	}
	if st == nil || len(st.State().Lists) != 1 {
		t.Fatalf("TUI should get a fresh store")
	}
	// Flag beats file; env beats file.
	if got.Theme != "dark" || got.Glyphs != "unicode" || got.ConfirmDeleteList {
		t.Fatalf("unexpected options: %+v", got)
	}
	if got.Logger == nil {
		t.Fatalf("expected a logger")
	}
}

func TestRoot_InvalidThemeFlag(t *testing.T) {
	cfg := isolate(t)
	app := &App{runTUI: func(*store.Store, tui.Options) error { return nil }}
	_, _, err := runCLI(t, app, "", "--config", cfg, "--theme", "sepia")
	if err == nil || !strings.Contains(err.Error(), "tui.theme") {
		t.Fatalf("expected theme error, got %v", err)
	}
}

func TestRoot_UnknownFormat(t *testing.T) {
	cfg := isolate(t)
	_, _, err := runCLI(t, nil, "", "--config", cfg, "--format", "yaml", "palette")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestDocs_TopicsAndRaw(t *testing.T) {
	cfg := isolate(t)
	stdout, _, err := runCLI(t, nil, "", "--config", cfg, "docs")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	topics := mustEnvelope(t, stdout)["data"].(map[string]any)["topics"].([]any)
	if len(topics) != 3 {
		t.Fatalf("unexpected topics: %v", topics)
	}

	stdout, _, err = runCLI(t, nil, "", "--config", cfg, "docs", "actions", "--raw")
	if err != nil {
		t.Fatalf("docs actions: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Action streams") {
		t.Fatalf("unexpected raw docs:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, nil, "", "--config", cfg, "--theme", "dark", "docs", "keys", "--render")
	if err != nil {
		t.Fatalf("docs keys --render: %v", err)
	}
	if !strings.Contains(string(stdout), "Keys") || strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("markdown not rendered:\n%s", stdout)
	}

	if _, _, err := runCLI(t, nil, "", "--config", cfg, "docs", "nope"); err == nil || !strings.Contains(err.Error(), "unknown topic") {
		t.Fatalf("expected unknown topic error, got %v", err)
	}
}

func TestApply_Markdown(t *testing.T) {
	cfg := isolate(t)
	stream := `{"type":"ADD_TODO","payload":{"id":"1","title":"Milk","listName":"Tasks","createdAt":1,"isCommitted":true}}` + "\n"
	stdout, _, err := runCLI(t, nil, stream, "--config", cfg, "apply", "--markdown")
	if err != nil {
		t.Fatalf("apply --markdown: %v", err)
	}
	if got := string(stdout); got != "# 📝 Tasks\n\n## Todos\n\n- [ ] Milk\n" {
		t.Fatalf("unexpected markdown:\n%s", got)
	}

	if _, _, err := runCLI(t, nil, stream, "--config", cfg, "apply", "--list", "Nope"); err == nil {
		t.Fatalf("expected missing list error")
	}
}
