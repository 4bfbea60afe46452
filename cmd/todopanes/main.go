package main

import (
	"os"
	"strings"

	"todopanes/internal/cli"
)

func isActionStream(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasSuffix(s, ".jsonl") && len(s) > len(".jsonl")
}

// rewriteActionStreamArgs makes `todopanes <file>.jsonl` work like
// `todopanes apply <file>.jsonl`. Cobra treats the first non-flag token as a
// subcommand, so argv is rewritten before parsing. Persistent flags may come
// first, so this looks for the first positional token, not just argv[1].
func rewriteActionStreamArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--theme":     true,
		"--glyphs":    true,
		"--debug-log": true,
		"--format":    true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isActionStream(argv[i+1]) {
				return insertApply(argv, i+1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isActionStream(a) {
			return insertApply(argv, i)
		}
		return argv
	}
	return argv
}

func insertApply(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "apply")
	return append(out, argv[at:]...)
}

func main() {
	os.Args = rewriteActionStreamArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
