package cli

import (
	"fmt"
	"os"
	"strings"

	"todopanes/internal/config"
	"todopanes/internal/format"
	"todopanes/internal/logging"
	"todopanes/internal/store"
	"todopanes/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	ConfigPath string
	Theme      string
	Glyphs     string
	DebugLog   string
	PrettyJSON bool
	Format     string

	// runTUI starts the interactive screen. Tests replace it.
	runTUI func(st *store.Store, opts tui.Options) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{runTUI: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "todopanes",
		Short:        "Todos and lists in a resizable two-panel terminal UI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todopanes

  # Replay a JSON-lines action stream and print the resulting state
  todopanes apply actions.jsonl --pretty

  # Show the split geometry of a 40-row terminal after dragging the grip up 6 rows
  todopanes layout --height 40 --drag -6
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODOPANES_CONFIG", ""), "Path to config.toml (default: $XDG_CONFIG_HOME/todopanes/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "TUI theme (auto|light|dark); overrides config and TODOPANES_THEME")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "TUI glyphs (unicode|ascii); overrides config and TODOPANES_GLYPHS")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", "", "Write a JSON debug log to this file; overrides config and TODOPANES_DEBUG_LOG")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODOPANES_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newApplyCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newPaletteCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// loadConfig resolves settings: flags over environment over the config file.
func loadConfig(app *App) (config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)
	if v := strings.TrimSpace(app.Theme); v != "" {
		cfg.TUI.Theme = v
	}
	if v := strings.TrimSpace(app.Glyphs); v != "" {
		cfg.TUI.Glyphs = v
	}
	if v := strings.TrimSpace(app.DebugLog); v != "" {
		cfg.Log.Path = v
	}
	cfg.TUI.Theme = strings.ToLower(cfg.TUI.Theme)
	cfg.TUI.Glyphs = strings.ToLower(cfg.TUI.Glyphs)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	l, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	return l, nil
}

func runTUI(app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logging.Sync(log)

	st := store.New(store.WithLogger(log))
	return app.runTUI(st, tui.Options{
		Theme:             cfg.TUI.Theme,
		Glyphs:            cfg.TUI.Glyphs,
		ConfirmDeleteList: cfg.TUI.ConfirmDeleteList,
		Logger:            log,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
