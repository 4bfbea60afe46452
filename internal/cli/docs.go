package cli

import (
	"fmt"
	"strings"

	"todopanes/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw    bool
		render bool
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in help topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}
			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown topic: %s (want %s)", topic, strings.Join(docs.Topics(), "|"))
			}
			switch {
			case render:
				cfg, err := loadConfig(app)
				if err != nil {
					return err
				}
				out, err := renderMarkdown(body, cfg.TUI.Theme)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"topic": strings.ToLower(strings.TrimSpace(topic)), "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	return cmd
}

func renderMarkdown(md, theme string) (string, error) {
	opt := glamour.WithAutoStyle()
	switch theme {
	case "light":
		opt = glamour.WithStandardStyle(styles.LightStyle)
	case "dark":
		opt = glamour.WithStandardStyle(styles.DarkStyle)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}
