// Package tui is the interactive todo screen: a resizable two-panel home view,
// per-list views, and modal editors, all driven by a store.Store.
package tui

import (
	"todopanes/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func Run(st *store.Store, opts Options) error {
	applyThemePreference(opts.Theme)
	applyColorProfilePreference()
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(st, opts)
	m.log.Info("tui start", zap.Int("todos", len(st.State().Todos)), zap.Int("lists", len(st.State().Lists)))
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		m.log.Error("tui exit", zap.Error(err))
	}
	return err
}
