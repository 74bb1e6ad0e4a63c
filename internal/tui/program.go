package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okranz/makoed/internal/entries"
	"github.com/okranz/makoed/internal/prefs"
)

// Run launches the interactive editor on the given store and blocks until
// the user quits. loadErr, when non-nil, is a startup LoadError to show in
// the status line (the store is then the seeded fallback).
func Run(configPath string, store *entries.Store, p *prefs.Prefs, loadErr error) error {
	m := NewModel(configPath, store, p, loadErr)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
