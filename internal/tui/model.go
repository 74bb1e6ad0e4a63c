package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okranz/makoed/internal/daemon"
	"github.com/okranz/makoed/internal/entries"
	"github.com/okranz/makoed/internal/prefs"
	"github.com/okranz/makoed/internal/session"
)

// reloadDoneMsg reports the result of an asynchronous `makoctl reload`.
type reloadDoneMsg struct {
	output string
	err    error
}

// Model is the bubbletea model wrapping the edit session. It owns no
// editing logic of its own: key presses are translated into session
// commands, and the view renders whatever state the session is in.
type Model struct {
	// Collaborators
	ConfigPath string
	Store      *entries.Store
	Session    *session.Session
	Status     *session.StatusReporter
	Prefs      *prefs.Prefs

	// UI state
	Width  int
	Height int

	// Dirty tracks committed changes not yet written to disk.
	Dirty bool

	// lastChange remembers the most recent committed entry so a save can
	// announce it via notify-send.
	lastChange *entries.Entry

	// Help
	Help help.Model
	Keys keyMap
}

// NewModel creates the editor model. loadErr, when non-nil, is the
// startup LoadError to surface in the status line (the store passed in is
// then the seeded fallback).
func NewModel(configPath string, store *entries.Store, p *prefs.Prefs, loadErr error) Model {
	status := &session.StatusReporter{}
	if loadErr != nil {
		status.Report(false, loadErr.Error()+" (using defaults)")
	}

	return Model{
		ConfigPath: configPath,
		Store:      store,
		Session:    session.New(store, status),
		Status:     status,
		Prefs:      p,
		Help:       help.New(),
		Keys:       newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model, routing input to the mode-specific handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case reloadDoneMsg:
		if msg.err != nil {
			m.Status.Report(false, "Reload failed: "+msg.err.Error())
		} else if msg.output != "" {
			m.Status.Report(true, "Reload OK: "+msg.output)
		} else {
			m.Status.Report(true, "Reload OK")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.Session.Mode() {
		case session.ModeBrowsing:
			return m.updateBrowsing(msg)
		case session.ModeConfirmingDelete:
			return m.updateConfirming(msg)
		default:
			// editing value, key picker, custom key, entering value
			return m.updateTextMode(msg)
		}
	}

	return m, nil
}

// updateBrowsing handles keys in the normal list-navigation mode.
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Session.Apply(session.Quit{})
		if m.Session.Done() {
			return m, tea.Quit
		}
	case key.Matches(msg, m.Keys.Up):
		m.Session.Apply(session.MoveUp{})
	case key.Matches(msg, m.Keys.Down):
		m.Session.Apply(session.MoveDown{})
	case key.Matches(msg, m.Keys.Edit):
		m.Session.Apply(session.StartEdit{})
	case key.Matches(msg, m.Keys.Add):
		m.Session.Apply(session.StartAdd{})
	case key.Matches(msg, m.Keys.Delete):
		m.Session.Apply(session.StartDelete{})
	case key.Matches(msg, m.Keys.Save):
		return m.save()
	case key.Matches(msg, m.Keys.Reload):
		return m, reloadCmd()
	}
	return m, nil
}

// updateConfirming handles the delete confirmation prompt.
func (m Model) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if sel, ok := m.Session.Selection(); ok {
			if e, found := m.Store.Get(sel); found {
				m.lastChange = &entries.Entry{Key: e.Key, Value: "<deleted>"}
			}
		}
		m.Session.Apply(session.ConfirmDelete{})
		m.Dirty = true
	case "n", "N", "esc":
		m.Session.Apply(session.Cancel{})
	}
	return m, nil
}

// updateTextMode handles modes with an active text buffer. MoveUp and
// MoveDown double as the picker cursor in the key picker and as
// suggestion cycling while entering a value; the session decides.
func (m Model) updateTextMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.Session.Apply(session.Cancel{})
	case tea.KeyEnter:
		m = m.trackCommit()
		m.Session.Apply(session.Commit{})
	case tea.KeyBackspace:
		m.Session.Apply(session.Backspace{})
	case tea.KeyUp:
		m.Session.Apply(session.MoveUp{})
	case tea.KeyDown:
		m.Session.Apply(session.MoveDown{})
	case tea.KeySpace:
		m.Session.Apply(session.CharInput{Rune: ' '})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.Session.Apply(session.CharInput{Rune: r})
		}
	}
	return m, nil
}

// trackCommit records dirtiness and the changed entry for commits that
// mutate the store (editing a value or entering a new entry's value).
func (m Model) trackCommit() Model {
	switch m.Session.Mode() {
	case session.ModeEditingValue:
		if sel, ok := m.Session.Selection(); ok {
			if e, found := m.Store.Get(sel); found {
				m.lastChange = &entries.Entry{Key: e.Key, Value: m.Session.Buffer()}
			}
		}
		m.Dirty = true
	case session.ModeEnteringValue:
		m.lastChange = &entries.Entry{Key: m.Session.PendingKey(), Value: m.Session.Buffer()}
		m.Dirty = true
	}
	return m
}

// save writes the store to disk and, per preferences, kicks off a daemon
// reload and change notification. A failed save leaves the session
// running so the user can retry.
func (m Model) save() (tea.Model, tea.Cmd) {
	if err := m.Store.Save(m.ConfigPath); err != nil {
		m.Status.Report(false, err.Error())
		return m, nil
	}

	m.Dirty = false
	m.Status.Report(true, fmt.Sprintf("Saved %d entries to %s", m.Store.Len(), m.ConfigPath))

	if m.Prefs.NotifyOnSave && m.lastChange != nil {
		daemon.Notify(m.lastChange.Key, m.lastChange.Value)
		m.lastChange = nil
	}

	if m.Prefs.ReloadOnSave {
		return m, reloadCmd()
	}
	return m, nil
}

// reloadCmd runs `makoctl reload` off the UI thread and delivers the
// outcome as a message.
func reloadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := daemon.Reload()
		return reloadDoneMsg{output: out, err: err}
	}
}
