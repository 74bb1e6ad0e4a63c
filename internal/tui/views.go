package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okranz/makoed/internal/catalog"
	"github.com/okranz/makoed/internal/session"
)

// View implements tea.Model. Layout is three stacked panes: header, the
// entry list (or key picker), and a mode-dependent footer.
func (m Model) View() string {
	width := m.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	pane := PaneStyle.Width(width - 2)

	return lipgloss.JoinVertical(lipgloss.Left,
		pane.Render(m.renderHeader()),
		pane.Render(m.renderList()),
		pane.Render(m.renderFooter()),
	)
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	title := TitleStyle.Render(AppName)
	path := HintStyle.Render(m.ConfigPath)
	if m.Dirty {
		return title + "  " + path + "  " + DirtyStyle.Render("● unsaved changes")
	}
	return title + "  " + path
}

// renderList renders either the entry list or, while choosing a key for a
// new entry, the filtered known-key picker.
func (m Model) renderList() string {
	if m.Session.Mode() == session.ModeChoosingKey {
		return m.renderKeyPicker()
	}
	return m.renderEntries()
}

// renderEntries renders the configuration entries with the selection
// highlighted.
func (m Model) renderEntries() string {
	all := m.Store.Entries()
	if len(all) == 0 {
		return HintStyle.Render("No entries. Press 'a' to add one.")
	}

	sel, hasSel := m.Session.Selection()

	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render("Parameters"))
	b.WriteByte('\n')
	for i, e := range all {
		keyCol := fmt.Sprintf("%-*s", KeyColumnWidth, e.Key)
		if hasSel && i == sel {
			b.WriteString(SelectedRowStyle.Render("→ " + keyCol + " = " + e.Value))
		} else {
			b.WriteString("  " + KeyStyle.Render(keyCol) + " = " + ValueStyle.Render(e.Value))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderKeyPicker renders the filtered catalog for the add flow.
func (m Model) renderKeyPicker() string {
	choices, pick := m.Session.Picker()

	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render("Known keys"))
	b.WriteByte('\n')
	for i, name := range choices {
		desc := catalog.Describe(name)
		if name == session.CustomKeyChoice {
			desc = "Type a custom key name"
		}
		nameCol := fmt.Sprintf("%-*s", KeyColumnWidth, name)
		if i == pick {
			b.WriteString(SelectedRowStyle.Render("→ " + nameCol))
		} else {
			b.WriteString("  " + KeyStyle.Render(nameCol))
		}
		b.WriteString(DescStyle.Render(" " + desc))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFooter renders the mode-specific prompt plus status and help.
func (m Model) renderFooter() string {
	var lines []string

	switch m.Session.Mode() {
	case session.ModeBrowsing:
		lines = append(lines, m.browsingSummary())
		lines = append(lines, m.statusLine())
		lines = append(lines, HelpStyle.Render(m.Help.View(m.Keys)))

	case session.ModeEditingValue:
		sel, _ := m.Session.Selection()
		e, _ := m.Store.Get(sel)
		lines = append(lines,
			PromptStyle.Render(fmt.Sprintf("Editing %s (enter=save, esc=cancel): ", e.Key))+
				InputStyle.Render(m.Session.Buffer()+cursorGlyph))
		lines = append(lines, m.suggestionLine())

	case session.ModeChoosingKey:
		lines = append(lines,
			PromptStyle.Render("New key (↑/↓ pick, type to filter, enter=next, esc=cancel): ")+
				InputStyle.Render(m.Session.Buffer()+cursorGlyph))

	case session.ModeEnteringCustomKey:
		lines = append(lines,
			PromptStyle.Render("Custom key name (enter=next, esc=cancel): ")+
				InputStyle.Render(m.Session.Buffer()+cursorGlyph))

	case session.ModeEnteringValue:
		lines = append(lines,
			PromptStyle.Render(fmt.Sprintf("Value for '%s' (enter=add, esc=cancel): ", m.Session.PendingKey()))+
				InputStyle.Render(m.Session.Buffer()+cursorGlyph))
		lines = append(lines, m.suggestionLine())

	case session.ModeConfirmingDelete:
		sel, _ := m.Session.Selection()
		e, _ := m.Store.Get(sel)
		lines = append(lines,
			ConfirmStyle.Render("Confirm delete? ")+
				PromptStyle.Render(fmt.Sprintf("Delete '%s' (y/n)", e.Key)))
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// browsingSummary describes the current selection.
func (m Model) browsingSummary() string {
	sel, ok := m.Session.Selection()
	if !ok {
		return HintStyle.Render("No selection")
	}
	e, found := m.Store.Get(sel)
	if !found {
		return HintStyle.Render("No selection")
	}
	return PromptStyle.Render(fmt.Sprintf("Selected: %s = %s", e.Key, e.Value))
}

// statusLine renders the last operation's outcome, if any.
func (m Model) statusLine() string {
	msg, isErr, ok := m.Status.Current()
	if !ok {
		return ""
	}
	if isErr {
		return StatusErrStyle.Render("✗ " + msg)
	}
	return StatusOKStyle.Render("✓ " + msg)
}

// suggestionLine renders the catalog's allowed values for the key being
// edited, if it has any.
func (m Model) suggestionLine() string {
	vals := m.Session.SuggestedValues()
	if len(vals) == 0 {
		return ""
	}
	return SuggestStyle.Render("Allowed: " + strings.Join(vals, " | ") + "  (↑/↓ to cycle)")
}
