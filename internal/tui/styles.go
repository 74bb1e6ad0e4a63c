package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Application branding constants
const (
	AppName = "MAKO CONFIG EDITOR"
)

// Layout constants
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	KeyColumnWidth   = 26 // Width of the key column in the entry list
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style for the header bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Key hint text in the header
	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Entry key column
	KeyStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Entry value column
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Selected row
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Picker row description
	DescStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Prompt text in the footer input line
	PromptStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// The in-progress buffer being typed
	InputStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Allowed-values hint
	SuggestStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Delete confirmation prompt
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Status line, success and failure
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
	StatusErrStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Unsaved-changes marker
	DirtyStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Bordered panes
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Pane title rendered into the border area
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Help footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// cursorGlyph marks the insertion point in text-input footers.
const cursorGlyph = "█"
