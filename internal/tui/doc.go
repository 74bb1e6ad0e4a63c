// Package tui renders the interactive editor with Bubble Tea.
//
// The package is a thin shell around the session state machine: Update
// decodes key presses into session commands and View draws whatever mode
// the session is in. All editing rules (selection bounds, buffer
// discipline, delete confirmation) live in the session package; the TUI
// adds only presentation, persistence triggers (save on 's'), and the
// asynchronous `makoctl reload` that follows a save.
package tui
