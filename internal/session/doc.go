// Package session implements the modal state machine at the heart of the
// editor.
//
// A Session tracks the current interaction mode (browsing, editing a
// value, adding an entry, confirming a delete), the selected entry, and
// any in-progress text buffer. The terminal layer feeds abstract commands
// in one at a time; the session consults the key catalog for suggestions,
// mutates the entry store only on explicit commits, and records each
// completed operation in a StatusReporter for display.
//
// # Mode Discipline
//
// Modes are a tagged variant with per-mode payload, exhaustively
// type-switched on every command. Index validity is enforced at
// transition time: a mode carrying an entry index can only be entered
// while that index is in bounds, and the only mutation that shifts
// indices (delete) immediately re-clamps the selection. Edits type into a
// buffer separate from the store, so cancelling an edit or any stage of
// the add flow leaves the store untouched.
//
// # Delete Confirmation
//
// Deletion is the one irreversible mutation, so it is gated behind an
// explicit ConfirmDelete command; every other mutation only happens on
// Commit and is fully cancelable before that.
package session
