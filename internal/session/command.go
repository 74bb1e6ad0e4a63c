package session

// Command is the abstract input surface of the edit session. The terminal
// layer decodes key presses into commands and feeds them in one at a time;
// the session defines behavior for every command in every mode (undefined
// combinations are no-ops).
type Command interface {
	isCommand()
}

// MoveUp moves the selection (or picker/suggestion cursor) up.
type MoveUp struct{}

// MoveDown moves the selection (or picker/suggestion cursor) down.
type MoveDown struct{}

// StartEdit begins editing the value of the selected entry.
type StartEdit struct{}

// StartAdd begins the add-entry flow at the known-key picker.
type StartAdd struct{}

// StartDelete asks for confirmation to delete the selected entry.
type StartDelete struct{}

// Commit confirms the current buffer or picker choice.
type Commit struct{}

// Cancel abandons the current mode, discarding any partial state.
type Cancel struct{}

// ConfirmDelete confirms a pending deletion.
type ConfirmDelete struct{}

// CharInput appends a character to the active buffer.
type CharInput struct {
	Rune rune
}

// Backspace removes the last character from the active buffer.
type Backspace struct{}

// Quit ends the session. Only honored while browsing.
type Quit struct{}

func (MoveUp) isCommand()        {}
func (MoveDown) isCommand()      {}
func (StartEdit) isCommand()     {}
func (StartAdd) isCommand()      {}
func (StartDelete) isCommand()   {}
func (Commit) isCommand()        {}
func (Cancel) isCommand()        {}
func (ConfirmDelete) isCommand() {}
func (CharInput) isCommand()     {}
func (Backspace) isCommand()     {}
func (Quit) isCommand()          {}
