package session

import (
	"strings"

	"github.com/okranz/makoed/internal/catalog"
	"github.com/okranz/makoed/internal/entries"
)

// CustomKeyChoice is the sentinel picker row that lets the user type a key
// name not present in the catalog.
const CustomKeyChoice = "<custom>"

// Mode identifies the session's current interaction mode.
type Mode int

const (
	// ModeBrowsing is the default mode: navigating the entry list.
	ModeBrowsing Mode = iota
	// ModeEditingValue is editing the value of an existing entry.
	ModeEditingValue
	// ModeChoosingKey is picking a key for a new entry from the catalog.
	ModeChoosingKey
	// ModeEnteringCustomKey is typing a key name not in the catalog.
	ModeEnteringCustomKey
	// ModeEnteringValue is typing the value for a new entry.
	ModeEnteringValue
	// ModeConfirmingDelete is waiting for delete confirmation.
	ModeConfirmingDelete
)

// String returns a short name for the mode, used in logs and tests.
func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeEditingValue:
		return "editing-value"
	case ModeChoosingKey:
		return "choosing-key"
	case ModeEnteringCustomKey:
		return "entering-custom-key"
	case ModeEnteringValue:
		return "entering-value"
	case ModeConfirmingDelete:
		return "confirming-delete"
	default:
		return "unknown"
	}
}

// addStage is the sub-stage of the add-entry flow.
type addStage int

const (
	stageChoosingKey addStage = iota
	stageCustomKey
	stageValue
)

// state is the tagged variant holding per-mode payload. Exactly one state
// is active at a time; Apply type-switches over it exhaustively so illegal
// state+index combinations are unrepresentable.
type state interface {
	isState()
}

// browsing navigates the entry list. selected is -1 when the store is
// empty.
type browsing struct {
	selected int
}

// editingValue edits the entry at index. buffer starts as a copy of the
// current value; the store is only touched on Commit, so Cancel changes
// nothing.
type editingValue struct {
	index  int
	buffer string
}

// addingKey is the three-stage add flow. prev is the browsing selection to
// restore on Cancel. In the choosing stage, filter narrows the catalog and
// pick is the cursor over the filtered choices; in the later stages, key
// holds the chosen name and buffer the value being typed.
type addingKey struct {
	stage  addStage
	prev   int
	filter string
	pick   int
	key    string
	buffer string
}

// confirmingDelete gates the only irreversible mutation behind an explicit
// confirmation.
type confirmingDelete struct {
	index int
}

func (browsing) isState()         {}
func (editingValue) isState()     {}
func (addingKey) isState()        {}
func (confirmingDelete) isState() {}

// Session is the modal state machine driving interactive edits. It is the
// sole mutator of the store during interactive use: every index it holds
// is validated at transition time, and the store is only changed on an
// explicit Commit or ConfirmDelete, so no partial edit ever leaks out.
//
// Sessions are not safe for concurrent use; the interactive loop owns one
// exclusively.
type Session struct {
	store  *entries.Store
	status *StatusReporter
	st     state
	done   bool
}

// New creates a session in browsing mode, selecting the first entry when
// the store is non-empty.
func New(store *entries.Store, status *StatusReporter) *Session {
	sel := -1
	if store.Len() > 0 {
		sel = 0
	}
	return &Session{
		store:  store,
		status: status,
		st:     browsing{selected: sel},
	}
}

// Apply feeds one command into the state machine. Every command is total:
// combinations without defined behavior leave the session unchanged.
func (s *Session) Apply(cmd Command) {
	switch st := s.st.(type) {
	case browsing:
		s.applyBrowsing(st, cmd)
	case editingValue:
		s.applyEditing(st, cmd)
	case addingKey:
		s.applyAdding(st, cmd)
	case confirmingDelete:
		s.applyConfirming(st, cmd)
	}
}

func (s *Session) applyBrowsing(st browsing, cmd Command) {
	switch cmd.(type) {
	case MoveUp:
		st.selected = clampSelection(st.selected-1, s.store.Len())
		s.st = st
	case MoveDown:
		st.selected = clampSelection(st.selected+1, s.store.Len())
		s.st = st
	case StartEdit:
		e, ok := s.store.Get(st.selected)
		if !ok {
			return
		}
		s.st = editingValue{index: st.selected, buffer: e.Value}
	case StartAdd:
		s.st = addingKey{stage: stageChoosingKey, prev: st.selected}
	case StartDelete:
		if _, ok := s.store.Get(st.selected); !ok {
			return
		}
		s.st = confirmingDelete{index: st.selected}
	case Quit:
		s.done = true
	}
}

func (s *Session) applyEditing(st editingValue, cmd Command) {
	switch c := cmd.(type) {
	case CharInput:
		st.buffer += string(c.Rune)
		s.st = st
	case Backspace:
		st.buffer = dropLastRune(st.buffer)
		s.st = st
	case MoveUp:
		st.buffer = s.cycleSuggestion(s.entryKey(st.index), st.buffer, -1)
		s.st = st
	case MoveDown:
		st.buffer = s.cycleSuggestion(s.entryKey(st.index), st.buffer, +1)
		s.st = st
	case Commit:
		s.store.Set(st.index, st.buffer)
		s.status.Report(true, "Updated "+s.entryKey(st.index))
		s.st = browsing{selected: st.index}
	case Cancel:
		// Buffer discarded; the store was never touched, so the value is
		// still the original.
		s.st = browsing{selected: st.index}
	}
}

func (s *Session) applyAdding(st addingKey, cmd Command) {
	switch st.stage {
	case stageChoosingKey:
		s.applyChoosingKey(st, cmd)
	case stageCustomKey:
		s.applyCustomKey(st, cmd)
	case stageValue:
		s.applyAddValue(st, cmd)
	}
}

func (s *Session) applyChoosingKey(st addingKey, cmd Command) {
	switch c := cmd.(type) {
	case MoveUp:
		choices := FilterChoices(st.filter)
		if len(choices) > 0 {
			st.pick = (st.pick - 1 + len(choices)) % len(choices)
		}
		s.st = st
	case MoveDown:
		choices := FilterChoices(st.filter)
		if len(choices) > 0 {
			st.pick = (st.pick + 1) % len(choices)
		}
		s.st = st
	case CharInput:
		st.filter += string(c.Rune)
		st.pick = clampPick(st.pick, len(FilterChoices(st.filter)))
		s.st = st
	case Backspace:
		st.filter = dropLastRune(st.filter)
		st.pick = clampPick(st.pick, len(FilterChoices(st.filter)))
		s.st = st
	case Commit:
		choices := FilterChoices(st.filter)
		if st.pick < 0 || st.pick >= len(choices) {
			s.st = browsing{selected: st.prev}
			return
		}
		choice := choices[st.pick]
		if choice == CustomKeyChoice {
			s.st = addingKey{stage: stageCustomKey, prev: st.prev}
			return
		}
		s.st = addingKey{stage: stageValue, prev: st.prev, key: choice}
	case Cancel:
		s.st = browsing{selected: st.prev}
	}
}

func (s *Session) applyCustomKey(st addingKey, cmd Command) {
	switch c := cmd.(type) {
	case CharInput:
		st.buffer += string(c.Rune)
		s.st = st
	case Backspace:
		st.buffer = dropLastRune(st.buffer)
		s.st = st
	case Commit:
		key := strings.TrimSpace(st.buffer)
		if key == "" {
			s.st = browsing{selected: st.prev}
			return
		}
		s.st = addingKey{stage: stageValue, prev: st.prev, key: key}
	case Cancel:
		s.st = browsing{selected: st.prev}
	}
}

func (s *Session) applyAddValue(st addingKey, cmd Command) {
	switch c := cmd.(type) {
	case CharInput:
		st.buffer += string(c.Rune)
		s.st = st
	case Backspace:
		st.buffer = dropLastRune(st.buffer)
		s.st = st
	case MoveUp:
		st.buffer = s.cycleSuggestion(st.key, st.buffer, -1)
		s.st = st
	case MoveDown:
		st.buffer = s.cycleSuggestion(st.key, st.buffer, +1)
		s.st = st
	case Commit:
		s.store.Insert(entries.Entry{Key: st.key, Value: st.buffer})
		s.status.Report(true, "Added "+st.key)
		s.st = browsing{selected: s.store.Len() - 1}
	case Cancel:
		s.st = browsing{selected: st.prev}
	}
}

func (s *Session) applyConfirming(st confirmingDelete, cmd Command) {
	switch cmd.(type) {
	case ConfirmDelete:
		key := s.entryKey(st.index)
		s.store.Remove(st.index)
		s.status.Report(true, "Deleted "+key)
		s.st = browsing{selected: clampSelection(st.index, s.store.Len())}
	case Cancel:
		s.st = browsing{selected: st.index}
	}
}

// Done reports whether a Quit command has been accepted.
func (s *Session) Done() bool {
	return s.done
}

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode {
	switch st := s.st.(type) {
	case editingValue:
		return ModeEditingValue
	case addingKey:
		switch st.stage {
		case stageCustomKey:
			return ModeEnteringCustomKey
		case stageValue:
			return ModeEnteringValue
		default:
			return ModeChoosingKey
		}
	case confirmingDelete:
		return ModeConfirmingDelete
	default:
		return ModeBrowsing
	}
}

// Selection returns the entry index the session is focused on: the
// browsing selection, the entry being edited, or the delete target.
// ok is false when nothing is selected (empty store, or mid-add).
func (s *Session) Selection() (int, bool) {
	switch st := s.st.(type) {
	case browsing:
		return st.selected, st.selected >= 0
	case editingValue:
		return st.index, true
	case confirmingDelete:
		return st.index, true
	case addingKey:
		return st.prev, st.prev >= 0
	}
	return -1, false
}

// Buffer returns the text buffer active in the current mode: the value
// being edited or entered, the custom key name, or the picker filter.
// Browsing and confirm modes have no buffer.
func (s *Session) Buffer() string {
	switch st := s.st.(type) {
	case editingValue:
		return st.buffer
	case addingKey:
		if st.stage == stageChoosingKey {
			return st.filter
		}
		return st.buffer
	}
	return ""
}

// PendingKey returns the key an in-progress add will use: the chosen or
// typed key name once known, "" before that (and outside the add flow).
func (s *Session) PendingKey() string {
	if st, ok := s.st.(addingKey); ok {
		return st.key
	}
	return ""
}

// Picker returns the filtered key choices and cursor position while in
// ModeChoosingKey, or (nil, 0) in any other mode.
func (s *Session) Picker() ([]string, int) {
	st, ok := s.st.(addingKey)
	if !ok || st.stage != stageChoosingKey {
		return nil, 0
	}
	return FilterChoices(st.filter), st.pick
}

// SuggestedValues returns the catalog suggestions relevant to the current
// mode: allowed values for the key being edited or added, nil otherwise.
func (s *Session) SuggestedValues() []string {
	switch st := s.st.(type) {
	case editingValue:
		return catalog.AllowedValues(s.entryKey(st.index))
	case addingKey:
		if st.stage == stageValue {
			return catalog.AllowedValues(st.key)
		}
	}
	return nil
}

// FilterChoices returns the key-picker choices for a filter string: every
// catalog key whose name or description contains the filter
// (case-insensitive), plus the CustomKeyChoice sentinel, which always
// matches so a custom key can be created regardless of filter.
func FilterChoices(filter string) []string {
	f := strings.ToLower(filter)
	var out []string
	for _, k := range catalog.Keys() {
		if f == "" ||
			strings.Contains(strings.ToLower(k.Name), f) ||
			strings.Contains(strings.ToLower(k.Description), f) {
			out = append(out, k.Name)
		}
	}
	return append(out, CustomKeyChoice)
}

// cycleSuggestion steps the buffer through the catalog's suggested values
// for key. When the buffer is not currently a suggestion, the first (or
// last) suggestion is chosen; free-form keys leave the buffer untouched.
func (s *Session) cycleSuggestion(key, buffer string, dir int) string {
	vals := catalog.AllowedValues(key)
	if len(vals) == 0 {
		return buffer
	}
	cur := -1
	for i, v := range vals {
		if v == buffer {
			cur = i
			break
		}
	}
	if cur < 0 {
		if dir < 0 {
			return vals[len(vals)-1]
		}
		return vals[0]
	}
	return vals[(cur+dir+len(vals))%len(vals)]
}

// entryKey returns the key of the entry at index. Indices held by session
// state are valid by construction.
func (s *Session) entryKey(index int) string {
	e, _ := s.store.Get(index)
	return e.Key
}

// clampSelection clamps a candidate selection to [0, length-1], or -1 when
// the store is empty.
func clampSelection(sel, length int) int {
	if length == 0 {
		return -1
	}
	if sel < 0 {
		return 0
	}
	if sel >= length {
		return length - 1
	}
	return sel
}

// clampPick keeps the picker cursor inside the filtered choice list after
// the filter changes.
func clampPick(pick, length int) int {
	if length == 0 {
		return 0
	}
	if pick < 0 {
		return 0
	}
	if pick >= length {
		return length - 1
	}
	return pick
}

// dropLastRune removes the final rune from a string, handling multi-byte
// characters.
func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
