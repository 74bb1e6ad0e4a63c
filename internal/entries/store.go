package entries

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okranz/makoed/internal/logging"
)

// Entry is one configuration line: a key and its value. Duplicate keys are
// legal; each entry occupies its own row.
type Entry struct {
	Key   string
	Value string
}

// String renders the entry in the persisted format.
func (e Entry) String() string {
	return e.Key + " = " + e.Value
}

// lineKind distinguishes entry lines from verbatim (comment/blank) lines.
type lineKind int

const (
	lineEntry    lineKind = iota
	lineVerbatim          // comment or blank line, preserved as-is
)

// line is one physical line of the persisted file. Entry lines carry key
// and value; verbatim lines carry the raw text.
type line struct {
	kind  lineKind
	key   string
	value string
	raw   string
}

// Store is the ordered collection of configuration entries plus the
// comment and blank lines around them. Insertion order is significant and
// survives a save/load round trip. Entries are addressed by position;
// indices shift down when an earlier entry is removed.
type Store struct {
	lines []line
}

// DefaultEntries are seeded when the persisted file is absent so first-run
// users see example content instead of an empty list.
var DefaultEntries = []Entry{
	{Key: "font", Value: "monospace 10"},
	{Key: "background-color", Value: "#1d1f21"},
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store populated with DefaultEntries.
func NewSeeded() *Store {
	s := New()
	for _, e := range DefaultEntries {
		s.Insert(e)
	}
	return s
}

// Len returns the number of entries (verbatim lines are not counted).
func (s *Store) Len() int {
	n := 0
	for _, l := range s.lines {
		if l.kind == lineEntry {
			n++
		}
	}
	return n
}

// entryLine maps an entry index to its position in s.lines, or -1.
func (s *Store) entryLine(index int) int {
	n := 0
	for i, l := range s.lines {
		if l.kind != lineEntry {
			continue
		}
		if n == index {
			return i
		}
		n++
	}
	return -1
}

// Get returns the entry at index, or false if index is out of bounds.
func (s *Store) Get(index int) (Entry, bool) {
	if index < 0 {
		return Entry{}, false
	}
	li := s.entryLine(index)
	if li < 0 {
		return Entry{}, false
	}
	return Entry{Key: s.lines[li].key, Value: s.lines[li].value}, true
}

// Entries returns a snapshot of all entries in order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.lines))
	for _, l := range s.lines {
		if l.kind == lineEntry {
			out = append(out, Entry{Key: l.key, Value: l.value})
		}
	}
	return out
}

// Set replaces the value at index. The index must be valid: callers go
// through the edit session, which validates indices at transition time.
func (s *Store) Set(index int, value string) {
	li := s.entryLine(index)
	if li < 0 {
		panic(fmt.Sprintf("entries: Set index %d out of range (len %d)", index, s.Len()))
	}
	s.lines[li].value = value
	logging.LogStoreMutation("set", s.lines[li].key, index)
}

// Insert appends an entry at the end of the store.
func (s *Store) Insert(e Entry) {
	s.lines = append(s.lines, line{kind: lineEntry, key: e.Key, value: e.Value})
	logging.LogStoreMutation("insert", e.Key, s.Len()-1)
}

// Remove deletes the entry at index, shifting subsequent entries down.
// The index must be valid (see Set).
func (s *Store) Remove(index int) {
	li := s.entryLine(index)
	if li < 0 {
		panic(fmt.Sprintf("entries: Remove index %d out of range (len %d)", index, s.Len()))
	}
	key := s.lines[li].key
	s.lines = append(s.lines[:li], s.lines[li+1:]...)
	logging.LogStoreMutation("remove", key, index)
}

// Load reads the persisted config file at path. An absent file yields a
// store seeded with DefaultEntries. A file that exists but contains a
// non-comment, non-blank line without '=' yields a *LoadError.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.Info("Config file absent, seeding defaults")
		return NewSeeded(), nil
	}
	if err != nil {
		lerr := &LoadError{Path: path, Message: "cannot read file", Err: err}
		logging.LogFileOp("load", path, 0, lerr)
		return nil, lerr
	}

	s, err := Parse(string(data), path)
	logging.LogFileOp("load", path, lenOrZero(s), err)
	return s, err
}

func lenOrZero(s *Store) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

// Parse builds a store from the raw file contents. path is used only for
// error reporting.
func Parse(data, path string) (*Store, error) {
	s := New()
	// Normalize a trailing newline away so it doesn't become a spurious
	// blank verbatim line; Save re-adds it.
	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return s, nil
	}
	for i, raw := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			s.lines = append(s.lines, line{kind: lineVerbatim, raw: raw})
			continue
		}
		eq := strings.Index(trimmed, "=")
		if eq < 0 {
			return nil, &LoadError{
				Path:    path,
				Line:    i + 1,
				Message: fmt.Sprintf("expected 'key = value', got %q", trimmed),
			}
		}
		key := strings.TrimSpace(trimmed[:eq])
		value := unquote(strings.TrimSpace(trimmed[eq+1:]))
		s.lines = append(s.lines, line{kind: lineEntry, key: key, value: value})
	}
	return s, nil
}

// unquote strips a matching pair of single or double quotes around a value
// and unescapes embedded quotes, matching how mako configs are commonly
// hand-written.
func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			inner := v[1 : len(v)-1]
			return strings.ReplaceAll(inner, `\"`, `"`)
		}
	}
	return v
}

// Render produces the file contents for the current store state: entries
// as "key = value", verbatim lines untouched, in original order.
func (s *Store) Render() string {
	var b strings.Builder
	for _, l := range s.lines {
		switch l.kind {
		case lineEntry:
			b.WriteString(l.key)
			b.WriteString(" = ")
			b.WriteString(l.value)
		case lineVerbatim:
			b.WriteString(l.raw)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Save persists the store to path atomically (write to a temp file, then
// rename). The parent directory is created if needed. I/O failures are
// returned as *SaveError.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		serr := &SaveError{Path: path, Err: err}
		logging.LogFileOp("save", path, s.Len(), serr)
		return serr
	}

	data := []byte(s.Render())

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		serr := &SaveError{Path: path, Err: err}
		logging.LogFileOp("save", path, s.Len(), serr)
		return serr
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		serr := &SaveError{Path: path, Err: err}
		logging.LogFileOp("save", path, s.Len(), serr)
		return serr
	}

	logging.LogFileOp("save", path, s.Len(), nil)
	return nil
}
