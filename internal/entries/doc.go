// Package entries models mako's configuration file as an ordered store of
// key/value entries.
//
// The store preserves the full shape of the file: comment and blank lines
// are carried verbatim and re-emitted in position on save, so editing a
// config never destroys a user's annotations. Entries are addressed by
// position (duplicate keys are legal), and insertion order survives a
// save/load round trip.
//
// # Persisted Format
//
// One entry per non-comment, non-blank line:
//
//	key = value
//
// Whitespace around '=' is ignored on parse; a single space is written on
// each side on save. Values wrapped in matching quotes are unquoted on
// load. A non-comment line without '=' is malformed and produces a
// *LoadError; an absent file produces a store seeded with DefaultEntries.
//
// # Index Discipline
//
// Get returns (Entry, false) for out-of-range indices, but Set and Remove
// panic: the interactive session validates every index at transition time,
// so an out-of-range mutation is a bug in the caller, not a runtime
// condition to recover from.
package entries
