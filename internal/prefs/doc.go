// Package prefs manages makoed's own YAML preferences file.
//
// Preferences are distinct from the mako configuration being edited: they
// control editor behavior such as where mako's config file lives and
// whether the daemon is reloaded after a save. The file is stored at
// $XDG_CONFIG_HOME/makoed/config.yaml (or $HOME/.config/makoed/config.yaml)
// and written atomically.
//
// The global instance is loaded lazily with sync.Once; a missing file
// yields defaults rather than an error.
package prefs
