package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName   = "makoed"
	prefsFile = "config.yaml"
)

var (
	// Global preferences instance (loaded lazily)
	globalPrefs     *Prefs
	globalPrefsOnce sync.Once
	globalPrefsErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// Prefs holds makoed's own settings. These control the editor, not mako:
// mako's configuration lives in the entry store.
type Prefs struct {
	Version int `yaml:"version"`
	// ConfigPath overrides the location of mako's config file. Empty
	// means the conventional XDG path.
	ConfigPath string `yaml:"config_path,omitempty"`
	// ReloadOnSave runs `makoctl reload` after each successful save so
	// changes take effect immediately.
	ReloadOnSave bool `yaml:"reload_on_save"`
	// NotifyOnSave sends a desktop notification after each successful
	// save, which doubles as a live preview of the new style.
	NotifyOnSave bool `yaml:"notify_on_save"`
}

// Defaults returns a Prefs with default values.
func Defaults() *Prefs {
	return &Prefs{
		Version:      1,
		ReloadOnSave: true,
		NotifyOnSave: false,
	}
}

// Dir returns the OS-appropriate directory for makoed's own files:
// $XDG_CONFIG_HOME/makoed, or $HOME/.config/makoed when XDG_CONFIG_HOME
// is unset.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// Path returns the full path to the preferences file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsFile), nil
}

// Load loads the preferences from disk. If the file doesn't exist,
// returns defaults. Thread-safe - multiple calls return the same
// instance.
func Load() (*Prefs, error) {
	globalPrefsOnce.Do(func() {
		globalPrefs, globalPrefsErr = loadFromDisk()
	})
	return globalPrefs, globalPrefsErr
}

// loadFromDisk performs the actual file loading.
func loadFromDisk() (*Prefs, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences path: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	return Parse(data)
}

// Parse decodes preferences from YAML and validates the schema version.
func Parse(data []byte) (*Prefs, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	if p.Version != 1 {
		return nil, fmt.Errorf("unsupported preferences version: %d (expected 1)", p.Version)
	}
	return p, nil
}

// Save saves the preferences to disk. Performs an atomic write to prevent
// corruption on crash.
func (p *Prefs) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	header := []byte(`# makoed preferences
# These settings control the editor itself; mako's configuration lives
# in ` + "`~/.config/mako/config`" + ` and is edited through the UI.

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary preferences file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save preferences file: %w", err)
	}

	return nil
}
