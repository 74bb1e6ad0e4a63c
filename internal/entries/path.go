package entries

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the conventional location of mako's config file,
// following XDG conventions:
//   - $XDG_CONFIG_HOME/mako/config when XDG_CONFIG_HOME is set
//   - $HOME/.config/mako/config otherwise
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mako", "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mako", "config"), nil
}
