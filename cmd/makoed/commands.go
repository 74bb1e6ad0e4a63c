package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okranz/makoed/internal/catalog"
	"github.com/okranz/makoed/internal/daemon"
	"github.com/okranz/makoed/internal/entries"
	"github.com/okranz/makoed/internal/prefs"
	"github.com/okranz/makoed/internal/tui"
)

// Command flags
var (
	configPath   string
	logLevel     string
	outputFormat string
	noReload     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to mako config file (default: ~/.config/mako/config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(reloadCmd)
}

// resolvePath picks the config file location: the --config flag wins, then
// the preferences override, then the conventional XDG path.
func resolvePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	p, err := prefs.Load()
	if err == nil && p.ConfigPath != "" {
		return p.ConfigPath, nil
	}
	return entries.DefaultPath()
}

// editCmd launches the interactive editor (also the root default)
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Launch the interactive editor",
	Long: `Launch the full-screen interactive editor.

Navigate entries with ↑/↓ or j/k, edit with enter, add with 'a', delete
with 'd' (confirmation required), save with 's', quit with 'q'. A save
reloads the daemon when reload_on_save is enabled in preferences.`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive editor requires a terminal; use 'makoed show' or 'makoed set' for scripted access")
	}

	path, err := resolvePath()
	if err != nil {
		return err
	}

	p, err := prefs.Load()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	store, loadErr := entries.Load(path)
	if loadErr != nil {
		// A malformed file must not prevent editing; surface the error in
		// the status line and start from seeded defaults.
		if !entries.IsLoadError(loadErr) {
			return loadErr
		}
		store = entries.NewSeeded()
	}

	return tui.Run(path, store, p, loadErr)
}

// showCmd prints the current configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current mako configuration",
	Long: `Print the entries of the mako config file.

The detailed format annotates recognized keys with their catalog
description; compact prints bare key = value lines; json emits a machine
readable array.`,
	Example: `  # Human readable listing
  makoed show

  # Bare key = value lines
  makoed show --format compact

  # JSON for scripting
  makoed show --format json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	path, err := resolvePath()
	if err != nil {
		return err
	}
	store, err := entries.Load(path)
	if err != nil {
		return err
	}

	all := store.Entries()
	switch outputFormat {
	case "json":
		out := make([]map[string]string, 0, len(all))
		for _, e := range all {
			out = append(out, map[string]string{"key": e.Key, "value": e.Value})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "compact":
		for _, e := range all {
			fmt.Println(e.String())
		}

	default:
		fmt.Printf("%s (%d entries)\n\n", path, len(all))
		for _, e := range all {
			fmt.Printf("  %-26s = %s\n", e.Key, e.Value)
			if desc := catalog.Describe(e.Key); desc != "" {
				fmt.Printf("  %-26s   %s\n", "", desc)
			}
		}
	}
	return nil
}

// keysCmd lists the recognized keys
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognized configuration keys",
	Long:  `List the catalog of recognized mako configuration keys, with a short description and the suggested values where a key takes one of a few known words.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range catalog.Keys() {
			fmt.Printf("%-26s %s\n", k.Name, k.Description)
			if len(k.Values) > 0 {
				fmt.Printf("%-26s   values: %v\n", "", k.Values)
			}
		}
	},
}

// getCmd prints the value(s) of one key
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of a key",
	Long:  `Print the value of a configuration key. Duplicate keys print one value per line. Exits non-zero when the key is absent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvePath()
		if err != nil {
			return err
		}
		store, err := entries.Load(path)
		if err != nil {
			return err
		}
		found := false
		for _, e := range store.Entries() {
			if e.Key == args[0] {
				fmt.Println(e.Value)
				found = true
			}
		}
		if !found {
			return fmt.Errorf("key %q not set in %s", args[0], path)
		}
		return nil
	},
}

// setCmd sets (or adds) a key
var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set the value of a configuration key and save the file.

When the key already exists its first occurrence is updated; otherwise a
new entry is appended. The daemon is reloaded afterwards unless
--no-reload is given.`,
	Example: `  makoed set default-timeout 5000
  makoed set border-color "#7D56F4" --no-reload`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVar(&noReload, "no-reload", false, "Do not run 'makoctl reload' after saving")
	unsetCmd.Flags().BoolVar(&noReload, "no-reload", false, "Do not run 'makoctl reload' after saving")
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	path, err := resolvePath()
	if err != nil {
		return err
	}
	store, err := entries.Load(path)
	if err != nil {
		return err
	}

	updated := false
	for i, e := range store.Entries() {
		if e.Key == key {
			store.Set(i, value)
			updated = true
			break
		}
	}
	if !updated {
		store.Insert(entries.Entry{Key: key, Value: value})
	}

	if err := store.Save(path); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)

	if vals := catalog.AllowedValues(key); len(vals) > 0 && !contains(vals, value) {
		fmt.Printf("note: %q is not a typical value for %s (suggested: %v)\n", value, key, vals)
	}

	return maybeReload()
}

// unsetCmd removes all entries for a key
var unsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a configuration key",
	Long:  `Remove every entry for the given key and save the file. Exits non-zero when the key is absent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvePath()
		if err != nil {
			return err
		}
		store, err := entries.Load(path)
		if err != nil {
			return err
		}

		removed := 0
		for {
			idx := -1
			for i, e := range store.Entries() {
				if e.Key == args[0] {
					idx = i
					break
				}
			}
			if idx < 0 {
				break
			}
			store.Remove(idx)
			removed++
		}
		if removed == 0 {
			return fmt.Errorf("key %q not set in %s", args[0], path)
		}

		if err := store.Save(path); err != nil {
			return err
		}
		fmt.Printf("removed %d entr%s for %s\n", removed, plural(removed, "y", "ies"), args[0])
		return maybeReload()
	},
}

// pathCmd prints the resolved config file path
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved config file path",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := resolvePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	},
}

// reloadCmd asks the running daemon to re-read its config
var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Run 'makoctl reload'",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := daemon.Reload()
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Println(out)
		}
		return nil
	},
}

// maybeReload reloads the daemon after a scripted change, honoring both
// the --no-reload flag and the reload_on_save preference.
func maybeReload() error {
	if noReload {
		return nil
	}
	p, err := prefs.Load()
	if err == nil && !p.ReloadOnSave {
		return nil
	}
	if _, err := daemon.Reload(); err != nil {
		// A scripted set succeeded even if the daemon isn't running.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

func contains(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
