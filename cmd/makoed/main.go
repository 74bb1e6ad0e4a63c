// Makoed is an interactive terminal editor for the mako notification
// daemon's configuration file.
//
// It lists the entries of ~/.config/mako/config, lets the user edit, add,
// and delete them with guidance on recognized keys and their values, and
// writes changes back preserving comments and ordering. Direct
// subcommands (get, set, unset, show) cover scripted use.
//
// Usage:
//
//	makoed [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'makoed --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okranz/makoed/internal/logging"
	"github.com/okranz/makoed/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "makoed",
	Short: "Interactive editor for the mako config file",
	Long: `A terminal editor for the mako notification daemon's configuration.

Browse, edit, add, and delete config entries with suggestions for
recognized keys, then save back to the file with comments and ordering
preserved. The daemon can be reloaded automatically after a save.

If no command is specified, the interactive editor will launch.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("makoed %s (commit: %s)\n", version.Version, version.Commit)
	},
}
