// Package cli implements the command-line interface for spincube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ederwin/spincube/internal/app/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "spincube",
	Short: "Interactive 3x3x3 cube puzzle",
	Long: `spincube - an interactive 3x3x3 cube puzzle.

Turn faces from the keyboard while the active slice animates smoothly,
in a desktop window (play) or in the terminal (tui). Sessions can be
recorded to a local database and reviewed later with history.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.spincube/spincube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
