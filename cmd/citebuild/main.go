// Package main provides the citebuild CLI entry point.
package main

import (
	"os"

	"github.com/Piestar/citationbuilder/internal/config"
	"github.com/Piestar/citationbuilder/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citebuild",
	Short: "Bibliographic citation builder",
	Long: `citebuild formats bibliographic works as APA6 or MLA7 citations.

Works live in a git-versionable JSONL library with an ephemeral SQLite
index for fast queries. Citations are emitted as HTML fragments with
<i> italics. All commands output JSON by default; use --human for
human-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getLibraryDir returns the works library directory.
// CITEBUILD_LIBRARY overrides the configured path.
func getLibraryDir() string {
	if dir := os.Getenv("CITEBUILD_LIBRARY"); dir != "" {
		return dir
	}
	return config.GetLibraryPath()
}

// mustOpenLibrary opens the works library, exiting if it is not initialized.
func mustOpenLibrary() *store.Library {
	lib := store.Open(getLibraryDir())
	if _, err := os.Stat(lib.JSONLPath()); err != nil {
		exitWithError(ExitConfigError, "no works library at %s (run 'citebuild init')", getLibraryDir())
	}
	return lib
}
