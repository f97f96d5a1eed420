package main

import (
	"fmt"
	"os"

	"github.com/Piestar/citationbuilder/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a works library",
	Long: `Initialize a works library at the configured library path.

Creates:
  <library>/
  ├── works.jsonl   # Source of truth (git-versionable)
  └── works.db      # Ephemeral SQLite index (gitignored)

The library path comes from config library-path, or CITEBUILD_LIBRARY
if set.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := getLibraryDir()
	lib := store.Open(dir)

	if _, err := os.Stat(lib.JSONLPath()); err == nil {
		exitWithError(ExitError, "library already exists at %s", dir)
	}

	if err := lib.Init(); err != nil {
		exitWithError(ExitError, "initializing library: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized works library at %s\n", dir)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: dir})
	}
	return nil
}
