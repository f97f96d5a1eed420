package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the SQLite index from works.jsonl",
	Long: `Rebuild the ephemeral SQLite index from works.jsonl.

The index rebuilds automatically when stale; run this after editing
works.jsonl by hand to refresh it eagerly.`,
	RunE: runSync,
}

// SyncResponse reports an index rebuild.
type SyncResponse struct {
	Status string `json:"status"`
	Works  int    `json:"works"`
}

func runSync(cmd *cobra.Command, args []string) error {
	lib := mustOpenLibrary()

	n, err := lib.Sync()
	if err != nil {
		exitWithError(ExitError, "syncing index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d works\n", n)
	} else {
		outputJSON(SyncResponse{Status: "synced", Works: n})
	}
	return nil
}
