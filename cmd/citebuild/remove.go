package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a work from the library",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	lib := mustOpenLibrary()

	if err := lib.Remove(args[0]); err != nil {
		exitWithError(ExitNotFound, "removing work: %v", err)
	}

	if humanOutput {
		fmt.Printf("removed %s\n", args[0])
	} else {
		outputJSON(StatusResponse{Status: "removed"})
	}
	return nil
}
