package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show the raw record for a work",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	lib := mustOpenLibrary()

	record, err := lib.Get(args[0])
	if err != nil {
		exitWithError(ExitError, "reading library: %v", err)
	}
	if record == nil {
		exitWithError(ExitNotFound, "no work with id %s", args[0])
	}

	if humanOutput {
		fmt.Printf("%s\n", recordString(record, "title"))
		fmt.Printf("  id:   %s\n", recordString(record, "id"))
		fmt.Printf("  type: %s\n", recordString(record, "type"))
		if medium := recordString(record, "medium"); medium != "" {
			fmt.Printf("  medium: %s\n", medium)
		}
	} else {
		outputJSON(record)
	}
	return nil
}
