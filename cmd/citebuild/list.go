package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listType string

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by work type (book, chapter, journal, magazine, newspaper, website)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List works in the library",
	Long: `List all works in the library.

Examples:
  citebuild list
  citebuild list --type journal --human`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	lib := mustOpenLibrary()

	var (
		records []map[string]any
		err     error
	)
	if listType != "" {
		records, err = lib.ListByType(listType)
	} else {
		records, err = lib.List()
	}
	if err != nil {
		exitWithError(ExitError, "listing works: %v", err)
	}

	summaries := make([]WorkSummary, len(records))
	for i, r := range records {
		summaries[i] = WorkSummary{
			ID:    recordString(r, "id"),
			Type:  recordString(r, "type"),
			Title: recordString(r, "title"),
		}
	}

	if humanOutput {
		if len(summaries) == 0 {
			fmt.Println("No works in library")
			return nil
		}
		fmt.Printf("%d works in library:\n\n", len(summaries))
		for _, s := range summaries {
			fmt.Printf("  %-28s %-10s %s\n", s.ID, s.Type, truncateString(s.Title, ListTitleMaxLen))
		}
	} else {
		outputJSON(summaries)
	}
	return nil
}
