package main

import (
	"fmt"

	"github.com/Piestar/citationbuilder/internal/importer"
	"github.com/Piestar/citationbuilder/internal/store"
	"github.com/spf13/cobra"
)

var addID string

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "Explicit ID for the work (single-entry files only)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add works from a JSON or YAML file to the library",
	Long: `Add works from a JSON or YAML batch file to the library.

Each entry must have a type and a title. Entries without an id get one
derived from the title and year (e.g. "great-war-history-2009").

Examples:
  citebuild add works.json
  citebuild add novel.yaml --id great-war-history-2009`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

// AddResponse reports what the add command stored and skipped.
type AddResponse struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped,omitempty"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	lib := mustOpenLibrary()

	records, errs := importer.ParseFile(args[0])
	if len(records) == 0 && len(errs) > 0 {
		exitWithError(ExitDataError, "parsing %s: %v", args[0], errs[0])
	}
	if addID != "" && len(records) != 1 {
		exitWithError(ExitError, "--id requires a single-entry file, got %d entries", len(records))
	}

	resp := AddResponse{Added: []string{}}
	for _, err := range errs {
		resp.Skipped = append(resp.Skipped, err.Error())
	}

	for _, record := range records {
		id := recordString(record, "id")
		if addID != "" {
			id = addID
		}
		if id == "" {
			id = store.Slug(recordString(record, "title"), recordYearField(record))
		}
		record["id"] = id
		if err := lib.Append(record); err != nil {
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		resp.Added = append(resp.Added, id)
	}

	if humanOutput {
		for _, id := range resp.Added {
			fmt.Printf("added %s\n", id)
		}
		for _, msg := range resp.Skipped {
			fmt.Printf("skipped: %s\n", msg)
		}
	} else {
		outputJSON(resp)
	}

	if len(resp.Added) == 0 {
		return fmt.Errorf("no works added from %s", args[0])
	}
	return nil
}

// recordYearField picks the first populated year field of a raw record.
// Work types store their year under different keys.
func recordYearField(record store.Record) string {
	for _, key := range []string{"publicationYear", "yearPublished", "year", "electronicPublishYear"} {
		if y := recordString(record, key); y != "" {
			return y
		}
	}
	return ""
}
