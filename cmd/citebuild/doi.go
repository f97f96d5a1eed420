package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Piestar/citationbuilder/internal/config"
	"github.com/Piestar/citationbuilder/internal/doiorg"
	"github.com/Piestar/citationbuilder/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var doiAdd bool

func init() {
	// Load .env if present (for CITEBUILD_MAILTO)
	_ = godotenv.Load()

	doiCmd.Flags().BoolVar(&doiAdd, "add", false, "Add the resolved work to the library")
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <doi>",
	Short: "Resolve a DOI into a work record",
	Long: `Resolve a DOI via doi.org content negotiation into a raw work record.

Set a mailto address (config mailto, or CITEBUILD_MAILTO in the
environment or a .env file) so doi.org can identify polite traffic.

Examples:
  citebuild doi 10.1038/nature12373
  citebuild doi doi:10.1093/ajae/aaq063 --add`,
	Args: cobra.ExactArgs(1),
	RunE: runDoi,
}

func runDoi(cmd *cobra.Command, args []string) error {
	mailto := os.Getenv("CITEBUILD_MAILTO")
	if mailto == "" {
		mailto = config.GetMailto()
	}

	client := doiorg.NewClient(doiorg.WithMailto(mailto))
	record, err := client.Lookup(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, doiorg.ErrNotFound) {
			exitWithError(ExitNotFound, "DOI not found: %s", args[0])
		}
		exitWithError(ExitAPIError, "resolving DOI: %v", err)
	}

	if doiAdd {
		lib := mustOpenLibrary()
		id := store.Slug(recordString(record, "title"), recordYearField(record))
		record["id"] = id
		if err := lib.Append(record); err != nil {
			exitWithError(ExitError, "adding work: %v", err)
		}
		if humanOutput {
			fmt.Printf("added %s\n", id)
			return nil
		}
	}

	if humanOutput {
		fmt.Printf("%s\n", recordString(record, "title"))
		fmt.Printf("  type: %s\n", recordString(record, "type"))
		if id := recordString(record, "id"); id != "" {
			fmt.Printf("  id:   %s\n", id)
		}
	} else {
		outputJSON(record)
	}
	return nil
}
