package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Piestar/citationbuilder/internal/config"
	"github.com/Piestar/citationbuilder/internal/doiorg"
	"github.com/Piestar/citationbuilder/internal/importer"
	"github.com/Piestar/citationbuilder/internal/store"
	"github.com/spf13/cobra"
)

var (
	importPDFLookup bool
	importPDFAdd    bool
)

func init() {
	importPDFCmd.Flags().BoolVar(&importPDFLookup, "lookup", false, "Complete the record via doi.org when a DOI was found")
	importPDFCmd.Flags().BoolVar(&importPDFAdd, "add", false, "Add the extracted work to the library")
	rootCmd.AddCommand(importPDFCmd)
}

var importPDFCmd = &cobra.Command{
	Use:   "import-pdf <file>",
	Short: "Extract a work record from a PDF",
	Long: `Extract a skeletal work record from a PDF.

Scans the first pages for a DOI and guesses a title from the first
page. With --lookup the DOI is resolved via doi.org into a full
record; with --add the result is stored in the library.

Examples:
  citebuild import-pdf paper.pdf
  citebuild import-pdf paper.pdf --lookup --add`,
	Args: cobra.ExactArgs(1),
	RunE: runImportPDF,
}

func runImportPDF(cmd *cobra.Command, args []string) error {
	record, err := importer.FromPDF(args[0])
	if err != nil {
		exitWithError(ExitDataError, "extracting from %s: %v", args[0], err)
	}

	if importPDFLookup {
		doi := recordString(record, "doi")
		if doi == "" {
			exitWithError(ExitDataError, "no DOI found in %s, cannot look up", args[0])
		}
		mailto := os.Getenv("CITEBUILD_MAILTO")
		if mailto == "" {
			mailto = config.GetMailto()
		}
		client := doiorg.NewClient(doiorg.WithMailto(mailto))
		resolved, err := client.Lookup(context.Background(), doi)
		if err != nil {
			if errors.Is(err, doiorg.ErrNotFound) {
				exitWithError(ExitNotFound, "DOI not found: %s", doi)
			}
			exitWithError(ExitAPIError, "resolving DOI: %v", err)
		}
		record = resolved
		record["doi"] = doi
	}

	if importPDFAdd {
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
		if doi := recordString(record, "doi"); doi != "" {
			fmt.Printf("  doi:  %s\n", doi)
		}
		fmt.Printf("  type: %s\n", recordString(record, "type"))
	} else {
		outputJSON(record)
	}
	return nil
}
