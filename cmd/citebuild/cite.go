package main

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Piestar/citationbuilder/internal/cite"
	"github.com/Piestar/citationbuilder/internal/config"
	"github.com/Piestar/citationbuilder/internal/importer"
	"github.com/Piestar/citationbuilder/internal/style"
	"github.com/spf13/cobra"
)

var (
	citeStyle   string
	citeFile    string
	citeAll     bool
	citeWorkers int
)

func init() {
	citeCmd.Flags().StringVarP(&citeStyle, "style", "s", "", "Citation style: apa6 or mla7 (default from config)")
	citeCmd.Flags().StringVarP(&citeFile, "file", "f", "", "Render works from a JSON or YAML batch file instead of the library")
	citeCmd.Flags().BoolVar(&citeAll, "all", false, "Render every work in the library")
	citeCmd.Flags().IntVar(&citeWorkers, "workers", 1, "Number of concurrent rendering workers")
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite [id...]",
	Short: "Render works as formatted citations",
	Long: `Render works as HTML citation fragments.

Works come from the library by ID, from a batch file (--file), or the
whole library (--all). The style defaults to the configured default
style (apa6 unless changed).

Examples:
  citebuild cite great-war-history-2009
  citebuild cite --all --style mla7
  citebuild cite --file works.yaml --workers 4 --human`,
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	if citeStyle == "" {
		citeStyle = config.GetDefaultStyle()
	}
	st, ok := style.ByName(citeStyle)
	if !ok {
		exitWithError(ExitError, "unknown style: %s (supported: apa6, mla7)", citeStyle)
	}

	var (
		raws []map[string]any
		ids  []string
	)

	switch {
	case citeFile != "":
		records, errs := importer.ParseFile(citeFile)
		if len(records) == 0 && len(errs) > 0 {
			exitWithError(ExitDataError, "parsing %s: %v", citeFile, errs[0])
		}
		for _, err := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		raws = records
		ids = make([]string, len(records))
		for i, r := range records {
			ids[i] = recordString(r, "id")
		}
	case citeAll:
		lib := mustOpenLibrary()
		records, err := lib.List()
		if err != nil {
			exitWithError(ExitError, "listing works: %v", err)
		}
		raws = records
		ids = make([]string, len(records))
		for i, r := range records {
			ids[i] = recordString(r, "id")
		}
	case len(args) > 0:
		lib := mustOpenLibrary()
		for _, id := range args {
			record, err := lib.Get(id)
			if err != nil {
				exitWithError(ExitError, "reading library: %v", err)
			}
			if record == nil {
				exitWithError(ExitNotFound, "no work with id %s", id)
			}
			raws = append(raws, record)
			ids = append(ids, id)
		}
	default:
		exitWithError(ExitError, "nothing to cite: pass work IDs, --file, or --all")
	}

	var results []cite.Result
	if citeWorkers > 1 {
		results = cite.BuildCitationsConcurrent(context.Background(), raws, st, citeWorkers)
	} else {
		results = cite.BuildCitations(raws, st)
	}

	out := make([]CitationResult, len(results))
	failed := false
	for i, r := range results {
		out[i] = CitationResult{ID: ids[i], Style: st.Name()}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			failed = true
		} else {
			out[i].HTML = r.HTML
		}
	}

	if humanOutput {
		for _, r := range out {
			if r.Error != "" {
				fmt.Printf("%s: error: %s\n", r.ID, r.Error)
			} else {
				fmt.Println(stripTags(r.HTML))
			}
		}
	} else {
		outputJSON(out)
	}

	if failed {
		return fmt.Errorf("%d of %d works failed to render", countErrors(out), len(out))
	}
	return nil
}

func countErrors(results []CitationResult) int {
	n := 0
	for _, r := range results {
		if r.Error != "" {
			n++
		}
	}
	return n
}

// stripTags flattens a citation fragment to plain text for human output.
func stripTags(s string) string {
	s = strings.ReplaceAll(s, "<i>", "")
	s = strings.ReplaceAll(s, "</i>", "")
	return strings.TrimSpace(html.UnescapeString(s))
}
