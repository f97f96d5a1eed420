package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Piestar/citationbuilder/internal/store"
)

// ListTitleMaxLen bounds titles in list command output.
const ListTitleMaxLen = 50

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// CitationResult is one rendered citation in cite command output.
type CitationResult struct {
	ID    string `json:"id,omitempty"`
	Style string `json:"style"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// WorkSummary is one work in list command output.
type WorkSummary struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// recordString returns a string field from a raw work record.
func recordString(record store.Record, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
