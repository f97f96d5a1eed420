package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DOI pattern: 10.XXXX/... where XXXX is 4+ digits.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// FromPDF builds a skeletal journal record from a PDF file, pulling a
// DOI and a best-effort title from the first pages. The record is
// meant to be completed by a DOI lookup afterwards.
func FromPDF(path string) (map[string]any, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	// DOI is usually on the first page; search the first three
	maxPages := 3
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	var doi, title string
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi == "" {
			doi = findDOI(text)
		}
		if i == 1 {
			title = guessTitle(text)
		}
		if doi != "" && title != "" {
			break
		}
	}

	if doi == "" && title == "" {
		return nil, fmt.Errorf("no DOI or title found in %s", path)
	}

	record := map[string]any{
		"type":   "journal",
		"medium": "print",
	}
	if title != "" {
		record["title"] = title
		record["articleTitle"] = title
	}
	if doi != "" {
		record["doi"] = doi
	}
	return record, nil
}

// findDOI returns the first plausible DOI in the text.
func findDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if isValidDOI(match) {
			return match
		}
	}
	return ""
}

func isValidDOI(doi string) bool {
	if len(doi) < 10 || !strings.HasPrefix(doi, "10.") {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash != -1 && slash < len(doi)-1
}

// guessTitle takes the first substantial line of the first page.
func guessTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 && !isHeaderLine(line) {
			return line
		}
	}
	return ""
}

// isHeaderLine checks if a line is likely a running header or footer.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "journal"):
		return true
	case strings.Contains(lower, "volume") && strings.Contains(lower, "issue"):
		return true
	case strings.Contains(lower, "copyright"):
		return true
	case strings.Contains(lower, "article") && strings.Contains(lower, "published"):
		return true
	}
	return false
}
