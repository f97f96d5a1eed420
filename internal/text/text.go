// Package text provides the string-normalization helpers shared by all
// citation styles: capitalization, subtitle handling, punctuation, URL
// schemes, and month/date display rules.
package text

import (
	"regexp"
	"strings"
)

// minorWords are the articles, prepositions, and conjunctions that stay
// lowercase in headline-cased titles.
var minorWords = []string{
	"A", "An", "And", "About", "As", "At", "Away", "But", "By", "Due",
	"For", "From", "In", "Into", "Like", "Of", "Off", "On", "Onto",
	"Or", "Over", "Per", "Than", "The", "Till", "To", "Until", "Up",
	"Upon", "Via", "With", "Within", "Without",
}

// fullMonths are the recognized full month names. A day of month is only
// displayed alongside one of these.
var fullMonths = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

// monthAbbreviations maps full month names to their MLA abbreviations.
// May, June, and July are not abbreviated.
var monthAbbreviations = map[string]string{
	"January":   "Jan.",
	"February":  "Feb.",
	"March":     "Mar.",
	"April":     "Apr.",
	"May":       "May",
	"June":      "June",
	"July":      "July",
	"August":    "Aug.",
	"September": "Sept.",
	"October":   "Oct.",
	"November":  "Nov.",
	"December":  "Dec.",
}

// urlSchemes are the URL prefixes accepted as-is by EnsureScheme.
var urlSchemes = []string{"http://", "https://", "ftp://", "telnet://", "gopher://"}

// subtitleRe matches a colon followed by spaces and a lowercase letter,
// i.e. an uncapitalized subtitle.
var subtitleRe = regexp.MustCompile(`:[ ]+[a-z]`)

// CapitalizeWords uppercases the first letter of every whitespace-delimited
// word, leaving the rest of each word unchanged.
func CapitalizeWords(s string) string {
	b := []byte(s)
	atBoundary := true
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			atBoundary = true
			continue
		}
		if atBoundary && c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
		atBoundary = false
	}
	return string(b)
}

// LowerMinorWords lowercases articles, prepositions, and conjunctions that
// appear as whole words surrounded by spaces. Leading and trailing words
// are intentionally left alone.
func LowerMinorWords(s string) string {
	for _, w := range minorWords {
		s = strings.ReplaceAll(s, " "+w+" ", " "+strings.ToLower(w)+" ")
	}
	return s
}

// UppercaseSubtitle uppercases the first letter after a colon-space
// sequence, so "war: a history" becomes "war: A history".
func UppercaseSubtitle(title string) string {
	loc := subtitleRe.FindStringIndex(title)
	if loc == nil {
		return title
	}
	b := []byte(title)
	b[loc[1]-1] = b[loc[1]-1] - 'a' + 'A'
	return string(b)
}

// EnsurePeriod appends a period unless the string already ends in ".",
// "?", or "!".
func EnsurePeriod(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!") {
		return s
	}
	return s + "."
}

// EnsureScheme prepends "http://" unless the URL already starts with a
// known scheme. The scheme check is case-insensitive.
func EnsureScheme(url string) string {
	lower := strings.ToLower(url)
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(lower, scheme) {
			return url
		}
	}
	return "http://" + url
}

// AbbreviateMonth shortens a full month name to its MLA abbreviation.
// Unrecognized input passes through unchanged.
func AbbreviateMonth(month string) string {
	if abbr, ok := monthAbbreviations[month]; ok {
		return abbr
	}
	return month
}

// ShowDay reports whether a day of month should be displayed for the
// given month value. Only recognized full month names qualify.
func ShowDay(month string) bool {
	return fullMonths[month]
}

// FirstInitial returns the uppercased first character of a name, or the
// empty string for an empty name.
func FirstInitial(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1])
}

// TrimLeadingArticle strips a single leading "A ", "An ", or "The " from
// a title.
func TrimLeadingArticle(s string) string {
	for _, article := range []string{"A ", "An ", "The "} {
		if strings.HasPrefix(s, article) {
			return s[len(article):]
		}
	}
	return s
}
