// Package style implements citation style guides. Each style formats
// validated work records into HTML citation fragments; the only markup
// produced is <i>...</i> for italics and entity-escaped angle brackets
// around MLA URLs.
package style

import (
	"strconv"
	"strings"

	"github.com/Piestar/citationbuilder/internal/work"
)

// Style is a citation style guide. The per-work-type formatting methods
// are declared as separate interfaces so that a style may support only
// a subset of work types; dispatch lives in the cite package.
type Style interface {
	// Name returns the style's display name, e.g. "APA6".
	Name() string
}

// Per-work-type formatter capabilities.
type (
	BookFormatter      interface{ Book(*work.Work) string }
	ChapterFormatter   interface{ Chapter(*work.Work) string }
	JournalFormatter   interface{ Journal(*work.Work) string }
	MagazineFormatter  interface{ Magazine(*work.Work) string }
	NewspaperFormatter interface{ Newspaper(*work.Work) string }
	WebsiteFormatter   interface{ Website(*work.Work) string }
)

// ByName resolves a style identifier case-insensitively.
func ByName(name string) (Style, bool) {
	switch strings.ToLower(name) {
	case "apa6", "apa":
		return APA6{}, true
	case "mla7", "mla":
		return MLA7{}, true
	}
	return nil, false
}

// sentenceCase lowercases a string and uppercases its first letter.
func sentenceCase(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] = b[0] - 'a' + 'A'
	}
	return string(b)
}

// pageEq compares two page values, numerically when both parse as
// integers and textually otherwise.
func pageEq(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na == nb
	}
	return a == b
}

// pageLess reports whether page a precedes page b, numerically when
// both parse as integers and textually otherwise.
func pageLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// isAlpha reports whether s is non-empty and entirely ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// anySet reports whether any of the given field values is non-empty.
func anySet(values ...string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}
