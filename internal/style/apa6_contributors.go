package style

import (
	"strings"

	"github.com/Piestar/citationbuilder/internal/text"
	"github.com/Piestar/citationbuilder/internal/work"
)

// formatAuthors renders the author list. Authors are joined positionally:
// an ampersand precedes the final author of lists up to seven, and lists
// of eight or more elide the middle names behind an ellipsis, keeping the
// first six and the last.
func (a APA6) formatAuthors(contributors []work.Contributor) string {
	authors := work.FilterRole(contributors, work.RoleAuthor)
	n := len(authors)
	var b strings.Builder
	for i, author := range authors {
		switch {
		case n == 1:
			b.WriteString(a.onlyAuthor(author))
		case i == 0:
			b.WriteString(a.firstAuthor(author))
		case n == 6 && i == 5:
			b.WriteString(a.sixthOfSixAuthors(author))
		case n == 7 && i == 5:
			b.WriteString(a.sixthOfSevenAuthors(author))
		case n > 7 && i == 5:
			b.WriteString(a.sixthBeforeEllipsis(author))
		case n > 7 && i > 5 && i < n-1:
			// elided behind the ellipsis
		case i == n-1:
			if n >= 7 {
				b.WriteString(a.finalAfterEllipsis(author))
			} else {
				b.WriteString(a.lastAuthor(author))
			}
		default:
			b.WriteString(a.middleAuthor(author))
		}
	}
	return b.String()
}

func (APA6) onlyAuthor(c work.Contributor) string {
	if c.Suppressed() {
		return ""
	}
	s := text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + ". "
		}
		if c.MiddleInitial != "" {
			s += text.CapitalizeWords(c.MiddleInitial) + ". "
		}
	} else {
		s += ". "
	}
	return s
}

func (APA6) firstAuthor(c work.Contributor) string {
	s := text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + "."
		}
		if c.MiddleInitial != "" {
			s += " " + text.CapitalizeWords(c.MiddleInitial) + "., "
		} else {
			s += ", "
		}
	} else {
		s += ", "
	}
	return s
}

func (APA6) middleAuthor(c work.Contributor) string {
	s := " " + text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + "."
		}
		if c.MiddleInitial != "" {
			s += " " + text.CapitalizeWords(c.MiddleInitial) + ".,"
		} else {
			s += ", "
		}
	} else {
		s += ", "
	}
	return s
}

func (APA6) lastAuthor(c work.Contributor) string {
	s := " & " + text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + "."
		}
		if c.MiddleInitial != "" {
			s += " " + text.CapitalizeWords(c.MiddleInitial) + ". "
		}
		s += " "
	} else {
		s += ". "
	}
	return s
}

func (APA6) sixthOfSixAuthors(c work.Contributor) string {
	s := " & " + text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + ". "
		}
		if c.MiddleInitial != "" {
			s += text.CapitalizeWords(c.MiddleInitial) + ". "
		}
	} else {
		s += ". "
	}
	return s
}

func (APA6) sixthOfSevenAuthors(c work.Contributor) string {
	s := " " + text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + ". "
		}
		if c.MiddleInitial != "" {
			s += text.CapitalizeWords(c.MiddleInitial) + "., & "
		} else {
			s += ", & "
		}
	} else {
		s += ", & "
	}
	return s
}

func (APA6) sixthBeforeEllipsis(c work.Contributor) string {
	s := " " + text.CapitalizeWords(c.Last) + ", "
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += text.FirstInitial(c.First) + ".-"
		} else {
			s += text.FirstInitial(c.First) + "."
		}
		if c.MiddleInitial != "" {
			s += " " + text.CapitalizeWords(c.MiddleInitial) + "."
		}
		s += ", . . . "
	} else {
		s += ", . . . "
	}
	return s
}

func (APA6) finalAfterEllipsis(c work.Contributor) string {
	s := " " + text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		if strings.Contains(c.First, "-") {
			s += ", " + text.FirstInitial(c.First) + ".-"
		} else {
			s += ", " + text.FirstInitial(c.First) + ". "
		}
		if c.MiddleInitial != "" {
			s += text.CapitalizeWords(c.MiddleInitial) + ". "
		}
	} else {
		s += ". "
	}
	return s
}

// formatTranslators renders nothing: translators never appear in this
// style's output, but assemblers still reserve their slot in the line.
func (APA6) formatTranslators([]work.Contributor) string { return "" }

// formatEditors renders nothing, matching formatTranslators.
func (APA6) formatEditors([]work.Contributor) string { return "" }
