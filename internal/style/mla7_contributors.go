package style

import (
	"strings"

	"github.com/Piestar/citationbuilder/internal/text"
	"github.com/Piestar/citationbuilder/internal/work"
)

// formatAuthors renders the author list: last-name-first for the lead
// author, natural order thereafter, "and" before the final name. When a
// work has no authors at all, any editors are promoted into the author
// slot and tagged "ed."/"eds.".
func (m MLA7) formatAuthors(contributors []work.Contributor) string {
	authors := work.FilterRole(contributors, work.RoleAuthor)
	if len(authors) == 0 {
		return m.editorsAsAuthors(contributors)
	}
	n := len(authors)
	var b strings.Builder
	for i, author := range authors {
		switch {
		case n == 1:
			b.WriteString(m.onlyAuthor(author))
		case i == 0:
			b.WriteString(m.firstAuthor(author))
		case i == n-1:
			b.WriteString(m.lastAuthor(author))
		default:
			b.WriteString(m.middleAuthor(author))
		}
	}
	return b.String()
}

func (MLA7) onlyAuthor(c work.Contributor) string {
	if c.Suppressed() {
		return ""
	}
	s := text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		s += ", " + text.CapitalizeWords(c.First)
		if c.MiddleInitial != "" {
			s += " " + text.CapitalizeWords(c.MiddleInitial)
		}
	}
	return s + ". "
}

func (MLA7) firstAuthor(c work.Contributor) string {
	s := text.CapitalizeWords(c.Last)
	if c.IsPerson() {
		s += ", " + text.CapitalizeWords(c.First)
		if c.MiddleInitial != "" {
			s += " " + text.CapitalizeWords(c.MiddleInitial) + "."
		}
	}
	return s + ","
}

func (MLA7) middleAuthor(c work.Contributor) string {
	s := " " + text.CapitalizeWords(c.First) + " "
	if c.MiddleInitial != "" {
		s += text.CapitalizeWords(c.MiddleInitial) + ". "
	}
	return s + text.CapitalizeWords(c.Last) + ","
}

func (MLA7) lastAuthor(c work.Contributor) string {
	s := " and " + text.CapitalizeWords(c.First) + " "
	if c.MiddleInitial != "" {
		s += text.CapitalizeWords(c.MiddleInitial) + ". "
	}
	return s + text.CapitalizeWords(c.Last) + ". "
}

// editorsAsAuthors renders editors in the author slot when no authors
// exist. A lone editor is tagged "ed." and multiple editors "eds.".
func (MLA7) editorsAsAuthors(contributors []work.Contributor) string {
	editors := work.FilterRole(contributors, work.RoleEditor)
	n := len(editors)
	var b strings.Builder
	for i, ed := range editors {
		switch {
		case n == 1:
			if ed.Suppressed() {
				continue
			}
			s := text.CapitalizeWords(ed.Last)
			if ed.IsPerson() {
				s += ", " + text.CapitalizeWords(ed.First)
				if ed.MiddleInitial != "" {
					s += " " + text.CapitalizeWords(ed.MiddleInitial)
				}
			}
			b.WriteString(s + ", ed. ")
		case i == 0:
			s := text.CapitalizeWords(ed.Last)
			if ed.IsPerson() {
				s += ", " + text.CapitalizeWords(ed.First)
				if ed.MiddleInitial != "" {
					s += " " + text.CapitalizeWords(ed.MiddleInitial) + "."
				}
			}
			if n > 2 {
				s += ","
			}
			b.WriteString(s)
		case i == n-1:
			s := " and " + text.CapitalizeWords(ed.First) + " "
			if ed.MiddleInitial != "" {
				s += text.CapitalizeWords(ed.MiddleInitial) + ". "
			}
			b.WriteString(s + text.CapitalizeWords(ed.Last) + ", eds. ")
		default:
			s := " " + text.CapitalizeWords(ed.First) + " "
			if ed.MiddleInitial != "" {
				s += text.CapitalizeWords(ed.MiddleInitial) + ". "
			}
			b.WriteString(s + text.CapitalizeWords(ed.Last) + ",")
		}
	}
	return b.String()
}

// formatTranslators renders the "Trans." clause in natural name order.
// Middle initials carry no period here.
func (MLA7) formatTranslators(contributors []work.Contributor) string {
	translators := work.FilterRole(contributors, work.RoleTranslator)
	n := len(translators)
	var b strings.Builder
	for i, tr := range translators {
		switch {
		case n == 1:
			s := "Trans. " + text.CapitalizeWords(tr.First) + " "
			if tr.MiddleInitial != "" {
				s += text.CapitalizeWords(tr.MiddleInitial) + " "
			}
			b.WriteString(s + text.CapitalizeWords(tr.Last) + ". ")
		case i == 0:
			s := "Trans. " + text.CapitalizeWords(tr.First) + " "
			if tr.MiddleInitial != "" {
				s += text.CapitalizeWords(tr.MiddleInitial) + " "
			}
			s += text.CapitalizeWords(tr.Last)
			if n > 2 {
				s += ","
			}
			b.WriteString(s)
		case i == n-1:
			s := " and " + text.CapitalizeWords(tr.First) + " "
			if tr.MiddleInitial != "" {
				s += text.CapitalizeWords(tr.MiddleInitial) + " "
			}
			b.WriteString(s + text.CapitalizeWords(tr.Last) + ". ")
		default:
			s := " " + text.CapitalizeWords(tr.First) + " "
			if tr.MiddleInitial != "" {
				s += text.CapitalizeWords(tr.MiddleInitial) + " "
			}
			b.WriteString(s + text.CapitalizeWords(tr.Last) + ",")
		}
	}
	return b.String()
}

// formatEditors renders the "Ed." clause. It is only used when the work
// also has authors; otherwise editors already occupy the author slot.
func (MLA7) formatEditors(contributors []work.Contributor) string {
	if len(work.FilterRole(contributors, work.RoleAuthor)) == 0 {
		return ""
	}
	editors := work.FilterRole(contributors, work.RoleEditor)
	n := len(editors)
	var b strings.Builder
	for i, ed := range editors {
		switch {
		case n == 1:
			s := "Ed. " + text.CapitalizeWords(ed.First) + " "
			if ed.MiddleInitial != "" {
				s += text.CapitalizeWords(ed.MiddleInitial) + " "
			}
			b.WriteString(s + text.CapitalizeWords(ed.Last) + ". ")
		case i == 0:
			s := "Ed. " + text.CapitalizeWords(ed.First) + " "
			if ed.MiddleInitial != "" {
				s += text.CapitalizeWords(ed.MiddleInitial) + " "
			}
			s += text.CapitalizeWords(ed.Last)
			if n > 2 {
				s += ","
			}
			b.WriteString(s)
		case i == n-1:
			s := " and " + text.CapitalizeWords(ed.First) + " "
			if ed.MiddleInitial != "" {
				s += text.CapitalizeWords(ed.MiddleInitial) + " "
			}
			b.WriteString(s + text.CapitalizeWords(ed.Last) + ". ")
		default:
			s := " " + text.CapitalizeWords(ed.First) + " "
			if ed.MiddleInitial != "" {
				s += text.CapitalizeWords(ed.MiddleInitial) + " "
			}
			b.WriteString(s + text.CapitalizeWords(ed.Last) + ",")
		}
	}
	return b.String()
}
