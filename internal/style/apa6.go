package style

import (
	"strings"

	"github.com/Piestar/citationbuilder/internal/text"
	"github.com/Piestar/citationbuilder/internal/work"
)

// APA6 formats citations under the American Psychological Association
// style guide, 6th edition.
type APA6 struct{}

// Name returns "APA6".
func (APA6) Name() string { return "APA6" }

// formatPublishDate renders a publication date as "(Year, Month Day)",
// or "(n.d.)" when no date parts are present.
func (APA6) formatPublishDate(day, month, year string) string {
	if day == "" && month == "" && year == "" {
		return "(n.d.)"
	}
	s := "(" + year + ", " + month
	if day != "" {
		s += " " + day
	}
	return s + ")"
}

// formatNewspaperPages renders newspaper page numbers with the p./pp.
// prefix. A start page with no distinct end page is a single page
// regardless of the non-consecutive flag.
func (APA6) formatNewspaperPages(start, end string, nonConsecutive bool, pageList string) string {
	switch {
	case start != "" && !nonConsecutive && (pageEq(start, end) || end == ""):
		return "p. " + text.CapitalizeWords(start)
	case pageLess(start, end) && !nonConsecutive:
		return "pp. " + text.CapitalizeWords(start) + "-" + text.CapitalizeWords(end)
	case nonConsecutive && pageList != "":
		return "pp. " + pageList
	}
	return ""
}

// formatJournalPages renders journal-style page numbers, which carry no
// p./pp. prefix.
func (APA6) formatJournalPages(start, end string, nonConsecutive bool, pageList string) string {
	switch {
	case start != "" && !nonConsecutive && (pageEq(start, end) || end == ""):
		return text.CapitalizeWords(start)
	case pageLess(start, end) && !nonConsecutive:
		return text.CapitalizeWords(start) + "-" + text.CapitalizeWords(end)
	case nonConsecutive && pageList != "":
		return pageList
	}
	return ""
}

// formatArticleTitle sentence-cases an article title, capitalizes any
// subtitle, and punctuates it.
func (APA6) formatArticleTitle(title string) string {
	t := sentenceCase(title)
	t = text.UppercaseSubtitle(t)
	return text.EnsurePeriod(t)
}

// formatBookTitle renders a book title in sentence case wrapped in
// italics markup.
func (a APA6) formatBookTitle(title string) string {
	return "<i>" + a.formatArticleTitle(title) + "</i>"
}

// retrievalClause renders the trailing retrieval statement: a URL when
// present, otherwise a DOI.
func (APA6) retrievalClause(url, doi string) string {
	if url != "" {
		return "Retrieved from " + text.EnsureScheme(url)
	}
	if doi != "" {
		return "doi:" + doi
	}
	return ""
}

// Book creates a citation for a book in its entirety.
func (a APA6) Book(w *work.Work) string {
	var b strings.Builder
	b.WriteString(a.formatAuthors(w.Contributors()))
	if year := w.Str("publicationYear"); year != "" {
		b.WriteString(" (" + year + "). ")
	}
	if title := w.Str("title"); title != "" {
		b.WriteString(a.formatBookTitle(title) + " ")
	}
	b.WriteString(a.formatTranslators(w.Contributors()) + " ")
	b.WriteString(a.formatEditors(w.Contributors()) + " ")
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		if loc := w.Str("publisherLocation"); loc != "" {
			b.WriteString(text.CapitalizeWords(loc) + ": ")
		}
		if pub := w.Str("publisher"); pub != "" {
			b.WriteString(text.CapitalizeWords(pub) + ".")
		}
	case work.MediumWebsite:
		b.WriteString(a.retrievalClause(w.Str("webUrl"), w.Str("webDoi")))
	case work.MediumDatabase:
		b.WriteString(a.retrievalClause(w.Str("dbUrl"), w.Str("dbDoi")))
	case work.MediumEbook:
		b.WriteString(a.retrievalClause(w.Str("ebookUrl"), w.Str("ebookDoi")))
	}
	return b.String()
}

// Chapter creates a citation for a chapter or essay from a book.
func (a APA6) Chapter(w *work.Work) string {
	var b strings.Builder
	b.WriteString(a.formatAuthors(w.Contributors()))
	if year := w.Str("publicationYear"); year != "" {
		b.WriteString(" (" + year + "). ")
	}
	if title := w.Str("title"); title != "" {
		b.WriteString(a.formatArticleTitle(title) + " ")
	}
	b.WriteString(a.formatTranslators(w.Contributors()) + " ")
	b.WriteString("In ")
	pages := a.formatNewspaperPages(w.Str("startPage"), w.Str("endPage"),
		w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums"))
	if pages != "" {
		if bookTitle := w.Str("bookTitle"); bookTitle != "" {
			b.WriteString(a.formatBookTitle(bookTitle) + " ")
		}
		b.WriteString("(" + pages + "). ")
	} else if bookTitle := w.Str("bookTitle"); bookTitle != "" {
		b.WriteString(a.formatBookTitle(bookTitle) + " ")
	}
	if loc := w.Str("publisherLocation"); loc != "" {
		b.WriteString(text.CapitalizeWords(loc) + ": ")
	}
	if pub := w.Str("publisher"); pub != "" {
		b.WriteString(text.CapitalizeWords(pub) + ". ")
	}
	switch work.Medium(w.Str("medium")) {
	case work.MediumWebsite:
		b.WriteString(a.retrievalClause(w.Str("webUrl"), w.Str("webDoi")))
	case work.MediumDatabase:
		b.WriteString(a.retrievalClause(w.Str("dbUrl"), w.Str("dbDoi")))
	}
	return b.String()
}

// Journal creates a citation for a scholarly journal article.
func (a APA6) Journal(w *work.Work) string {
	var b strings.Builder
	b.WriteString(a.formatAuthors(w.Contributors()))
	if year := w.Str("yearPublished"); year != "" {
		b.WriteString(" (" + year + "). ")
	}
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(a.formatArticleTitle(title) + " ")
	}
	journalTitle := w.Str("journalTitle")
	if journalTitle != "" {
		b.WriteString("<i>" + text.LowerMinorWords(text.CapitalizeWords(journalTitle)) + "</i>")
	}
	volume, issue := w.Str("volume"), w.Str("issue")
	if volume != "" || issue != "" {
		if journalTitle != "" {
			b.WriteString(", ")
		}
		b.WriteString("<i>" + volume + "</i>")
		if issue != "" {
			b.WriteString("(" + issue + ")")
		}
	}
	pages := a.formatJournalPages(w.Str("startPage"), w.Str("endPage"),
		w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums"))
	if pages != "" {
		if volume != "" || issue != "" || journalTitle != "" {
			b.WriteString(", " + pages)
		} else {
			b.WriteString(pages)
		}
	}
	b.WriteString(". ")
	switch work.Medium(w.Str("medium")) {
	case work.MediumWebsite:
		b.WriteString(a.retrievalClause(w.Str("webUrl"), w.Str("webDoi")))
	case work.MediumDatabase:
		b.WriteString(a.retrievalClause(w.Str("dbUrl"), w.Str("dbDoi")))
	}
	return b.String()
}

// Magazine creates a citation for a magazine article.
func (a APA6) Magazine(w *work.Work) string {
	var b strings.Builder
	b.WriteString(a.formatAuthors(w.Contributors()))
	b.WriteString(a.formatPublishDate(w.Str("day"), w.Str("month"), w.Str("year")) + ". ")
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(a.formatArticleTitle(title) + " ")
	}
	magazineTitle := w.Str("magazineTitle")
	if magazineTitle != "" {
		b.WriteString("<i>" + text.LowerMinorWords(text.CapitalizeWords(magazineTitle)) + "</i>")
	}
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		pages := a.formatJournalPages(w.Str("startPage"), w.Str("endPage"),
			w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums"))
		a.issuePagesBlock(&b, magazineTitle,
			w.Str("printAdvancedInfoVolume"), w.Str("printAdvancedInfoIssue"), pages)
	case work.MediumWebsite:
		pages := a.formatJournalPages(w.Str("webStartPage"), w.Str("webEndPage"),
			w.Bool("webHasNonConsecutive"), w.Str("webNonConsecutivePageNums"))
		a.issuePagesBlock(&b, magazineTitle,
			w.Str("webAdvancedInfoVolume"), w.Str("webAdvancedInfoIssue"), pages)
		if url := w.Str("webUrl"); url != "" {
			b.WriteString("Retrieved from " + text.EnsureScheme(url))
		}
	case work.MediumDatabase:
		pages := a.formatJournalPages(w.Str("dbStartPage"), w.Str("dbEndPage"),
			w.Bool("dbHasNonConsecutive"), "")
		a.issuePagesBlock(&b, magazineTitle,
			w.Str("dbAdvancedInfoVolume"), w.Str("dbAdvancedInfoIssue"), pages)
		if url := w.Str("dbUrl"); url != "" {
			b.WriteString("Retrieved from " + text.EnsureScheme(url))
		}
	}
	return b.String()
}

// issuePagesBlock appends the volume/issue and page-range clause for a
// magazine citation. A comma precedes the page range only when a
// volume/issue or the magazine title was already emitted.
func (APA6) issuePagesBlock(b *strings.Builder, magazineTitle, volume, issue, pages string) {
	if volume != "" || issue != "" {
		if magazineTitle != "" {
			b.WriteString(", ")
		}
		b.WriteString("<i>" + volume + "</i>")
		if issue != "" {
			b.WriteString("(" + issue + ")")
		}
	}
	if pages != "" {
		if volume != "" || issue != "" || magazineTitle != "" {
			b.WriteString(", " + pages)
		} else {
			b.WriteString(pages)
		}
	}
	b.WriteString(". ")
}

// Newspaper creates a citation for a newspaper article.
func (a APA6) Newspaper(w *work.Work) string {
	var b strings.Builder
	b.WriteString(a.formatAuthors(w.Contributors()))
	medium := work.Medium(w.Str("medium"))
	switch medium {
	case work.MediumPrint:
		b.WriteString(a.formatPublishDate(w.Str("day"), w.Str("month"), w.Str("year")) + ". ")
	case work.MediumWebsite:
		b.WriteString(a.formatPublishDate(w.Str("electronicPublishDay"),
			w.Str("electronicPublishMonth"), w.Str("electronicPublishYear")) + ". ")
	case work.MediumDatabase:
		b.WriteString(a.formatPublishDate(w.Str("dbPublishedDay"),
			w.Str("dbPublishedMonth"), w.Str("dbPublishedYear")) + ". ")
	}
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(a.formatArticleTitle(title) + " ")
	}
	switch medium {
	case work.MediumPrint:
		b.WriteString("<i>" + text.CapitalizeWords(w.Str("newspaperTitle")) + "</i>")
		b.WriteString(", ")
		b.WriteString(a.formatNewspaperPages(w.Str("startPage"), w.Str("endPage"),
			w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums")) + ".")
	case work.MediumWebsite:
		b.WriteString("<i>" + text.CapitalizeWords(w.Str("newspaperTitle")) + "</i>. ")
		if url := w.Str("webUrl"); url != "" {
			b.WriteString("Retrieved from " + text.EnsureScheme(url))
		}
	case work.MediumDatabase:
		b.WriteString("<i>" + text.CapitalizeWords(w.Str("newspaperTitle")) + "</i>. ")
		if url := w.Str("dbUrl"); url != "" {
			b.WriteString("Retrieved from " + text.EnsureScheme(url))
		}
	}
	return b.String()
}

// Website creates a citation for a web site.
func (a APA6) Website(w *work.Work) string {
	var b strings.Builder
	b.WriteString(a.formatAuthors(w.Contributors()))
	b.WriteString(a.formatPublishDate(w.Str("electronicPublishDay"),
		w.Str("electronicPublishMonth"), w.Str("electronicPublishYear")) + ". ")
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(a.formatArticleTitle(title) + " ")
	}
	if webTitle := w.Str("webTitle"); webTitle != "" {
		b.WriteString("Retrieved from " + webTitle + " ")
	}
	if url := w.Str("webUrl"); url != "" {
		b.WriteString("website: " + text.EnsureScheme(url))
	}
	return b.String()
}
