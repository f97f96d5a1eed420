package style

import (
	"regexp"
	"strings"

	"github.com/Piestar/citationbuilder/internal/text"
	"github.com/Piestar/citationbuilder/internal/work"
)

// MLA7 formats citations under the Modern Language Association style
// guide, 7th edition.
type MLA7 struct{}

// Name returns "MLA7".
func (MLA7) Name() string { return "MLA7" }

var ebookFileRe = regexp.MustCompile(`[ ]+file`)

// formatPublishDate renders a publication date as "Day Mon. Year", or
// "n.d" when no date parts are present. The day is shown only for
// months whose abbreviation calls for it.
func (MLA7) formatPublishDate(day, month, year string) string {
	if day == "" && month == "" && year == "" {
		return "n.d"
	}
	var s string
	if text.ShowDay(month) {
		s = day + " "
	}
	return s + text.AbbreviateMonth(month) + " " + year
}

// formatAccessDate renders an access date for website or database media.
func (MLA7) formatAccessDate(day, month, year string) string {
	var s string
	if text.ShowDay(month) {
		s = day + " "
	}
	return s + text.AbbreviateMonth(month) + " " + year
}

// formatEdition normalizes an edition statement so it ends in "ed.".
func (MLA7) formatEdition(edition string) string {
	switch {
	case edition == "":
		return ""
	case strings.HasSuffix(edition, "edition"):
		return strings.TrimSpace(strings.TrimSuffix(edition, "edition")) + " ed."
	case strings.HasSuffix(edition, "ed."):
		return edition
	case strings.HasSuffix(edition, "ed"):
		return edition + "."
	}
	return edition + " ed."
}

// formatPages renders page numbers. Unpaginated works get "N. pag.",
// and non-consecutive ranges end in a plus sign.
func (MLA7) formatPages(start, end string, nonConsecutive bool, pageList string) string {
	switch {
	case start == "" && end == "" && !nonConsecutive:
		return "N. pag. "
	case pageEq(start, end) || (start != "" && end == ""):
		return text.CapitalizeWords(start) + ". "
	case pageLess(start, end) && !nonConsecutive:
		return text.CapitalizeWords(start) + "-" + text.CapitalizeWords(end) + ". "
	case nonConsecutive:
		if pageList != "" {
			return pageList + "+. "
		}
		return text.CapitalizeWords(start) + "+. "
	}
	return ""
}

// formatNewspaperSection renders a section marker: lettered sections
// lead ("B sec."), numbered sections trail ("sec. 2").
func (MLA7) formatNewspaperSection(section string) string {
	if isAlpha(section) {
		return section + " sec."
	}
	return "sec. " + section
}

// formatBookTitle renders a book title in headline case with minor
// words lowered, subtitle capitalized, punctuated, and italicized.
func (MLA7) formatBookTitle(title string) string {
	t := text.CapitalizeWords(title)
	t = text.LowerMinorWords(t)
	t = text.UppercaseSubtitle(t)
	t = text.EnsurePeriod(t)
	return "<i>" + t + "</i>"
}

// quotedTitle renders an article or chapter title in headline case,
// punctuated, wrapped in double quotes with a trailing space.
func (MLA7) quotedTitle(title string) string {
	t := text.CapitalizeWords(title)
	t = text.LowerMinorWords(t)
	t = text.EnsurePeriod(t)
	return `"` + t + `" `
}

// formatEbookMedium renders the medium of a digital file, defaulting
// to an italicized "Digital file" when none was given.
func (MLA7) formatEbookMedium(medium string) string {
	switch {
	case medium == "":
		return "<i>Digital file</i>"
	case ebookFileRe.MatchString(medium):
		return medium
	}
	return medium + " file"
}

// angleURL renders a URL between HTML-escaped angle brackets.
func (MLA7) angleURL(url string) string {
	return "&#60;" + text.EnsureScheme(url) + "&#62;. "
}

// webTail appends the "Web." medium, optional access date, and
// optional angle-bracketed URL shared by the website and database
// branches of most work types.
func (m MLA7) webTail(b *strings.Builder, accessDay, accessMonth, accessYear, url string) {
	b.WriteString("Web. ")
	if anySet(accessDay, accessMonth, accessYear) {
		b.WriteString(m.formatAccessDate(accessDay, accessMonth, accessYear) + ". ")
	}
	if url != "" {
		b.WriteString(m.angleURL(url))
	}
}

// Book creates a citation for a book in its entirety.
func (m MLA7) Book(w *work.Work) string {
	var b strings.Builder
	b.WriteString(m.formatAuthors(w.Contributors()))
	if title := w.Str("title"); title != "" {
		b.WriteString(m.formatBookTitle(title) + " ")
	}
	b.WriteString(m.formatTranslators(w.Contributors()))
	b.WriteString(m.formatEditors(w.Contributors()))
	if loc := w.Str("publisherLocation"); loc != "" {
		b.WriteString(text.CapitalizeWords(loc) + ": ")
	}
	if pub := w.Str("publisher"); pub != "" {
		b.WriteString(text.CapitalizeWords(pub) + ", ")
	}
	if year := w.Str("publicationYear"); year != "" {
		b.WriteString(year + ". ")
	}
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		b.WriteString("Print.")
	case work.MediumWebsite:
		if webTitle := w.Str("webTitle"); webTitle != "" {
			b.WriteString("<i>" + text.CapitalizeWords(webTitle) + "</i>. ")
		}
		m.webTail(&b, w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear"), w.Str("webUrl"))
	case work.MediumDatabase:
		if db := w.Str("db"); db != "" {
			b.WriteString("<i>" + text.CapitalizeWords(db) + "</i>. ")
		}
		m.webTail(&b, w.Str("dbAccessDay"), w.Str("dbAccessMonth"), w.Str("dbAccessYear"), w.Str("dbUrl"))
	case work.MediumEbook:
		b.WriteString(m.formatEbookMedium(w.Str("ebookMedium")) + ". ")
		if url := w.Str("ebookUrl"); url != "" {
			b.WriteString(m.angleURL(url))
		}
	}
	return b.String()
}

// Chapter creates a citation for a chapter or essay from a book.
func (m MLA7) Chapter(w *work.Work) string {
	var b strings.Builder
	b.WriteString(m.formatAuthors(w.Contributors()))
	if chapterTitle := w.Str("chapterTitle"); chapterTitle != "" {
		b.WriteString(m.quotedTitle(chapterTitle))
	}
	if bookTitle := w.Str("bookTitle"); bookTitle != "" {
		b.WriteString(m.formatBookTitle(bookTitle) + " ")
	}
	b.WriteString(m.formatTranslators(w.Contributors()))
	b.WriteString(m.formatEditors(w.Contributors()))
	if loc := w.Str("publisherLocation"); loc != "" {
		b.WriteString(text.CapitalizeWords(loc) + ": ")
	}
	if pub := w.Str("publisher"); pub != "" {
		b.WriteString(text.CapitalizeWords(pub) + ", ")
	}
	if year := w.Str("publicationYear"); year != "" {
		b.WriteString(year + ". ")
	}
	b.WriteString(m.formatPages(w.Str("startPage"), w.Str("endPage"),
		w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums")))
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		b.WriteString("Print.")
	case work.MediumWebsite:
		if webTitle := w.Str("webTitle"); webTitle != "" {
			b.WriteString("<i>" + text.CapitalizeWords(webTitle) + "</i>. ")
		}
		m.webTail(&b, w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear"), w.Str("webUrl"))
	case work.MediumDatabase:
		if db := w.Str("db"); db != "" {
			b.WriteString("<i>" + text.CapitalizeWords(db) + "</i>. ")
		}
		m.webTail(&b, w.Str("dbAccessDay"), w.Str("dbAccessMonth"), w.Str("dbAccessYear"), w.Str("dbUrl"))
	}
	return b.String()
}

// Magazine creates a citation for a magazine article.
func (m MLA7) Magazine(w *work.Work) string {
	var b strings.Builder
	b.WriteString(m.formatAuthors(w.Contributors()))
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(m.quotedTitle(title))
	}
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		if magazineTitle := w.Str("magazineTitle"); magazineTitle != "" {
			b.WriteString("<i>" + text.LowerMinorWords(text.CapitalizeWords(magazineTitle)) + "</i> ")
		}
		if anySet(w.Str("publishedDay"), w.Str("publishedMonth"), w.Str("publishedYear")) {
			b.WriteString(m.formatPublishDate(w.Str("publishedDay"), w.Str("publishedMonth"), w.Str("publishedYear")))
			b.WriteString(": ")
		}
		b.WriteString(m.formatPages(w.Str("startPage"), w.Str("endPage"),
			w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums")))
		b.WriteString("Print.")
	case work.MediumWebsite:
		if magazineTitle := w.Str("magazineTitle"); magazineTitle != "" {
			b.WriteString("<i>" + text.CapitalizeWords(magazineTitle) + "</i>. ")
		} else {
			b.WriteString("N.p., ")
		}
		if webTitle := w.Str("webTitle"); webTitle != "" {
			b.WriteString(text.CapitalizeWords(webTitle) + ", ")
		}
		b.WriteString(m.formatPublishDate(w.Str("publishedDay"), w.Str("publishedMonth"), w.Str("publishedYear")) + ". ")
		m.webTail(&b, w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear"), w.Str("webUrl"))
	case work.MediumDatabase:
		if magazineTitle := w.Str("magazineTitle"); magazineTitle != "" {
			b.WriteString("<i>" + text.LowerMinorWords(text.CapitalizeWords(magazineTitle)) + "</i> ")
		}
		b.WriteString(m.formatPublishDate(w.Str("publishedDay"), w.Str("publishedMonth"), w.Str("publishedYear")) + ". ")
		b.WriteString(m.formatPages(w.Str("dbStartPage"), w.Str("dbEndPage"), w.Bool("dbHasNonConsecutive"), ""))
		if db := w.Str("db"); db != "" {
			b.WriteString("<i>" + text.CapitalizeWords(db) + "</i>. ")
		}
		m.webTail(&b, w.Str("dbAccessDay"), w.Str("dbAccessMonth"), w.Str("dbAccessYear"), w.Str("dbUrl"))
	}
	return b.String()
}

// Newspaper creates a citation for a newspaper article.
func (m MLA7) Newspaper(w *work.Work) string {
	var b strings.Builder
	b.WriteString(m.formatAuthors(w.Contributors()))
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(m.quotedTitle(title))
	}
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		if newspaperTitle := w.Str("newspaperTitle"); newspaperTitle != "" {
			t := text.TrimLeadingArticle(text.CapitalizeWords(newspaperTitle))
			b.WriteString("<i>" + t + "</i> ")
		}
		if city := w.Str("newspaperCity"); city != "" {
			b.WriteString("[" + text.CapitalizeWords(city) + "] ")
		}
		if anySet(w.Str("day"), w.Str("month"), w.Str("year")) {
			b.WriteString(m.formatPublishDate(w.Str("day"), w.Str("month"), w.Str("year")))
		}
		if edition := w.Str("edition"); edition != "" {
			b.WriteString(", " + m.formatEdition(strings.ToLower(edition)))
		}
		if section := w.Str("section"); section != "" {
			b.WriteString(", " + m.formatNewspaperSection(section))
		}
		b.WriteString(": ")
		b.WriteString(m.formatPages(w.Str("startPage"), w.Str("endPage"),
			w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums")))
		b.WriteString("Print.")
	case work.MediumWebsite:
		if webTitle := w.Str("webTitle"); webTitle != "" {
			b.WriteString("<i>" + text.CapitalizeWords(webTitle) + "</i>. ")
		}
		if newspaperTitle := w.Str("newspaperTitle"); newspaperTitle != "" {
			t := text.TrimLeadingArticle(text.CapitalizeWords(newspaperTitle))
			b.WriteString("<i>" + t + "</i>, ")
		}
		if anySet(w.Str("electronicPublishDay"), w.Str("electronicPublishMonth"), w.Str("electronicPublishYear")) {
			b.WriteString(m.formatPublishDate(w.Str("electronicPublishDay"),
				w.Str("electronicPublishMonth"), w.Str("electronicPublishYear")) + ". ")
		}
		m.webTail(&b, w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear"), w.Str("webUrl"))
	case work.MediumDatabase:
		if newspaperTitle := w.Str("newspaperTitle"); newspaperTitle != "" {
			t := text.TrimLeadingArticle(text.CapitalizeWords(newspaperTitle))
			b.WriteString("<i>" + t + "</i> ")
		}
		if city := w.Str("dbNewspaperCity"); city != "" {
			b.WriteString("[" + text.CapitalizeWords(city) + "] ")
		}
		if anySet(w.Str("dbPublishedDay"), w.Str("dbPublishedMonth"), w.Str("dbPublishedYear")) {
			b.WriteString(m.formatPublishDate(w.Str("dbPublishedDay"),
				w.Str("dbPublishedMonth"), w.Str("dbPublishedYear")))
		}
		if edition := w.Str("dbEdition"); edition != "" {
			b.WriteString(", " + m.formatEdition(strings.ToLower(edition)))
		}
		b.WriteString(": ")
		b.WriteString(m.formatPages(w.Str("dbStartPage"), w.Str("dbEndPage"), w.Bool("dbHasNonConsecutive"), ""))
		if db := w.Str("db"); db != "" {
			b.WriteString("<i>" + text.CapitalizeWords(db) + "</i>. ")
		}
		// access date is always emitted here, even when blank
		b.WriteString("Web. ")
		b.WriteString(m.formatAccessDate(w.Str("dbAccessDay"), w.Str("dbAccessMonth"), w.Str("dbAccessYear")) + ". ")
		if url := w.Str("dbUrl"); url != "" {
			b.WriteString(m.angleURL(url))
		}
	}
	return b.String()
}

// Journal creates a citation for a scholarly journal article.
func (m MLA7) Journal(w *work.Work) string {
	var b strings.Builder
	b.WriteString(m.formatAuthors(w.Contributors()))
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(m.quotedTitle(title))
	}
	if journalTitle := w.Str("journalTitle"); journalTitle != "" {
		b.WriteString("<i>" + text.LowerMinorWords(text.CapitalizeWords(journalTitle)) + " </i>")
	}
	if volume := w.Str("volume"); volume != "" {
		b.WriteString(volume)
	}
	if issue := w.Str("issue"); issue != "" {
		b.WriteString("." + issue + " ")
	}
	if year := w.Str("yearPublished"); year != "" {
		b.WriteString("(" + year + "): ")
	}
	b.WriteString(m.formatPages(w.Str("startPage"), w.Str("endPage"),
		w.Bool("hasNonConsecutivePages"), w.Str("nonConsecutivePageNums")))
	switch work.Medium(w.Str("medium")) {
	case work.MediumPrint:
		b.WriteString("Print.")
	case work.MediumWebsite:
		m.webTail(&b, w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear"), w.Str("webUrl"))
	case work.MediumDatabase:
		if db := w.Str("db"); db != "" {
			b.WriteString("<i>" + text.CapitalizeWords(db) + "</i>. ")
		}
		m.webTail(&b, w.Str("dbAccessDay"), w.Str("dbAccessMonth"), w.Str("dbAccessYear"), w.Str("dbUrl"))
	}
	return b.String()
}

// Website creates a citation for a web site.
func (m MLA7) Website(w *work.Work) string {
	var b strings.Builder
	b.WriteString(m.formatAuthors(w.Contributors()))
	if title := w.Str("articleTitle"); title != "" {
		b.WriteString(m.quotedTitle(title))
	}
	if webTitle := w.Str("webTitle"); webTitle != "" {
		b.WriteString("<i>" + text.CapitalizeWords(webTitle) + "</i>. ")
	}
	if sponsor := w.Str("publisherSponsor"); sponsor != "" {
		b.WriteString(text.CapitalizeWords(sponsor) + ", ")
	} else {
		b.WriteString("N.p., ")
	}
	b.WriteString(m.formatPublishDate(w.Str("electronicPublishDay"),
		w.Str("electronicPublishMonth"), w.Str("electronicPublishYear")) + ". ")
	b.WriteString("Web. ")
	if anySet(w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear")) {
		b.WriteString(m.formatAccessDate(w.Str("webAccessDay"), w.Str("webAccessMonth"), w.Str("webAccessYear")) + ". ")
	}
	if url := w.Str("webUrl"); url != "" {
		b.WriteString(m.angleURL(url))
	}
	return b.String()
}
