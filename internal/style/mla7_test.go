package style

import (
	"strings"
	"testing"
)

func TestMLA7BookPrint(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":              "book",
		"title":             "the great war: a history",
		"publicationYear":   "2009",
		"medium":            "print",
		"publisherLocation": "new york",
		"publisher":         "penguin",
		"authors":           []any{person("author", "Smith", "John", "")},
	})
	got := MLA7{}.Book(w)
	want := "Smith, John. <i>The Great War: A History.</i> New York: Penguin, 2009. Print."
	if got != want {
		t.Errorf("Book() = %q, want %q", got, want)
	}
}

func TestMLA7TwoAuthors(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":  "book",
		"title": "Foo",
		"authors": []any{
			person("author", "Smith", "John", ""),
			person("author", "Doe", "Jane", ""),
		},
	})
	got := MLA7{}.Book(w)
	if !strings.HasPrefix(got, "Smith, John, and Jane Doe. ") {
		t.Errorf("Book() = %q, want \"Smith, John, and Jane Doe. \" prefix", got)
	}
}

func TestMLA7EditorsAsAuthors(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":    "book",
		"title":   "Foo",
		"authors": []any{person("editor", "Doe", "Jane", "")},
	})
	got := MLA7{}.Book(w)
	if !strings.HasPrefix(got, "Doe, Jane, ed. ") {
		t.Errorf("Book() = %q, want editor promoted into author slot", got)
	}

	w = mustWork(t, map[string]any{
		"type":  "book",
		"title": "Foo",
		"authors": []any{
			person("editor", "Doe", "Jane", ""),
			person("editor", "Smith", "John", ""),
		},
	})
	got = MLA7{}.Book(w)
	if !strings.Contains(got, "and John Smith, eds. ") {
		t.Errorf("Book() = %q, want \"eds.\" tag for multiple editors", got)
	}
}

func TestMLA7Translators(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":  "book",
		"title": "Foo",
		"authors": []any{
			person("author", "Tolstoy", "Leo", ""),
			person("translator", "Pevear", "Richard", ""),
		},
	})
	got := MLA7{}.Book(w)
	if !strings.Contains(got, "Trans. Richard Pevear. ") {
		t.Errorf("Book() = %q, want translator clause", got)
	}
}

func TestMLA7EditorsWithAuthor(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":  "book",
		"title": "Foo",
		"authors": []any{
			person("author", "Tolstoy", "Leo", ""),
			person("editor", "Doe", "Jane", ""),
		},
	})
	got := MLA7{}.Book(w)
	if !strings.Contains(got, "Ed. Jane Doe. ") {
		t.Errorf("Book() = %q, want editor clause after author", got)
	}
}

func TestMLA7Pages(t *testing.T) {
	tests := []struct {
		start, end     string
		nonConsecutive bool
		pageList       string
		want           string
	}{
		{"", "", false, "", "N. pag. "},
		{"5", "", false, "", "5. "},
		{"5", "5", false, "", "5. "},
		{"5", "10", false, "", "5-10. "},
		{"5", "12", true, "5, 9, 12", "5, 9, 12+. "},
		{"5", "12", true, "", "5+. "},
		{"5", "5", true, "", "5. "},
		{"", "", true, "", ". "},
	}
	for _, tt := range tests {
		got := MLA7{}.formatPages(tt.start, tt.end, tt.nonConsecutive, tt.pageList)
		if got != tt.want {
			t.Errorf("formatPages(%q, %q, %v, %q) = %q, want %q",
				tt.start, tt.end, tt.nonConsecutive, tt.pageList, got, tt.want)
		}
	}
}

func TestMLA7Edition(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"Revised edition", "Revised ed."},
		{"2nd", "2nd ed."},
		{"3rd ed", "3rd ed."},
		{"4th ed.", "4th ed."},
	}
	for _, tt := range tests {
		if got := (MLA7{}).formatEdition(tt.in); got != tt.want {
			t.Errorf("formatEdition(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMLA7NewspaperSection(t *testing.T) {
	if got := (MLA7{}).formatNewspaperSection("B"); got != "B sec." {
		t.Errorf("formatNewspaperSection(B) = %q, want %q", got, "B sec.")
	}
	if got := (MLA7{}).formatNewspaperSection("2"); got != "sec. 2" {
		t.Errorf("formatNewspaperSection(2) = %q, want %q", got, "sec. 2")
	}
}

func TestMLA7PublishDate(t *testing.T) {
	if got := (MLA7{}).formatPublishDate("", "", ""); got != "n.d" {
		t.Errorf("formatPublishDate() = %q, want %q", got, "n.d")
	}
	if got := (MLA7{}).formatPublishDate("12", "March", "2009"); got != "12 Mar. 2009" {
		t.Errorf("formatPublishDate() = %q, want %q", got, "12 Mar. 2009")
	}
}

func TestMLA7EbookMedium(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "<i>Digital file</i>"},
		{"Kindle file", "Kindle file"},
		{"PDF", "PDF file"},
	}
	for _, tt := range tests {
		if got := (MLA7{}).formatEbookMedium(tt.in); got != tt.want {
			t.Errorf("formatEbookMedium(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMLA7Journal(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":          "journal",
		"title":         "x",
		"articleTitle":  "reading the margins",
		"journalTitle":  "studies in bibliography",
		"volume":        "64",
		"issue":         "2",
		"yearPublished": "2011",
		"startPage":     "10",
		"endPage":       "20",
		"medium":        "print",
		"authors":       []any{person("author", "Smith", "John", "")},
	})
	got := MLA7{}.Journal(w)
	if !strings.Contains(got, `"Reading the Margins." `) {
		t.Errorf("Journal() = %q, want quoted headline-cased article title", got)
	}
	// the trailing space sits inside the italics
	if !strings.Contains(got, "<i>Studies in Bibliography </i>64.2 (2011): 10-20. Print.") {
		t.Errorf("Journal() = %q, want journal title/volume/issue/year/pages run", got)
	}
}

func TestMLA7NewspaperPrint(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":           "newspaper",
		"title":          "x",
		"articleTitle":   "markets rally",
		"newspaperTitle": "the daily herald",
		"newspaperCity":  "springfield",
		"medium":         "print",
		"day":            "3",
		"month":          "May",
		"year":           "2012",
		"edition":        "Late",
		"section":        "B",
		"startPage":      "B1",
	})
	got := MLA7{}.Newspaper(w)
	if !strings.Contains(got, "<i>Daily Herald</i> ") {
		t.Errorf("Newspaper() = %q, want leading article stripped from title", got)
	}
	if !strings.Contains(got, "[Springfield] ") {
		t.Errorf("Newspaper() = %q, want bracketed city", got)
	}
	if !strings.Contains(got, "3 May 2012, late ed., B sec.: B1. Print.") {
		t.Errorf("Newspaper() = %q, want date/edition/section/pages run", got)
	}
}

func TestMLA7Website(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":                   "website",
		"title":                  "x",
		"articleTitle":           "cool stuff",
		"webTitle":               "tech blog",
		"electronicPublishDay":   "1",
		"electronicPublishMonth": "April",
		"electronicPublishYear":  "2013",
		"webAccessDay":           "2",
		"webAccessMonth":         "June",
		"webAccessYear":          "2014",
		"webUrl":                 "example.com",
	})
	got := MLA7{}.Website(w)
	want := `"Cool Stuff." <i>Tech Blog</i>. N.p., 1 Apr. 2013. Web. 2 June 2014. &#60;http://example.com&#62;. `
	if got != want {
		t.Errorf("Website() = %q, want %q", got, want)
	}
}

func TestMLA7MagazineWebsiteNoTitle(t *testing.T) {
	w := mustWork(t, map[string]any{
		"type":         "magazine",
		"title":        "x",
		"articleTitle": "new gadgets",
		"medium":       "website",
	})
	got := MLA7{}.Magazine(w)
	if !strings.Contains(got, "N.p., ") {
		t.Errorf("Magazine() = %q, want N.p. placeholder without magazine title", got)
	}
	if !strings.Contains(got, "n.d. ") {
		t.Errorf("Magazine() = %q, want n.d for missing publish date", got)
	}
}
