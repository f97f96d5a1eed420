package doiorg

import (
	"strconv"
	"strings"
)

// cslRecord is the subset of Citation Style Language JSON we consume.
type cslRecord struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	ContainerTitle string `json:"container-title"`
	Volume         string `json:"volume"`
	Issue          string `json:"issue"`
	Page           string `json:"page"`
	Publisher      string `json:"publisher"`
	PublisherPlace string `json:"publisher-place"`
	URL            string `json:"URL"`
	DOI            string `json:"DOI"`
	Author         []struct {
		Family string `json:"family"`
		Given  string `json:"given"`
	} `json:"author"`
	Issued struct {
		DateParts [][]int `json:"date-parts"`
	} `json:"issued"`
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// cslTypes maps CSL item types onto our work type tags. Anything
// unrecognized is treated as a journal article, the commonest case for
// DOI-bearing items.
var cslTypes = map[string]string{
	"book":              "book",
	"monograph":         "book",
	"chapter":           "chapter",
	"article-journal":   "journal",
	"journal-article":   "journal",
	"article-magazine":  "magazine",
	"article-newspaper": "newspaper",
	"webpage":           "website",
	"post-weblog":       "website",
}

// toRecord converts CSL metadata into a raw work record.
func (m cslRecord) toRecord() map[string]any {
	typ, ok := cslTypes[m.Type]
	if !ok {
		typ = "journal"
	}

	record := map[string]any{
		"type":   typ,
		"title":  m.Title,
		"medium": "print",
	}
	if m.DOI != "" {
		record["doi"] = m.DOI
	}

	var contributors []any
	for _, a := range m.Author {
		if a.Family == "" && a.Given == "" {
			continue
		}
		contributors = append(contributors, map[string]any{
			"role":      "author",
			"lastName":  a.Family,
			"firstName": a.Given,
		})
	}
	if len(contributors) > 0 {
		record["authors"] = contributors
	}

	year, month, day := m.issuedDate()

	switch typ {
	case "book":
		if m.Publisher != "" {
			record["publisher"] = m.Publisher
		}
		if m.PublisherPlace != "" {
			record["publisherLocation"] = m.PublisherPlace
		}
		if year != "" {
			record["publicationYear"] = year
		}
	case "chapter":
		record["chapterTitle"] = m.Title
		if m.ContainerTitle != "" {
			record["bookTitle"] = m.ContainerTitle
		}
		if m.Publisher != "" {
			record["publisher"] = m.Publisher
		}
		if m.PublisherPlace != "" {
			record["publisherLocation"] = m.PublisherPlace
		}
		if year != "" {
			record["publicationYear"] = year
		}
		m.setPages(record, "startPage", "endPage")
	case "journal":
		record["articleTitle"] = m.Title
		if m.ContainerTitle != "" {
			record["journalTitle"] = m.ContainerTitle
		}
		if m.Volume != "" {
			record["volume"] = m.Volume
		}
		if m.Issue != "" {
			record["issue"] = m.Issue
		}
		if year != "" {
			record["yearPublished"] = year
		}
		m.setPages(record, "startPage", "endPage")
	case "magazine":
		record["articleTitle"] = m.Title
		if m.ContainerTitle != "" {
			record["magazineTitle"] = m.ContainerTitle
		}
		record["year"], record["month"], record["day"] = year, month, day
		record["publishedYear"], record["publishedMonth"], record["publishedDay"] = year, month, day
		m.setPages(record, "startPage", "endPage")
	case "newspaper":
		record["articleTitle"] = m.Title
		if m.ContainerTitle != "" {
			record["newspaperTitle"] = m.ContainerTitle
		}
		record["year"], record["month"], record["day"] = year, month, day
		m.setPages(record, "startPage", "endPage")
	case "website":
		record["articleTitle"] = m.Title
		if m.ContainerTitle != "" {
			record["webTitle"] = m.ContainerTitle
		}
		record["medium"] = "website"
		if m.URL != "" {
			record["webUrl"] = m.URL
		}
		record["electronicPublishYear"] = year
		record["electronicPublishMonth"] = month
		record["electronicPublishDay"] = day
	}

	return record
}

// issuedDate unpacks the CSL date-parts triple into display strings.
// The month is a full name, matching what the styles expect.
func (m cslRecord) issuedDate() (year, month, day string) {
	if len(m.Issued.DateParts) == 0 || len(m.Issued.DateParts[0]) == 0 {
		return "", "", ""
	}
	parts := m.Issued.DateParts[0]
	year = strconv.Itoa(parts[0])
	if len(parts) > 1 && parts[1] >= 1 && parts[1] <= 12 {
		month = monthNames[parts[1]-1]
	}
	if len(parts) > 2 && parts[2] >= 1 && parts[2] <= 31 {
		day = strconv.Itoa(parts[2])
	}
	return year, month, day
}

// setPages splits a CSL page range like "10-20" into start and end.
func (m cslRecord) setPages(record map[string]any, startKey, endKey string) {
	if m.Page == "" {
		return
	}
	start, end, found := strings.Cut(m.Page, "-")
	record[startKey] = strings.TrimSpace(start)
	if found && strings.TrimSpace(end) != "" {
		record[endKey] = strings.TrimSpace(end)
	}
}
