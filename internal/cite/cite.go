// Package cite renders works into HTML citation strings and provides
// batch helpers over raw imported records.
package cite

import (
	"context"
	"fmt"
	"sync"

	"github.com/Piestar/citationbuilder/internal/style"
	"github.com/Piestar/citationbuilder/internal/work"
)

// UnsupportedStyleError reports a style that cannot format the given
// work type.
type UnsupportedStyleError struct {
	Style string
	Type  work.Type
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("style %s does not support works of type %q", e.Style, e.Type)
}

// Render formats a single work with the given style. The style only
// needs to support the work's type; anything else returns an
// UnsupportedStyleError.
func Render(w *work.Work, s style.Style) (string, error) {
	switch w.Type() {
	case work.TypeBook:
		if f, ok := s.(style.BookFormatter); ok {
			return f.Book(w), nil
		}
	case work.TypeChapter:
		if f, ok := s.(style.ChapterFormatter); ok {
			return f.Chapter(w), nil
		}
	case work.TypeJournal:
		if f, ok := s.(style.JournalFormatter); ok {
			return f.Journal(w), nil
		}
	case work.TypeMagazine:
		if f, ok := s.(style.MagazineFormatter); ok {
			return f.Magazine(w), nil
		}
	case work.TypeNewspaper:
		if f, ok := s.(style.NewspaperFormatter); ok {
			return f.Newspaper(w), nil
		}
	case work.TypeWebsite:
		if f, ok := s.(style.WebsiteFormatter); ok {
			return f.Website(w), nil
		}
	}
	return "", &UnsupportedStyleError{Style: s.Name(), Type: w.Type()}
}

// Result holds the outcome of rendering one record from a batch.
// Exactly one of HTML and Err is meaningful.
type Result struct {
	HTML string
	Err  error
}

// BuildCitations renders a batch of raw records in order. A record
// that fails to parse or render carries its error in the matching
// Result slot; it never aborts the rest of the batch.
func BuildCitations(raws []map[string]any, s style.Style) []Result {
	results := make([]Result, len(raws))
	for i, raw := range raws {
		results[i] = buildOne(raw, s)
	}
	return results
}

// BuildCitationsConcurrent renders a batch of raw records across
// bounded worker goroutines. Results keep the input order. A canceled
// context marks the remaining records with the context error.
func BuildCitationsConcurrent(ctx context.Context, raws []map[string]any, s style.Style, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(raws))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = buildOne(raws[i], s)
			}
		}()
	}

	var canceled []int
feed:
	for i := range raws {
		if ctx.Err() != nil {
			for j := i; j < len(raws); j++ {
				canceled = append(canceled, j)
			}
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(raws); j++ {
				canceled = append(canceled, j)
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for _, i := range canceled {
		results[i] = Result{Err: ctx.Err()}
	}
	return results
}

func buildOne(raw map[string]any, s style.Style) Result {
	w, err := work.New(raw)
	if err != nil {
		return Result{Err: fmt.Errorf("parsing work: %w", err)}
	}
	html, err := Render(w, s)
	if err != nil {
		return Result{Err: err}
	}
	return Result{HTML: html}
}
