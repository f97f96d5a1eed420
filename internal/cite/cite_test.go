package cite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Piestar/citationbuilder/internal/style"
	"github.com/Piestar/citationbuilder/internal/work"
)

// nameOnly implements style.Style without any formatter capabilities.
type nameOnly struct{}

func (nameOnly) Name() string { return "stub" }

func TestRenderDispatch(t *testing.T) {
	raw := map[string]any{"type": "book", "title": "Foo"}
	w, err := work.New(raw)
	if err != nil {
		t.Fatalf("work.New: %v", err)
	}
	got, err := Render(w, style.APA6{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "<i>Foo.</i>") {
		t.Errorf("Render() = %q, want italicized title", got)
	}
}

func TestRenderUnsupportedStyle(t *testing.T) {
	w, err := work.New(map[string]any{"type": "book", "title": "Foo"})
	if err != nil {
		t.Fatalf("work.New: %v", err)
	}
	_, err = Render(w, nameOnly{})
	var unsupported *UnsupportedStyleError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Render() error = %v, want UnsupportedStyleError", err)
	}
	if unsupported.Style != "stub" || unsupported.Type != work.TypeBook {
		t.Errorf("UnsupportedStyleError = %+v, want stub/book", unsupported)
	}
}

func TestBuildCitationsIsolation(t *testing.T) {
	raws := []map[string]any{
		{"type": "book", "title": "First"},
		{"type": "spellbook", "title": "Broken"},
		{"type": "book"}, // missing title
		{"type": "book", "title": "Last"},
	}
	results := BuildCitations(raws, style.MLA7{})
	if len(results) != len(raws) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(raws))
	}
	if results[0].Err != nil || !strings.Contains(results[0].HTML, "First") {
		t.Errorf("results[0] = %+v, want rendered citation", results[0])
	}
	var unknown *work.UnknownWorkTypeError
	if !errors.As(results[1].Err, &unknown) {
		t.Errorf("results[1].Err = %v, want UnknownWorkTypeError", results[1].Err)
	}
	var missing *work.MissingRequiredFieldsError
	if !errors.As(results[2].Err, &missing) {
		t.Errorf("results[2].Err = %v, want MissingRequiredFieldsError", results[2].Err)
	}
	if results[3].Err != nil || !strings.Contains(results[3].HTML, "Last") {
		t.Errorf("results[3] = %+v, bad record should not poison the rest", results[3])
	}
}

func TestBuildCitationsConcurrentMatchesSequential(t *testing.T) {
	var raws []map[string]any
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta"}
	for _, title := range titles {
		raws = append(raws, map[string]any{"type": "book", "title": title})
	}
	raws = append(raws, map[string]any{"type": "scroll", "title": "Bad"})

	sequential := BuildCitations(raws, style.APA6{})
	concurrent := BuildCitationsConcurrent(context.Background(), raws, style.APA6{}, 3)
	if len(concurrent) != len(sequential) {
		t.Fatalf("len = %d, want %d", len(concurrent), len(sequential))
	}
	for i := range sequential {
		if concurrent[i].HTML != sequential[i].HTML {
			t.Errorf("result %d: concurrent %q != sequential %q", i, concurrent[i].HTML, sequential[i].HTML)
		}
		if (concurrent[i].Err == nil) != (sequential[i].Err == nil) {
			t.Errorf("result %d: error mismatch: %v vs %v", i, concurrent[i].Err, sequential[i].Err)
		}
	}
}

func TestBuildCitationsConcurrentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	raws := []map[string]any{
		{"type": "book", "title": "Foo"},
		{"type": "book", "title": "Bar"},
	}
	results := BuildCitationsConcurrent(ctx, raws, style.APA6{}, 2)
	if len(results) != len(raws) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(raws))
	}
	// at least the records never handed to a worker carry the context error
	var gotCancel bool
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			gotCancel = true
		}
	}
	if !gotCancel {
		t.Error("want at least one result marked with context.Canceled")
	}
}

func TestRenderIdempotent(t *testing.T) {
	w, err := work.New(map[string]any{
		"type":   "journal",
		"title":  "x",
		"medium": "print",
		"authors": []any{
			map[string]any{"role": "author", "lastName": "Smith", "firstName": "John"},
		},
		"articleTitle": "On Repeatability",
		"journalTitle": "Acta Informatica",
	})
	if err != nil {
		t.Fatalf("work.New: %v", err)
	}
	first, err := Render(w, style.MLA7{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(w, style.MLA7{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Errorf("Render not idempotent: %q then %q", first, second)
	}
}
