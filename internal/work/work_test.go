package work

import (
	"errors"
	"testing"
)

func TestNewResolvesTypeAliases(t *testing.T) {
	tests := []struct {
		name    string
		typeTag string
		want    Type
	}{
		{"book", "book", TypeBook},
		{"chapter", "chapter", TypeChapter},
		{"essay aliases chapter", "essay", TypeChapter},
		{"journal", "journal", TypeJournal},
		{"magazine", "magazine", TypeMagazine},
		{"newspaper", "newspaper", TypeNewspaper},
		{"website", "website", TypeWebsite},
		{"case insensitive", "Book", TypeBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(map[string]any{"type": tt.typeTag, "title": "T"})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if w.Type() != tt.want {
				t.Errorf("Type() = %q, want %q", w.Type(), tt.want)
			}
		})
	}
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(map[string]any{"type": "thesis", "title": "T"})
	var typeErr *UnknownWorkTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("New() error = %v, want *UnknownWorkTypeError", err)
	}
	if typeErr.TypeTag != "thesis" {
		t.Errorf("TypeTag = %q, want %q", typeErr.TypeTag, "thesis")
	}
}

func TestNewMissingTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"absent title", map[string]any{"type": "book"}},
		{"nil title", map[string]any{"type": "book", "title": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.raw)
			var missingErr *MissingRequiredFieldsError
			if !errors.As(err, &missingErr) {
				t.Fatalf("New() error = %v, want *MissingRequiredFieldsError", err)
			}
			if len(missingErr.Fields) != 1 || missingErr.Fields[0] != "title" {
				t.Errorf("Fields = %v, want [title]", missingErr.Fields)
			}
		})
	}
}

func TestStrCoercion(t *testing.T) {
	w, err := New(map[string]any{
		"type":   "journal",
		"title":  "T",
		"volume": 5,
		"issue":  float64(12),
		"pages":  "10-20",
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"volume", "5"},
		{"issue", "12"},
		{"pages", "10-20"},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := w.Str(tt.key); got != tt.want {
			t.Errorf("Str(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestBoolTruthiness(t *testing.T) {
	w, err := New(map[string]any{
		"type":        "book",
		"title":       "T",
		"flagTrue":    true,
		"flagFalse":   false,
		"zeroString":  "0",
		"emptyString": "",
		"oneString":   "1",
		"zeroInt":     0,
		"someInt":     3,
		"zeroFloat":   float64(0),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		key  string
		want bool
	}{
		{"flagTrue", true},
		{"flagFalse", false},
		{"zeroString", false},
		{"emptyString", false},
		{"oneString", true},
		{"zeroInt", false},
		{"someInt", true},
		{"zeroFloat", false},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := w.Bool(tt.key); got != tt.want {
			t.Errorf("Bool(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestParseContributors(t *testing.T) {
	w, err := New(map[string]any{
		"type":  "book",
		"title": "T",
		"authors": []any{
			map[string]any{"role": "author", "lastName": "Smith", "firstName": "John", "middleInitial": "Q"},
			map[string]any{"cselect": "editor", "lname": "Doe", "fname": "Jane"},
			map[string]any{"lastName": "NoRole"},
			"not a map",
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	roster := w.Contributors()
	if len(roster) != 3 {
		t.Fatalf("len(Contributors()) = %d, want 3", len(roster))
	}
	if roster[0].Role != RoleAuthor || roster[0].Last != "Smith" || roster[0].First != "John" || roster[0].MiddleInitial != "Q" {
		t.Errorf("first contributor = %+v", roster[0])
	}
	if roster[1].Role != RoleEditor || roster[1].Last != "Doe" || roster[1].First != "Jane" {
		t.Errorf("second contributor = %+v", roster[1])
	}
	if roster[2].Role != RoleAuthor {
		t.Errorf("unset role = %q, want author default", roster[2].Role)
	}
}

func TestFilterAndCountRole(t *testing.T) {
	roster := []Contributor{
		{Role: RoleAuthor, Last: "A"},
		{Role: RoleEditor, Last: "B"},
		{Role: RoleAuthor, Last: "C"},
		{Role: RoleTranslator, Last: "D"},
	}

	if got := CountRole(roster, RoleAuthor); got != 2 {
		t.Errorf("CountRole(author) = %d, want 2", got)
	}
	authors := FilterRole(roster, RoleAuthor)
	if len(authors) != 2 || authors[0].Last != "A" || authors[1].Last != "C" {
		t.Errorf("FilterRole(author) = %+v", authors)
	}
	if got := FilterRole(roster, Role("illustrator")); got != nil {
		t.Errorf("FilterRole(illustrator) = %+v, want nil", got)
	}
}

func TestSuppressed(t *testing.T) {
	tests := []struct {
		name string
		c    Contributor
		want bool
	}{
		{"anonymous surname only", Contributor{Last: "Anonymous"}, true},
		{"anonymous with first name", Contributor{Last: "Anonymous", First: "A"}, false},
		{"anonymous with middle initial", Contributor{Last: "Anonymous", MiddleInitial: "B"}, false},
		{"ordinary surname", Contributor{Last: "Smith"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Suppressed(); got != tt.want {
				t.Errorf("Suppressed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPerson(t *testing.T) {
	corporate := Contributor{Last: "World Health Organization"}
	if corporate.IsPerson() {
		t.Error("surname-only contributor should not be a person")
	}
	person := Contributor{Last: "Smith", First: "John"}
	if !person.IsPerson() {
		t.Error("contributor with first name should be a person")
	}
}
