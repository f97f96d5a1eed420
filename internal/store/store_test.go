package store

import (
	"strings"
	"testing"
)

func testLibrary(t *testing.T) *Library {
	t.Helper()
	l := Open(t.TempDir())
	if err := l.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return l
}

func TestAppendAndGet(t *testing.T) {
	l := testLibrary(t)
	record := Record{"id": "great-war-2009", "type": "book", "title": "The Great War"}
	if err := l.Append(record); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := l.Get("great-war-2009")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got["title"] != "The Great War" {
		t.Errorf("Get() = %v, want stored record", got)
	}

	missing, err := l.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if missing != nil {
		t.Errorf("Get(nope) = %v, want nil", missing)
	}
}

func TestAppendValidation(t *testing.T) {
	l := testLibrary(t)
	if err := l.Append(Record{"type": "book", "title": "x"}); err == nil {
		t.Error("Append without id: want error")
	}
	if err := l.Append(Record{"id": "x", "title": "x"}); err == nil {
		t.Error("Append without type: want error")
	}
	if err := l.Append(Record{"id": "x", "type": "book"}); err == nil {
		t.Error("Append without title: want error")
	}
}

func TestAppendDuplicate(t *testing.T) {
	l := testLibrary(t)
	record := Record{"id": "x", "type": "book", "title": "X"}
	if err := l.Append(record); err != nil {
		t.Fatalf("Append: %v", err)
	}
	err := l.Append(record)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Append duplicate: err = %v, want duplicate error", err)
	}
}

func TestRemove(t *testing.T) {
	l := testLibrary(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := l.Append(Record{"id": id, "type": "book", "title": id}); err != nil {
			t.Fatalf("Append(%s): %v", id, err)
		}
	}
	if err := l.Remove("b"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	records, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0]["id"] != "a" || records[1]["id"] != "c" {
		t.Errorf("List() = %v, want a then c", records)
	}
	if err := l.Remove("b"); err == nil {
		t.Error("Remove(b) again: want not-found error")
	}
}

func TestSyncTracking(t *testing.T) {
	l := testLibrary(t)
	if err := l.Append(Record{"id": "x", "type": "book", "title": "X"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	stale, err := l.NeedsSync()
	if err != nil {
		t.Fatalf("NeedsSync: %v", err)
	}
	if !stale {
		t.Error("NeedsSync() = false before first sync, want true")
	}

	n, err := l.Sync()
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if n != 1 {
		t.Errorf("Sync() = %d, want 1", n)
	}

	stale, err = l.NeedsSync()
	if err != nil {
		t.Fatalf("NeedsSync: %v", err)
	}
	if stale {
		t.Error("NeedsSync() = true after sync, want false")
	}

	// mutating the JSONL invalidates the index
	if err := l.Append(Record{"id": "y", "type": "journal", "title": "Y"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	stale, err = l.NeedsSync()
	if err != nil {
		t.Fatalf("NeedsSync: %v", err)
	}
	if !stale {
		t.Error("NeedsSync() = false after append, want true")
	}

	last, err := l.LastSync()
	if err != nil {
		t.Fatalf("LastSync: %v", err)
	}
	if last.IsZero() {
		t.Error("LastSync() is zero after sync")
	}
}

func TestLastSyncNeverBuilt(t *testing.T) {
	l := testLibrary(t)
	last, err := l.LastSync()
	if err != nil {
		t.Fatalf("LastSync: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("LastSync() = %v before first sync, want zero time", last)
	}
}

func TestLastSyncReportsQueryError(t *testing.T) {
	// no Init: the index db has no schema, so the meta query fails
	l := Open(t.TempDir())
	if _, err := l.LastSync(); err == nil {
		t.Error("LastSync() = nil error on schemaless index, want error")
	}
}

func TestListByType(t *testing.T) {
	l := testLibrary(t)
	if err := l.Append(Record{"id": "b1", "type": "book", "title": "B1"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Append(Record{"id": "j1", "type": "journal", "title": "J1"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	books, err := l.ListByType("book")
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(books) != 1 || books[0]["id"] != "b1" {
		t.Errorf("ListByType(book) = %v, want one book", books)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title, year string
		want        string
	}{
		{"The Great War: A History", "2009", "great-war-a-history-2009"},
		{"An Essay on Criticism", "", "essay-on-criticism"},
		{"Foo", "1999", "foo-1999"},
		{"One Two Three Four Five Six Seven Eight", "", "one-two-three-four-five-six"},
	}
	for _, tt := range tests {
		if got := Slug(tt.title, tt.year); got != tt.want {
			t.Errorf("Slug(%q, %q) = %q, want %q", tt.title, tt.year, got, tt.want)
		}
	}
}
