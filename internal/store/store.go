// Package store persists a library of works as a JSONL file with a
// derived SQLite index. The JSONL file is the source of truth; the
// database is rebuilt from it whenever the two drift apart.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Record is one work entry as stored on disk.
type Record = map[string]any

// Library is a collection of works rooted at a directory.
type Library struct {
	dir       string
	jsonlPath string
	dbPath    string
}

// Open returns a Library rooted at dir. The directory does not need to
// exist yet; Init creates it.
func Open(dir string) *Library {
	return &Library{
		dir:       dir,
		jsonlPath: filepath.Join(dir, "works.jsonl"),
		dbPath:    filepath.Join(dir, "works.db"),
	}
}

// JSONLPath returns the path to the JSONL source file.
func (l *Library) JSONLPath() string { return l.jsonlPath }

// DBPath returns the path to the SQLite index.
func (l *Library) DBPath() string { return l.dbPath }

// Init creates the library directory, an empty JSONL file if none
// exists, and the SQLite index tables.
func (l *Library) Init() error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("creating library directory: %w", err)
	}

	if _, err := os.Stat(l.jsonlPath); os.IsNotExist(err) {
		f, err := os.Create(l.jsonlPath)
		if err != nil {
			return fmt.Errorf("creating JSONL file: %w", err)
		}
		f.Close()
	}

	db, err := openDB(l.dbPath)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Append validates a record and adds it to the library. Records need an
// "id", a "type", and a "title"; duplicate ids are rejected.
func (l *Library) Append(record Record) error {
	id := stringField(record, "id")
	if id == "" {
		return fmt.Errorf("record has no id")
	}
	if stringField(record, "type") == "" {
		return fmt.Errorf("record %q has no type", id)
	}
	if stringField(record, "title") == "" {
		return fmt.Errorf("record %q has no title", id)
	}

	existing, err := l.Get(id)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("duplicate id: %q already exists", id)
	}

	if err := appendRecord(l.jsonlPath, record); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return nil
}

// List returns all records in insertion order.
func (l *Library) List() ([]Record, error) {
	return readAllRecords(l.jsonlPath)
}

// Get returns the record with the given id, or nil when absent.
func (l *Library) Get(id string) (Record, error) {
	records, err := readAllRecords(l.jsonlPath)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if stringField(record, "id") == id {
			return record, nil
		}
	}
	return nil, nil
}

// Remove deletes the record with the given id, rewriting the JSONL
// file atomically.
func (l *Library) Remove(id string) error {
	records, err := readAllRecords(l.jsonlPath)
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}

	found := false
	kept := records[:0]
	for _, record := range records {
		if stringField(record, "id") == id {
			found = true
			continue
		}
		kept = append(kept, record)
	}
	if !found {
		return fmt.Errorf("record %q not found", id)
	}

	if err := writeAllRecords(l.jsonlPath, kept); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

// Count returns the number of records in the JSONL file.
func (l *Library) Count() (int, error) {
	records, err := readAllRecords(l.jsonlPath)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a stable record id from a title and an optional year,
// e.g. "The Great War" + "2009" -> "great-war-2009".
func Slug(title, year string) string {
	s := strings.ToLower(title)
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(s, article) {
			s = s[len(article):]
			break
		}
	}
	s = slugStripRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	const maxSlugWords = 6
	parts := strings.Split(s, "-")
	if len(parts) > maxSlugWords {
		parts = parts[:maxSlugWords]
	}
	s = strings.Join(parts, "-")
	if year != "" {
		s += "-" + year
	}
	return s
}

func stringField(record Record, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}
