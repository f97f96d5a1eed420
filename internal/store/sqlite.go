package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// openDB opens the SQLite index. SQLite does not support concurrent
// writers, so the pool is capped at one connection.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func createTables(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS works (
  id TEXT PRIMARY KEY,
  type TEXT,
  title TEXT,
  year TEXT,
  raw TEXT
)`,
		`CREATE INDEX IF NOT EXISTS idx_works_type ON works(type)`,
		`CREATE TABLE IF NOT EXISTS _meta (
  key TEXT PRIMARY KEY,
  value TEXT
)`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// NeedsSync reports whether the SQLite index is stale relative to the
// JSONL source.
func (l *Library) NeedsSync() (bool, error) {
	current, err := computeJSONLHash(l.jsonlPath)
	if err != nil {
		return true, err
	}

	db, err := openDB(l.dbPath)
	if err != nil {
		return true, err
	}
	defer db.Close()

	stored, err := storedHash(db)
	if err != nil {
		return true, err
	}
	return current != stored, nil
}

// Sync rebuilds the SQLite index from the JSONL source and records the
// source hash and sync time. It returns the number of records indexed.
func (l *Library) Sync() (int, error) {
	records, err := readAllRecords(l.jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading records: %w", err)
	}
	hash, err := computeJSONLHash(l.jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("computing hash: %w", err)
	}

	db, err := openDB(l.dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return 0, fmt.Errorf("creating tables: %w", err)
	}
	if _, err := db.Exec("DELETE FROM works"); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return 0, fmt.Errorf("encoding record %d: %w", i+1, err)
		}
		_, err = db.Exec(
			"INSERT INTO works (id, type, title, year, raw) VALUES (?, ?, ?, ?, ?)",
			stringField(record, "id"),
			stringField(record, "type"),
			stringField(record, "title"),
			recordYear(record),
			string(raw),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting record %d: %w", i+1, err)
		}
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO _meta (key, value) VALUES ('jsonl_hash', ?)`, hash); err != nil {
		return 0, fmt.Errorf("updating hash: %w", err)
	}
	if _, err := db.Exec(
		`INSERT OR REPLACE INTO _meta (key, value) VALUES ('last_sync', ?)`,
		time.Now().Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("updating sync time: %w", err)
	}
	return len(records), nil
}

// ListByType returns the records of one work type from the index,
// syncing first when the index is stale.
func (l *Library) ListByType(typ string) ([]Record, error) {
	stale, err := l.NeedsSync()
	if err != nil || stale {
		if _, err := l.Sync(); err != nil {
			return nil, err
		}
	}

	db, err := openDB(l.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT raw FROM works WHERE type = ? ORDER BY id", typ)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var record Record
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("decoding indexed record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// LastSync returns the recorded time of the last index rebuild, or the
// zero time when the index has never been built.
func (l *Library) LastSync() (time.Time, error) {
	db, err := openDB(l.dbPath)
	if err != nil {
		return time.Time{}, err
	}
	defer db.Close()

	var value sql.NullString
	err = db.QueryRow("SELECT value FROM _meta WHERE key = 'last_sync'").Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	if !value.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value.String)
}

func storedHash(db *sql.DB) (string, error) {
	var hash sql.NullString
	err := db.QueryRow("SELECT value FROM _meta WHERE key = 'jsonl_hash'").Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash.String, nil
}

// recordYear pulls whichever year field the work type carries.
func recordYear(record Record) string {
	for _, key := range []string{"publicationYear", "yearPublished", "year", "electronicPublishYear"} {
		if v := stringField(record, key); v != "" {
			return v
		}
	}
	return ""
}
