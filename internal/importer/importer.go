// Package importer reads work records from external files: JSON or
// YAML batches, and skeletal records pulled out of PDFs.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile reads a batch of raw work records from a JSON or YAML
// file, dispatching on the file extension. Entries that fail to
// validate are reported per-entry; they never abort the batch.
func ParseFile(path string) ([]map[string]any, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %s: %w", path, err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return nil, []error{fmt.Errorf("unsupported file extension %q", filepath.Ext(path))}
}

// ParseJSON parses a JSON array of work records.
func ParseJSON(data []byte) ([]map[string]any, []error) {
	var entries []any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, []error{fmt.Errorf("parsing JSON: %w", err)}
	}
	return collect(entries)
}

// ParseYAML parses a YAML list of work records.
func ParseYAML(data []byte) ([]map[string]any, []error) {
	var entries []any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, []error{fmt.Errorf("parsing YAML: %w", err)}
	}
	return collect(entries)
}

// collect validates each entry, keeping the good ones in order and
// gathering one error per bad one.
func collect(entries []any) ([]map[string]any, []error) {
	var records []map[string]any
	var errs []error
	for i, entry := range entries {
		record, err := toRecord(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i+1, err))
			continue
		}
		records = append(records, record)
	}
	return records, errs
}

func toRecord(entry any) (map[string]any, error) {
	record, err := normalizeMap(entry)
	if err != nil {
		return nil, err
	}
	if s, _ := record["type"].(string); s == "" {
		return nil, fmt.Errorf("missing required field 'type'")
	}
	if s, _ := record["title"].(string); s == "" {
		return nil, fmt.Errorf("missing required field 'title'")
	}
	return record, nil
}

// normalizeMap converts a decoded entry to map[string]any. YAML
// decodes nested mappings as map[string]any already under yaml.v3, but
// entries themselves may arrive as any.
func normalizeMap(entry any) (map[string]any, error) {
	switch m := entry.(type) {
	case map[string]any:
		return m, nil
	default:
		return nil, fmt.Errorf("not a mapping (got %T)", entry)
	}
}
