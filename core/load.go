// File: load.go
// Role: Text ingestion helpers: weight parsing and bulk loading of
//       (from, to, weight) records produced by an external reader.
// AI-HINT (file):
//   - ParseWeight is the only place non-integer weight text is rejected.
//   - LoadRecords stops at the first bad record; earlier records stay inserted.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWeight parses a decimal integer weight and validates its range.
// "5.5", "inf", "1e3" and "-1" all fail with ErrWeight.
func ParseWeight(text string) (int64, error) {
	w, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrWeight, text, err)
	}
	if err = validateWeight(w); err != nil {
		return 0, err
	}

	return w, nil
}

// AddRecord inserts the edge described by one (from, to, weight-text) record.
// Errors keep their sentinel (ErrMalformedRecord, ErrWeight, ErrEmptyVertexID).
func (g *Graph) AddRecord(rec []string) error {
	if len(rec) != recordFields {
		return fmt.Errorf("%w: got %d", ErrMalformedRecord, len(rec))
	}
	w, err := ParseWeight(rec[2])
	if err != nil {
		return err
	}

	return g.AddEdge(strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), w)
}

// LoadRecords inserts one edge per record via AddRecord, stopping at the
// first bad record. Errors are wrapped with the zero-based record index.
// Complexity: O(len(records)).
func (g *Graph) LoadRecords(records [][]string) error {
	for i, rec := range records {
		if err := g.AddRecord(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}
