// Package ingest reads comma-delimited edge lists ("A,B,5" per line, no
// header) into a core.Graph.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvroute/core"
)

// ErrRead wraps I/O and CSV syntax failures.
var ErrRead = errors.New("ingest: cannot read edge list")

// Read parses every record of r and inserts it into a new Graph.
//
// Fields are trimmed; blank lines are skipped. The first bad record stops the
// load and is reported with its line number. Weight and vertex errors keep
// their core sentinels for errors.Is.
func Read(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked by core.AddRecord
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	g := core.NewGraph()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		line, _ := cr.FieldPos(0)
		if err = g.AddRecord(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// LoadFile opens path and Reads it.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
