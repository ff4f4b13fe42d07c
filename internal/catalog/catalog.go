// Package catalog reads tabular wine records from delimited input files.
//
// Implements the input side of the batch submitter: a header row followed by
// one record per line, parsed with encoding/csv. Column names are taken from
// the header as spelled, including a possible UTF-8 byte-order mark on the
// first cell; the accessors tolerate the BOM variant so exports from
// spreadsheet tools map cleanly. Unknown columns are carried along and ignored.
//
// Records are read once, never mutated, and discarded by the caller after
// producing a result.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Sentinel errors distinguishing a missing input file from other read
// failures. Both are fatal to a run; callers branch on them for exit messages.
var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("input file not found")
)

// Well-known column names expected by convention. The leading byte-order mark
// variant appears when the file was exported as "CSV UTF-8" by spreadsheet
// tools, which prefix the first header cell.
const (
	FieldWineName = "Wine Name"
	FieldVintage  = "Vintage"

	bomPrefix = "\ufeff"

	// UnknownValue stands in for a missing name or vintage field so results
	// rows are always fully populated.
	UnknownValue = "Unknown"
)

// Record is one parsed input row. Row is the 1-based position in the file
// including the header offset, so the first data row reports as row 2.
type Record struct {
	Row    int
	Fields map[string]string
}

// Lookup returns the named field value, tolerating a byte-order-mark prefix
// on the column name.
func (r Record) Lookup(name string) (string, bool) {
	if v, ok := r.Fields[name]; ok {
		return v, true
	}
	if v, ok := r.Fields[bomPrefix+name]; ok {
		return v, true
	}
	return "", false
}

// Get returns the named field value, tolerating a byte-order-mark prefix on
// the column name. Missing fields return UnknownValue.
func (r Record) Get(name string) string {
	if v, ok := r.Lookup(name); ok {
		return v
	}
	return UnknownValue
}

// WineName returns the record's primary name field.
func (r Record) WineName() string {
	return r.Get(FieldWineName)
}

// Vintage returns the record's vintage/year field.
func (r Record) Vintage() string {
	return r.Get(FieldVintage)
}

// ReadFile opens and fully parses the input table. Returns ErrNotFound when
// the file is missing and a wrapped read error for any other failure; both
// abort the run. The returned records preserve file order.
func ReadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return records, nil
}

// Read parses records from an already-open table. Exposed separately so tests
// and future inputs (stdin, archives) can reuse the same parsing.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	// Ragged rows keep their present fields; missing cells fall back to
	// UnknownValue downstream instead of aborting the run.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("input is empty, expected a header row")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var records []Record
	// Header is row 1; first data row reports as row 2.
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			}
		}
		records = append(records, Record{Row: rowNum, Fields: fields})
	}

	return records, nil
}
