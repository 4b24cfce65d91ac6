// Package source provides the tabular row readers feeding the conversion
// pipeline. Both readers load the whole file up front and close the handle
// before returning; the inputs are small reference tables, not data streams.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

// CSVFile holds the parsed contents of a comma-separated location export.
// The first line is the header row.
type CSVFile struct {
	columns []string
	rows    []pipeline.Row
}

// OpenCSV reads and parses the file at path.
func OpenCSV(path string) (*CSVFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", pipeline.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", pipeline.ErrInputNotFound, path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f)
}

// ReadCSV parses CSV text from r into rows keyed by header name.
func ReadCSV(r io.Reader) (*CSVFile, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Exports frequently drop trailing empty cells; short rows are fine.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file, header row required", pipeline.ErrSchemaMismatch)
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.TrimSpace(c)
	}

	src := &CSVFile{columns: columns}
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(columns))
		for j, name := range columns {
			if j < len(rec) {
				fields[name] = rec[j]
			}
		}
		src.rows = append(src.rows, pipeline.Row{Num: i + 1, Fields: fields})
	}

	return src, nil
}

func (s *CSVFile) Columns() []string    { return s.columns }
func (s *CSVFile) Rows() []pipeline.Row { return s.rows }
