package source

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/parkdata/geoconvert/internal/pipeline"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// XLSXFile holds the active worksheet of a reference-table workbook.
type XLSXFile struct {
	columns []string
	rows    []pipeline.Row
}

// OpenXLSX reads the active sheet of the workbook at path.
func OpenXLSX(path string) (*XLSXFile, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", pipeline.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", pipeline.ErrInputNotFound, path, err)
	}

	defer func() {
		if closeErr := wb.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close workbook")
		}
	}()

	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	records, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty, header row required", pipeline.ErrSchemaMismatch, sheet)
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.TrimSpace(c)
	}

	src := &XLSXFile{columns: columns}
	for i, rec := range records[1:] {
		// Spreadsheet apps pad files with blank trailing rows; a row
		// without an identifier cell is filler, not data.
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}

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

func (s *XLSXFile) Columns() []string    { return s.columns }
func (s *XLSXFile) Rows() []pipeline.Row { return s.rows }
