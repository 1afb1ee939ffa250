package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVSource reads sheets from CSV files in a data directory. Each sheet
// maps to <dir>/<sheet>.csv with a header row as the first record.
//
// Files are re-read in full on every Rows call so appends are visible
// to the next read without any invalidation step.
type CSVSource struct {
	dir string
}

// NewCSV creates a CSVSource rooted at dir.
func NewCSV(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

// path returns the file path for a sheet name.
func (s *CSVSource) path(sheet string) string {
	return filepath.Join(s.dir, sheet+".csv")
}

// Rows reads the named sheet, skipping the header row.
// A missing file is reported as an error (sheet absent).
func (s *CSVSource) Rows(ctx context.Context, sheet string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(sheet))
	if err != nil {
		return nil, fmt.Errorf("open sheet %q: %w", sheet, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(record))
		for i, field := range record {
			row[i] = ParseCell(field)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append writes one row to the end of the named sheet. The sheet file
// must already exist: a fresh file would have no header row, so the
// first data row would be swallowed by the header skip on read.
func (s *CSVSource) Append(ctx context.Context, sheet string, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(sheet), os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open sheet %q for append: %w", sheet, err)
	}
	defer f.Close()

	// A file without a trailing newline would merge the new record into
	// the last existing row.
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err == nil && last[0] != '\n' {
			if _, err := f.Write([]byte("\n")); err != nil {
				return fmt.Errorf("append to sheet %q: %w", sheet, err)
			}
		}
	}

	record := make([]string, len(row))
	for i, cell := range row {
		record[i] = cell.Text()
	}

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		return fmt.Errorf("append to sheet %q: %w", sheet, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush sheet %q: %w", sheet, err)
	}
	return nil
}
