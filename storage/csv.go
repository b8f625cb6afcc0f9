package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hotel-data-generator/models"
)

// WriteTable streams one table as CSV: header row first, then every
// data row in order.
func WriteTable(w io.Writer, t models.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("csv: write %s header: %w", t.Name, err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write %s row: %w", t.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush %s: %w", t.Name, err)
	}
	return nil
}

// DirWriter dumps every table of a dataset as a CSV file under one
// directory, using the fixed per-table filenames.
type DirWriter struct {
	dir string
}

// NewDirWriter creates the output directory (and parents) if needed.
func NewDirWriter(dir string) (*DirWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &DirWriter{dir: dir}, nil
}

// WriteTables writes each table to <dir>/<Name>.csv, truncating any
// previous file.
func (d *DirWriter) WriteTables(tables []models.Table) error {
	for _, t := range tables {
		path := filepath.Join(d.dir, t.Filename())

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("csv: create file %q: %w", path, err)
		}
		if err := WriteTable(f, t); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("csv: close %q: %w", path, err)
		}
	}
	return nil
}

// Close is a no-op; files are closed per table.
func (d *DirWriter) Close() error { return nil }
