package storage

import (
	"archive/zip"
	"fmt"
	"io"

	"hotel-data-generator/models"
)

// ZIPArchiver bundles dataset tables into one deflate-compressed ZIP
// with the fixed per-table CSV filenames.
type ZIPArchiver struct{}

// Archive writes the archive to w. Table order is preserved.
func (ZIPArchiver) Archive(w io.Writer, tables []models.Table) error {
	zw := zip.NewWriter(w)

	for _, t := range tables {
		entry, err := zw.Create(t.Filename())
		if err != nil {
			return fmt.Errorf("zip: create entry %q: %w", t.Filename(), err)
		}
		if err := WriteTable(entry, t); err != nil {
			return fmt.Errorf("zip: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("zip: close archive: %w", err)
	}
	return nil
}
