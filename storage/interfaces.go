package storage

import (
	"io"

	"hotel-data-generator/models"
)

// TableWriter is the interface any tabular export backend must satisfy.
type TableWriter interface {
	WriteTables(tables []models.Table) error
	Close() error
}

// BookingWriter is the interface for persisting the bookings table to
// an external store.
type BookingWriter interface {
	Write(bookings []*models.Booking) error
	Close() error
}

// Archiver bundles a set of tables into a single downloadable stream.
type Archiver interface {
	Archive(w io.Writer, tables []models.Table) error
}
