package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"hotel-data-generator/models"
	"hotel-data-generator/utils"
)

// PostgresWriter persists a generated bookings table to PostgreSQL so
// a dataset can be queried with SQL instead of spreadsheets.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS bookings (
			id             SERIAL PRIMARY KEY,
			booking_id     VARCHAR(16)   NOT NULL,
			booking_date   DATE          NOT NULL,
			check_in_date  DATE          NOT NULL,
			check_out_date DATE          NOT NULL,
			room_type      TEXT          NOT NULL,
			rate_plan      TEXT          NOT NULL,
			booked_rate    NUMERIC(14,2) NOT NULL DEFAULT 0,
			nights         INT           NOT NULL,
			guests         INT           NOT NULL,
			channel        VARCHAR(20)   NOT NULL,
			status         VARCHAR(20)   NOT NULL,
			revenue        NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_check_in  ON bookings(check_in_date);
		CREATE INDEX IF NOT EXISTS idx_bookings_room_type ON bookings(room_type);
		CREATE INDEX IF NOT EXISTS idx_bookings_status    ON bookings(status);
	`)
	return err
}

// Clear deletes all previously exported bookings.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM bookings")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all bookings, clearing the previous export first.
func (pw *PostgresWriter) Write(bookings []*models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 100
	for i := 0; i < len(bookings); i += batchSize {
		end := i + batchSize
		if end > len(bookings) {
			end = len(bookings)
		}
		if err := pw.insertBatch(bookings[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.Booking) error {
	const cols = 12

	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, b := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			b.ID, b.BookingDate.Time, b.CheckIn.Time, b.CheckOut.Time,
			b.RoomType, b.RatePlan, b.Rate, b.Nights, b.Guests,
			b.Channel, b.Status, b.Revenue)
	}

	query := fmt.Sprintf(`
		INSERT INTO bookings (booking_id, booking_date, check_in_date, check_out_date,
			room_type, rate_plan, booked_rate, nights, guests, channel, status, revenue)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
