package repository

import (
	"context"
	"fmt"

	"salon-booking/pkg/database"
)

// schemaStatements run in order. Every statement is create-if-absent, so
// EnsureSchema can run on every start against the same database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id            BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		service_type  TEXT NOT NULL,
		city          TEXT NOT NULL,
		booking_date  TEXT NOT NULL,
		booking_time  TEXT NOT NULL,
		price         DOUBLE PRECISION NOT NULL,
		status        TEXT NOT NULL DEFAULT 'pending'
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id               BIGSERIAL PRIMARY KEY,
		name             TEXT NOT NULL,
		type             TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		base_price       DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_city_date ON bookings (city, booking_date)`,
}

func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
