package repository

import (
	"context"
	"errors"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByCity(ctx context.Context, city string) ([]*entity.Booking, error)

	// Business queries
	FindBookedTimes(ctx context.Context, date, city string) ([]string, error)
	SumRevenue(ctx context.Context, startDate, endDate, city string) (float64, error)
	CountByServiceType(ctx context.Context, city string) (map[string]int64, error)
	DailyStats(ctx context.Context, city string) ([]entity.DailyBookingStat, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_name, service_type, city, booking_date, booking_time, price, status`

// Create inserts the row and fills in the id and default status assigned by
// the database.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (customer_name, service_type, city, booking_date, booking_time, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status
	`

	var status string
	err := r.db.QueryRow(ctx, query,
		booking.CustomerName,
		booking.ServiceType,
		booking.City,
		booking.BookingDate,
		booking.BookingTime,
		booking.Price,
	).Scan(&booking.ID, &status)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("city", booking.City),
			zap.String("booking_date", booking.BookingDate),
			zap.String("booking_time", booking.BookingTime),
		)
		return fmt.Errorf("create booking on %s %s in %q: %w", booking.BookingDate, booking.BookingTime, booking.City, err)
	}
	booking.Status = entity.BookingStatus(status)

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

// FindByCity matches city exactly (case-sensitive) and keeps insertion order.
func (r *bookingRepository) FindByCity(ctx context.Context, city string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE city = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		r.log.Error("Failed to find bookings by city",
			zap.Error(err),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("find bookings by city %q: %w", city, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings by city %q: %w", city, err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindBookedTimes(ctx context.Context, date, city string) ([]string, error) {
	query := `SELECT booking_time FROM bookings WHERE booking_date = $1 AND city = $2`

	rows, err := r.db.Query(ctx, query, date, city)
	if err != nil {
		r.log.Error("Failed to find booked times",
			zap.Error(err),
			zap.String("date", date),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("find booked times on %s in %q: %w", date, city, err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			r.log.Error("Failed to scan booking time", zap.Error(err))
			return nil, fmt.Errorf("scan booking time: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booked times: %w", err)
	}

	return times, nil
}

// SumRevenue compares booking_date as text; correct only because dates are
// stored zero-padded as YYYY-MM-DD.
func (r *bookingRepository) SumRevenue(ctx context.Context, startDate, endDate, city string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(price), 0)
		FROM bookings
		WHERE booking_date >= $1 AND booking_date <= $2 AND city = $3
	`

	var total float64
	err := r.db.QueryRow(ctx, query, startDate, endDate, city).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum revenue",
			zap.Error(err),
			zap.String("start_date", startDate),
			zap.String("end_date", endDate),
			zap.String("city", city),
		)
		return 0, fmt.Errorf("sum revenue %s..%s in %q: %w", startDate, endDate, city, err)
	}

	return total, nil
}

func (r *bookingRepository) CountByServiceType(ctx context.Context, city string) (map[string]int64, error) {
	query := `
		SELECT service_type, COUNT(*)
		FROM bookings
		WHERE city = $1
		GROUP BY service_type
	`

	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		r.log.Error("Failed to count bookings by service type",
			zap.Error(err),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("count bookings by service type in %q: %w", city, err)
	}
	defer rows.Close()

	stats := make(map[string]int64)
	for rows.Next() {
		var (
			serviceType string
			count       int64
		)
		if err := rows.Scan(&serviceType, &count); err != nil {
			r.log.Error("Failed to scan booking stats row", zap.Error(err))
			return nil, fmt.Errorf("scan booking stats row: %w", err)
		}
		stats[serviceType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking stats: %w", err)
	}

	return stats, nil
}

// DailyStats groups a city's bookings by booking_date, oldest first.
func (r *bookingRepository) DailyStats(ctx context.Context, city string) ([]entity.DailyBookingStat, error) {
	query := `
		SELECT booking_date, COUNT(*), COALESCE(SUM(price), 0)
		FROM bookings
		WHERE city = $1
		GROUP BY booking_date
		ORDER BY booking_date
	`

	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		r.log.Error("Failed to get daily booking stats",
			zap.Error(err),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("daily booking stats in %q: %w", city, err)
	}
	defer rows.Close()

	stats := make([]entity.DailyBookingStat, 0)
	for rows.Next() {
		var day entity.DailyBookingStat
		if err := rows.Scan(&day.Date, &day.Bookings, &day.Revenue); err != nil {
			r.log.Error("Failed to scan daily stats row", zap.Error(err))
			return nil, fmt.Errorf("scan daily stats row: %w", err)
		}
		stats = append(stats, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily stats: %w", err)
	}

	return stats, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking entity.Booking
		status  string
	)
	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.ServiceType,
		&booking.City,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.Price,
		&status,
	)
	if err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatus(status)
	return &booking, nil
}
