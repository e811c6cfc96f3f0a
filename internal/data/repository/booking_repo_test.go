package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"salon-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var bookingCols = []string{"id", "customer_name", "service_type", "city", "booking_date", "booking_time", "price", "status"}

func newMockRepo(t *testing.T) (BookingRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewBookingRepository(mock, zaptest.NewLogger(t)), mock
}

func TestBookingRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("John Doe", "African Braids", "Stockholm", "2025-10-30", "10:00", 500.0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "status"}).AddRow(int64(7), "pending"))

	booking := &entity.Booking{
		CustomerName: "John Doe",
		ServiceType:  "African Braids",
		City:         "Stockholm",
		BookingDate:  "2025-10-30",
		BookingTime:  "10:00",
		Price:        500.0,
	}
	require.NoError(t, repo.Create(context.Background(), booking))

	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_PropagatesStorageError(t *testing.T) {
	repo, mock := newMockRepo(t)

	dbErr := errors.New("disk full")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("Jane", "Barber Service", "Stockholm", "2025-10-30", "11:00", 300.0).
		WillReturnError(dbErr)

	err := repo.Create(context.Background(), &entity.Booking{
		CustomerName: "Jane",
		ServiceType:  "Barber Service",
		City:         "Stockholm",
		BookingDate:  "2025-10-30",
		BookingTime:  "11:00",
		Price:        300.0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotContains(t, err.Error(), "Jane")
	assert.Contains(t, err.Error(), "2025-10-30 11:00")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByCity(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE city = $1")).
		WithArgs("Stockholm").
		WillReturnRows(pgxmock.NewRows(bookingCols).
			AddRow(int64(1), "John Doe", "African Braids", "Stockholm", "2025-10-30", "10:00", 500.0, "pending").
			AddRow(int64(2), "Jane Smith", "Barber Service", "Stockholm", "2025-10-30", "11:00", 300.0, "pending"))

	bookings, err := repo.FindByCity(context.Background(), "Stockholm")
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, int64(1), bookings[0].ID)
	assert.Equal(t, "John Doe", bookings[0].CustomerName)
	assert.Equal(t, int64(2), bookings[1].ID)
	for _, b := range bookings {
		assert.Equal(t, "Stockholm", b.City)
		assert.Equal(t, entity.BookingStatusPending, b.Status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByCity_BindsInputAsParameter(t *testing.T) {
	repo, mock := newMockRepo(t)

	malicious := "Stockholm' OR '1'='1"
	mock.ExpectQuery(regexp.QuoteMeta("WHERE city = $1")).
		WithArgs(malicious).
		WillReturnRows(pgxmock.NewRows(bookingCols))

	bookings, err := repo.FindByCity(context.Background(), malicious)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CityNeverInlinedIntoSQL(t *testing.T) {
	var statements []string
	recordSQL := pgxmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		statements = append(statements, actualSQL)
		return pgxmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
	})

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(recordSQL))
	require.NoError(t, err)
	defer mock.Close()
	repo := NewBookingRepository(mock, zaptest.NewLogger(t))

	ctx := context.Background()
	city := "Stockholm'; DROP TABLE bookings; --"

	mock.ExpectQuery("FROM bookings").WithArgs(city).
		WillReturnRows(pgxmock.NewRows(bookingCols))
	mock.ExpectQuery("SELECT booking_time").WithArgs("2025-12-01", city).
		WillReturnRows(pgxmock.NewRows([]string{"booking_time"}))
	mock.ExpectQuery("SUM").WithArgs("2025-10-01", "2025-10-31", city).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery("GROUP BY service_type").WithArgs(city).
		WillReturnRows(pgxmock.NewRows([]string{"service_type", "count"}))
	mock.ExpectQuery("GROUP BY booking_date").WithArgs(city).
		WillReturnRows(pgxmock.NewRows([]string{"booking_date", "count", "coalesce"}))

	_, err = repo.FindByCity(ctx, city)
	require.NoError(t, err)
	_, err = repo.FindBookedTimes(ctx, "2025-12-01", city)
	require.NoError(t, err)
	_, err = repo.SumRevenue(ctx, "2025-10-01", "2025-10-31", city)
	require.NoError(t, err)
	_, err = repo.CountByServiceType(ctx, city)
	require.NoError(t, err)
	_, err = repo.DailyStats(ctx, city)
	require.NoError(t, err)

	require.NotEmpty(t, statements)
	for _, sql := range statements {
		assert.NotContains(t, sql, "Stockholm")
		assert.NotContains(t, sql, "DROP TABLE")
		assert.Contains(t, sql, "city = $")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(bookingCols).
			AddRow(int64(3), "Alice Johnson", "African Braids", "Gothenburg", "2025-10-31", "14:00", 550.0, "pending"))

	booking, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, "Gothenburg", booking.City)
	assert.Equal(t, 550.0, booking.Price)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	missing, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindBookedTimes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT booking_time FROM bookings")).
		WithArgs("2025-12-01", "Stockholm").
		WillReturnRows(pgxmock.NewRows([]string{"booking_time"}).AddRow("10:00").AddRow("15:00"))

	times, err := repo.FindBookedTimes(context.Background(), "2025-12-01", "Stockholm")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "15:00"}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_SumRevenue(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(price), 0)")).
		WithArgs("2025-10-01", "2025-10-31", "Stockholm").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(800.0))

	total, err := repo.SumRevenue(context.Background(), "2025-10-01", "2025-10-31", "Stockholm")
	require.NoError(t, err)
	assert.Equal(t, 800.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CountByServiceType(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY service_type")).
		WithArgs("Stockholm").
		WillReturnRows(pgxmock.NewRows([]string{"service_type", "count"}).
			AddRow("African Braids", int64(2)).
			AddRow("Barber Service", int64(1)))

	stats, err := repo.CountByServiceType(context.Background(), "Stockholm")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"African Braids": 2, "Barber Service": 1}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_DailyStats(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY booking_date")).
		WithArgs("Stockholm").
		WillReturnRows(pgxmock.NewRows([]string{"booking_date", "count", "coalesce"}).
			AddRow("2025-10-30", int64(2), 800.0).
			AddRow("2025-11-02", int64(1), 450.0))

	stats, err := repo.DailyStats(context.Background(), "Stockholm")
	require.NoError(t, err)
	assert.Equal(t, []entity.DailyBookingStat{
		{Date: "2025-10-30", Bookings: 2, Revenue: 800.0},
		{Date: "2025-11-02", Bookings: 1, Revenue: 450.0},
	}, stats)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY booking_date")).
		WithArgs("Nowhere").
		WillReturnRows(pgxmock.NewRows([]string{"booking_date", "count", "coalesce"}))

	empty, err := repo.DailyStats(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS bookings")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS services")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS idx_bookings_city_date")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
