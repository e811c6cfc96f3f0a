package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// Appointment slots start on the hour, 09:00 through 17:00.
const (
	firstSlotHour = 9
	lastSlotHour  = 17
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (int64, error)
	SearchBookings(ctx context.Context, city string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error)

	// Availability & reporting
	GetAvailableSlots(ctx context.Context, date, city string) ([]string, error)
	CalculateTotalRevenue(ctx context.Context, startDate, endDate, city string) (float64, error)
	GetBookingStats(ctx context.Context, city string) (map[string]int64, error)
	GetDailyStats(ctx context.Context, city string) ([]response.DailyStatResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return newBookingService(repo, log, time.Now)
}

func newBookingService(repo *repository.Repository, log *zap.Logger, now func() time.Time) *bookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  now,
	}
}

// CreateBooking stores the booking as given. There is no slot conflict check,
// so two bookings may share a date, time and city.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
	booking := &entity.Booking{
		CustomerName: req.CustomerName,
		ServiceType:  req.ServiceType,
		City:         req.City,
		BookingDate:  req.BookingDate,
		BookingTime:  req.BookingTime,
		Price:        req.Price,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("service_type", booking.ServiceType),
		zap.String("city", booking.City),
		zap.String("booking_date", booking.BookingDate),
		zap.String("booking_time", booking.BookingTime),
		zap.Float64("price", booking.Price),
	)

	return booking.ID, nil
}

func (s *bookingService) SearchBookings(ctx context.Context, city string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("search bookings: %w", err)
	}

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking)
	}

	s.log.Debug("Bookings searched",
		zap.String("city", city),
		zap.Int("count", len(result)),
	)

	return result, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d: %w", id, ErrBookingNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// GetAvailableSlots lists the hourly slots still free on date in city.
// A date that is not YYYY-MM-DD yields an empty list, not an error. Past
// dates have no slots; on the current day only slots strictly after now
// are offered.
func (s *bookingService) GetAvailableSlots(ctx context.Context, date, city string) ([]string, error) {
	bookedTimes, err := s.repo.Booking.FindBookedTimes(ctx, date, city)
	if err != nil {
		return nil, fmt.Errorf("get available slots: %w", err)
	}

	now := s.now()
	day, err := utils.ParseDate(date, now.Location())
	if err != nil {
		s.log.Debug("Malformed slot date", zap.String("date", date), zap.Error(err))
		return []string{}, nil
	}

	today := utils.BeginningOfDay(now)
	if day.Before(today) {
		return []string{}, nil
	}

	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots := make([]string, 0, lastSlotHour-firstSlotHour+1)
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slot := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())

		if day.Equal(today) && !slot.After(now) {
			continue
		}

		label := slot.Format(utils.TimeLayout)
		if _, taken := booked[label]; taken {
			continue
		}
		slots = append(slots, label)
	}

	return slots, nil
}

func (s *bookingService) CalculateTotalRevenue(ctx context.Context, startDate, endDate, city string) (float64, error) {
	total, err := s.repo.Booking.SumRevenue(ctx, startDate, endDate, city)
	if err != nil {
		return 0, fmt.Errorf("calculate total revenue: %w", err)
	}

	s.log.Debug("Revenue calculated",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
		zap.String("city", city),
		zap.Float64("total", total),
	)

	return total, nil
}

func (s *bookingService) GetBookingStats(ctx context.Context, city string) (map[string]int64, error) {
	stats, err := s.repo.Booking.CountByServiceType(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("get booking stats: %w", err)
	}
	return stats, nil
}

// GetDailyStats reports booking count and booked value per date in city.
// Every booking counts toward revenue since statuses never advance past pending.
func (s *bookingService) GetDailyStats(ctx context.Context, city string) ([]response.DailyStatResponse, error) {
	days, err := s.repo.Booking.DailyStats(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("get daily stats: %w", err)
	}

	result := make([]response.DailyStatResponse, len(days))
	for i, day := range days {
		result[i] = response.DailyStatResponse{
			Date:     day.Date,
			Bookings: day.Bookings,
			Revenue:  day.Revenue,
		}
	}
	return result, nil
}
