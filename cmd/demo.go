package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

var demoBookings = []request.CreateBookingRequest{
	{CustomerName: "John Doe", ServiceType: "African Braids", City: "Stockholm", BookingDate: "2025-10-30", BookingTime: "10:00", Price: 500.0},
	{CustomerName: "Jane Smith", ServiceType: "Barber Service", City: "Stockholm", BookingDate: "2025-10-30", BookingTime: "11:00", Price: 300.0},
	{CustomerName: "Alice Johnson", ServiceType: "African Braids", City: "Gothenburg", BookingDate: "2025-10-31", BookingTime: "14:00", Price: 550.0},
}

// RunDemo seeds sample bookings through svc and prints what each operation
// returns. The caller owns svc and whatever store backs it.
func RunDemo(ctx context.Context, svc usecase.BookingService, out io.Writer, logger *zap.Logger) error {
	fmt.Fprintln(out, "Creating test bookings...")
	for i := range demoBookings {
		id, err := svc.CreateBooking(ctx, &demoBookings[i])
		if err != nil {
			return fmt.Errorf("demo create booking: %w", err)
		}
		logger.Debug("Demo booking created", zap.Int64("booking_id", id))
	}

	city := "Stockholm"
	bookings, err := svc.SearchBookings(ctx, city)
	if err != nil {
		return fmt.Errorf("demo search: %w", err)
	}
	fmt.Fprintf(out, "Bookings in %s: %d found\n", city, len(bookings))

	today := time.Now().Format(utils.DateLayout)
	slots, err := svc.GetAvailableSlots(ctx, today, city)
	if err != nil {
		return fmt.Errorf("demo slots: %w", err)
	}
	fmt.Fprintf(out, "Available slots for today (%s): %v\n", today, slots)

	revenue, err := svc.CalculateTotalRevenue(ctx, "2025-10-01", "2025-10-31", city)
	if err != nil {
		return fmt.Errorf("demo revenue: %w", err)
	}
	fmt.Fprintf(out, "Total revenue for October in %s: %.2f SEK\n", city, revenue)

	stats, err := svc.GetBookingStats(ctx, city)
	if err != nil {
		return fmt.Errorf("demo stats: %w", err)
	}
	fmt.Fprintf(out, "Bookings per service in %s: %v\n", city, stats)

	return nil
}
