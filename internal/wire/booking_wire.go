package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)       // POST /api/bookings
		r.Get("/", bookingHandler.SearchBookings)       // GET /api/bookings?city=Stockholm
		r.Get("/stats", bookingHandler.GetBookingStats) // GET /api/bookings/stats?city=Stockholm
		r.Get("/daily", bookingHandler.GetDailyStats)   // GET /api/bookings/daily?city=Stockholm
		r.Get("/{id}", bookingHandler.GetBookingByID)   // GET /api/bookings/{id}
	})

	// GET /api/slots?date=2025-12-01&city=Stockholm
	r.Get("/api/slots", bookingHandler.GetAvailableSlots)

	// GET /api/revenue?start_date=2025-10-01&end_date=2025-10-31&city=Stockholm
	r.Get("/api/revenue", bookingHandler.GetRevenue)
}
