package response

import "salon-booking/internal/data/entity"

type BookingResponse struct {
	ID           int64                `json:"id"`
	CustomerName string               `json:"customer_name"`
	ServiceType  string               `json:"service_type"`
	City         string               `json:"city"`
	BookingDate  string               `json:"booking_date"`
	BookingTime  string               `json:"booking_time"`
	Price        float64              `json:"price"`
	Status       entity.BookingStatus `json:"status"`
}

type CreateBookingResponse struct {
	ID int64 `json:"id"`
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	City  string   `json:"city"`
	Slots []string `json:"slots"`
}

type RevenueResponse struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	City      string  `json:"city"`
	Total     float64 `json:"total"`
}

type BookingStatsResponse struct {
	City  string           `json:"city"`
	Stats map[string]int64 `json:"stats"`
}

type DailyStatResponse struct {
	Date     string  `json:"date"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type DailyStatsResponse struct {
	City string              `json:"city"`
	Days []DailyStatResponse `json:"days"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		ServiceType:  b.ServiceType,
		City:         b.City,
		BookingDate:  b.BookingDate,
		BookingTime:  b.BookingTime,
		Price:        b.Price,
		Status:       b.Status,
	}
}
