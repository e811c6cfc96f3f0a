package request

// CreateBookingRequest only requires the text fields to be present. Date,
// time and price formats are stored as given.
type CreateBookingRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	ServiceType  string  `json:"service_type" validate:"required"`
	City         string  `json:"city" validate:"required"`
	BookingDate  string  `json:"booking_date" validate:"required"`
	BookingTime  string  `json:"booking_time" validate:"required"`
	Price        float64 `json:"price"`
}

type RevenueRequest struct {
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
	City      string `validate:"required"`
}
