package entity

type BookingStatus string

// Status is written once at insert time and never transitioned.
const BookingStatusPending BookingStatus = "pending"

type Booking struct {
	BaseSerial
	CustomerName string        `db:"customer_name"`
	ServiceType  string        `db:"service_type"`
	City         string        `db:"city"`
	BookingDate  string        `db:"booking_date"` // YYYY-MM-DD
	BookingTime  string        `db:"booking_time"` // HH:MM
	Price        float64       `db:"price"`
	Status       BookingStatus `db:"status"`
}

// DailyBookingStat is one booking_date bucket for a city.
type DailyBookingStat struct {
	Date     string  `db:"booking_date"`
	Bookings int64   `db:"bookings"`
	Revenue  float64 `db:"revenue"`
}
