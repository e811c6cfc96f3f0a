package utils

import "time"

// Stored formats for booking_date and booking_time. Both sort
// lexicographically in chronological order.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}
