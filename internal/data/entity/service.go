package entity

// Service mirrors the services catalog table. Nothing reads or writes it yet;
// slot length is still a fixed hour regardless of DurationMinutes.
type Service struct {
	BaseSerial
	Name            string  `db:"name"`
	Type            string  `db:"type"`
	DurationMinutes int     `db:"duration_minutes"`
	BasePrice       float64 `db:"base_price"`
}
