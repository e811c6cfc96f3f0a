package entity

// BaseSerial is embedded by rows keyed on a BIGSERIAL surrogate id.
type BaseSerial struct {
	ID int64 `db:"id"`
}
