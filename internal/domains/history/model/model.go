package model

import "time"

const (
	TableName  = "price_history"
	EntityName = "price history"
)

// PricePoint is one recorded quote for a (flight, class) pair. The market
// scheduler appends one on every simulated lookup, which is what gives the
// history its shape over time.
type PricePoint struct {
	ID              int64     `db:"id" json:"id"`
	FlightID        int64     `db:"flight_id" json:"flight_id"`
	SeatClass       string    `db:"seat_class" json:"seat_class"`
	Price           float64   `db:"price" json:"price"`
	BaseFare        float64   `db:"base_fare" json:"base_fare"`
	SeatsAvailable  int       `db:"seats_available" json:"seats_available"`
	DaysToDeparture int       `db:"days_to_departure" json:"days_to_departure"`
	RecordedAt      time.Time `db:"recorded_at" json:"recorded_at"`
}

// Summary aggregates the recorded quotes for one (flight, class) pair.
type Summary struct {
	FlightID  int64   `db:"flight_id" json:"flight_id"`
	SeatClass string  `db:"seat_class" json:"seat_class"`
	Samples   int     `db:"samples" json:"samples"`
	MinPrice  float64 `db:"min_price" json:"min_price"`
	AvgPrice  float64 `db:"avg_price" json:"avg_price"`
	MaxPrice  float64 `db:"max_price" json:"max_price"`
}
