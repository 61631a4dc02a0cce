package model

import "time"

const (
	TableName  = "seat_inventory"
	EntityName = "seat inventory"

	FieldID             = "id"
	FieldFlightID       = "flight_id"
	FieldSeatClass      = "seat_class"
	FieldTotalSeats     = "total_seats"
	FieldAvailableSeats = "available_seats"
)

type SeatClass string

const (
	ClassEconomy  SeatClass = "economy"
	ClassBusiness SeatClass = "business"
	ClassFirst    SeatClass = "first"
)

var AllClasses = []SeatClass{ClassEconomy, ClassBusiness, ClassFirst}

func (c SeatClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	default:
		return false
	}
}

// SeatInventory is the capacity record for one (flight, seat class) pair.
// Invariant: 0 <= AvailableSeats <= TotalSeats, enforced by the ledger.
type SeatInventory struct {
	ID             int64     `db:"id" json:"id"`
	FlightID       int64     `db:"flight_id" json:"flight_id"`
	SeatClass      SeatClass `db:"seat_class" json:"seat_class"`
	TotalSeats     int       `db:"total_seats" json:"total_seats"`
	AvailableSeats int       `db:"available_seats" json:"available_seats"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
