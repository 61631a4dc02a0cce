package model

import "time"

const (
	TableName  = "flights"
	EntityName = "flight"

	FieldID            = "id"
	FieldFlightNumber  = "flight_number"
	FieldAirlineCode   = "airline_code"
	FieldOriginCode    = "origin_code"
	FieldDestination   = "destination_code"
	FieldDepartureTime = "departure_time"
	FieldStatus        = "status"
)

type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"
	StatusDeparted  FlightStatus = "departed"
	StatusArrived   FlightStatus = "arrived"
)

type Flight struct {
	ID              int64        `db:"id" json:"id"`
	FlightNumber    string       `db:"flight_number" json:"flight_number"`
	AirlineCode     string       `db:"airline_code" json:"airline_code"`
	OriginCode      string       `db:"origin_code" json:"origin_code"`
	DestinationCode string       `db:"destination_code" json:"destination_code"`
	DepartureTime   time.Time    `db:"departure_time" json:"departure_time"`
	ArrivalTime     time.Time    `db:"arrival_time" json:"arrival_time"`
	BaseFare        float64      `db:"base_fare" json:"base_fare"`
	Status          FlightStatus `db:"status" json:"status"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
}

// Bookable reports whether a booking may be created against this flight:
// it must still be scheduled and its departure strictly in the future.
func (f Flight) Bookable(now time.Time) bool {
	return f.Status == StatusScheduled && f.DepartureTime.After(now)
}
