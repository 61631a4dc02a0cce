package dto

import (
	"time"

	flightModel "skyfare/internal/domains/flight/model"
	invModel "skyfare/internal/domains/inventory/model"
	"skyfare/internal/domains/pricing"
)

type SeatAvailability struct {
	SeatClass      invModel.SeatClass `json:"seat_class"`
	TotalSeats     int                `json:"total_seats"`
	AvailableSeats int                `json:"available_seats"`
}

type FlightResponse struct {
	ID              int64                    `json:"id"`
	FlightNumber    string                   `json:"flight_number"`
	AirlineCode     string                   `json:"airline_code"`
	OriginCode      string                   `json:"origin_code"`
	DestinationCode string                   `json:"destination_code"`
	DepartureTime   time.Time                `json:"departure_time"`
	ArrivalTime     time.Time                `json:"arrival_time"`
	BaseFare        float64                  `json:"base_fare"`
	Status          flightModel.FlightStatus `json:"status"`
	Availability    []SeatAvailability       `json:"availability,omitempty"`
}

func (r *FlightResponse) FromModel(f flightModel.Flight, inventories []invModel.SeatInventory) {
	r.ID = f.ID
	r.FlightNumber = f.FlightNumber
	r.AirlineCode = f.AirlineCode
	r.OriginCode = f.OriginCode
	r.DestinationCode = f.DestinationCode
	r.DepartureTime = f.DepartureTime
	r.ArrivalTime = f.ArrivalTime
	r.BaseFare = f.BaseFare
	r.Status = f.Status

	for _, inv := range inventories {
		r.Availability = append(r.Availability, SeatAvailability{
			SeatClass:      inv.SeatClass,
			TotalSeats:     inv.TotalSeats,
			AvailableSeats: inv.AvailableSeats,
		})
	}
}

type GetFlightsResponse struct {
	Flights []FlightResponse `json:"flights"`
	Total   int              `json:"total"`
}

func (r *GetFlightsResponse) FromModels(flights []flightModel.Flight) {
	r.Flights = make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		var item FlightResponse
		item.FromModel(f, nil)
		r.Flights = append(r.Flights, item)
	}
	r.Total = len(r.Flights)
}

type QuoteRequest struct {
	FlightID  int64  `json:"flight_id" validate:"required,gt=0"`
	SeatClass string `json:"seat_class" validate:"required,oneof=economy business first"`
}

type QuoteResponse struct {
	FlightID  int64             `json:"flight_id"`
	SeatClass string            `json:"seat_class"`
	QuotedAt  time.Time         `json:"quoted_at"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}
