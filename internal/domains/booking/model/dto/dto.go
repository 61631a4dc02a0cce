package dto

import (
	"time"

	"skyfare/internal/domains/booking/model"
)

type PassengerPayload struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Age      int    `json:"age" validate:"gte=0,lte=120"`
}

type CreateBookingRequest struct {
	FlightID   int64              `json:"flight_id" validate:"required,gt=0"`
	SeatClass  string             `json:"seat_class" validate:"required,oneof=economy business first"`
	Passengers []PassengerPayload `json:"passengers" validate:"required,min=1,dive"`
}

type ConfirmBookingRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=40"`
}

type PassengerResponse struct {
	FullName string `json:"full_name"`
	Age      int    `json:"age"`
}

type BookingResponse struct {
	PNR           string              `json:"pnr"`
	FlightID      int64               `json:"flight_id"`
	SeatClass     string              `json:"seat_class"`
	SeatCount     int                 `json:"seat_count"`
	PricePerSeat  float64             `json:"price_per_seat"`
	TotalPrice    float64             `json:"total_price"`
	Status        model.BookingStatus `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	ExpiresAt     *time.Time          `json:"expires_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	Passengers    []PassengerResponse `json:"passengers,omitempty"`
}

func (r *BookingResponse) FromModel(b model.Booking, passengers []model.Passenger) {
	r.PNR = b.PNR
	r.FlightID = b.FlightID
	r.SeatClass = b.SeatClass
	r.SeatCount = b.SeatCount
	r.PricePerSeat = b.PricePerSeat
	r.TotalPrice = b.TotalPrice
	r.Status = b.Status
	r.PaymentStatus = b.PaymentStatus
	r.ExpiresAt = b.ExpiresAt
	r.CreatedAt = b.CreatedAt

	r.Passengers = make([]PassengerResponse, 0, len(passengers))
	for _, p := range passengers {
		r.Passengers = append(r.Passengers, PassengerResponse{
			FullName: p.FullName,
			Age:      p.Age,
		})
	}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		var item BookingResponse
		item.FromModel(b, nil)
		r.Bookings = append(r.Bookings, item)
	}
	r.Total = len(r.Bookings)
}

// RefundSummary is what a cancellation returns. Amount is zero when the
// booking was never paid.
type RefundSummary struct {
	PNR      string              `json:"pnr"`
	Status   model.BookingStatus `json:"status"`
	Refunded bool                `json:"refunded"`
	Amount   float64             `json:"amount"`
}
