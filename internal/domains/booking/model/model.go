package model

import "time"

const (
	TableName          = "bookings"
	PassengerTableName = "passengers"
	PaymentTableName   = "payment_transactions"
	EntityName         = "booking"

	FieldID     = "id"
	FieldPNR    = "pnr"
	FieldStatus = "status"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type TransactionType string

const (
	TransactionPayment TransactionType = "payment"
	TransactionRefund  TransactionType = "refund"
)

// Booking is a seat hold moving through pending -> confirmed or
// pending -> cancelled. Pending bookings always carry an expiry; the terminal
// states never do.
type Booking struct {
	ID            int64         `db:"id" json:"id"`
	PNR           string        `db:"pnr" json:"pnr"`
	UserID        string        `db:"user_id" json:"user_id"`
	FlightID      int64         `db:"flight_id" json:"flight_id"`
	SeatClass     string        `db:"seat_class" json:"seat_class"`
	SeatCount     int           `db:"seat_count" json:"seat_count"`
	PricePerSeat  float64       `db:"price_per_seat" json:"price_per_seat"`
	TotalPrice    float64       `db:"total_price" json:"total_price"`
	Status        BookingStatus `db:"status" json:"status"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"payment_status"`
	ExpiresAt     *time.Time    `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// ExpiredAt reports whether the payment window has lapsed. Only meaningful
// for pending bookings; terminal states carry no expiry.
func (b Booking) ExpiredAt(now time.Time) bool {
	return b.Status == StatusPending && b.ExpiresAt != nil && now.After(*b.ExpiresAt)
}

type Passenger struct {
	ID        int64     `db:"id" json:"id"`
	BookingID int64     `db:"booking_id" json:"booking_id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Age       int       `db:"age" json:"age"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PaymentTransaction is an append-only ledger entry written once per
// successful payment or refund. Rows are never updated or deleted.
type PaymentTransaction struct {
	ID        int64           `db:"id" json:"id"`
	BookingID int64           `db:"booking_id" json:"booking_id"`
	Reference string          `db:"reference" json:"reference"`
	Type      TransactionType `db:"type" json:"type"`
	Amount    float64         `db:"amount" json:"amount"`
	Method    string          `db:"method" json:"method"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
