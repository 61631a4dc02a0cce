package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"skyfare/infras/otel"
	"skyfare/infras/postgres"
	"skyfare/internal/domains/booking/model"
	"skyfare/shared/constant"

	"github.com/jmoiron/sqlx"
)

const (
	selectColumns = `id, pnr, user_id, flight_id, seat_class, seat_count, price_per_seat,
		total_price, status, payment_status, expires_at, created_at, updated_at`
)

type Booking interface {
	InsertTx(ctx context.Context, tx sqlx.ExtContext, booking model.Booking) (int64, error)
	InsertPassengersTx(ctx context.Context, tx sqlx.ExtContext, bookingID int64, passengers []model.Passenger) error
	InsertPaymentTx(ctx context.Context, tx sqlx.ExtContext, txn model.PaymentTransaction) error
	GetByPNR(ctx context.Context, pnr string) (model.Booking, error)
	ExistsPNR(ctx context.Context, pnr string) (bool, error)
	ListPassengers(ctx context.Context, bookingID int64) ([]model.Passenger, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]model.Booking, error)
	TransitionTx(ctx context.Context, tx sqlx.ExtContext, pnr string, from, to model.BookingStatus, payment model.PaymentStatus) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx sqlx.ExtContext, booking model.Booking) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`INSERT INTO %s
		(pnr, user_id, flight_id, seat_class, seat_count, price_per_seat, total_price,
		 status, payment_status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id`, model.TableName)

	err = tx.QueryRowxContext(ctx, query,
		booking.PNR,
		booking.UserID,
		booking.FlightID,
		booking.SeatClass,
		booking.SeatCount,
		booking.PricePerSeat,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.ExpiresAt,
		booking.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert booking: %w", err)
	}

	return id, nil
}

func (r *repositoryImpl) InsertPassengersTx(ctx context.Context, tx sqlx.ExtContext, bookingID int64, passengers []model.Passenger) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertPassengersTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`INSERT INTO %s (booking_id, full_name, age, created_at)
		VALUES ($1, $2, $3, NOW())`, model.PassengerTableName)

	for _, p := range passengers {
		_, err = tx.ExecContext(ctx, query, bookingID, p.FullName, p.Age)
		if err != nil {
			return fmt.Errorf("failed to insert passenger: %w", err)
		}
	}

	return nil
}

func (r *repositoryImpl) InsertPaymentTx(ctx context.Context, tx sqlx.ExtContext, txn model.PaymentTransaction) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertPaymentTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`INSERT INTO %s (booking_id, reference, type, amount, method, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`, model.PaymentTableName)

	_, err = tx.ExecContext(ctx, query, txn.BookingID, txn.Reference, txn.Type, txn.Amount, txn.Method)
	if err != nil {
		return fmt.Errorf("failed to insert payment transaction: %w", err)
	}

	return nil
}

// GetByPNR returns the booking with the given record locator, or the zero
// value when none exists. It reads from the write connection so lifecycle
// decisions never act on a stale replica row.
func (r *repositoryImpl) GetByPNR(ctx context.Context, pnr string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByPNR")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE pnr = $1`, selectColumns, model.TableName)

	err = r.db.Write.GetContext(ctx, &res, query, pnr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ExistsPNR(ctx context.Context, pnr string) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistsPNR")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE pnr = $1)`, model.TableName)

	err = r.db.Write.GetContext(ctx, &exists, query, pnr)
	if err != nil {
		return false, fmt.Errorf("failed to check pnr: %w", err)
	}

	return exists, nil
}

func (r *repositoryImpl) ListPassengers(ctx context.Context, bookingID int64) (res []model.Passenger, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListPassengers")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT id, booking_id, full_name, age, created_at FROM %s
		WHERE booking_id = $1 ORDER BY id`, model.PassengerTableName)

	err = r.db.Read.SelectContext(ctx, &res, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ListByUser(ctx context.Context, userID string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at DESC`, selectColumns, model.TableName)

	err = r.db.Read.SelectContext(ctx, &res, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ListExpiredPending(ctx context.Context, now time.Time, limit int) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListExpiredPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE status = $1 AND expires_at IS NOT NULL AND expires_at <= $2
		ORDER BY expires_at
		LIMIT $3`, selectColumns, model.TableName)

	err = r.db.Write.SelectContext(ctx, &res, query, model.StatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired bookings: %w", err)
	}

	return res, nil
}

// TransitionTx flips status and payment status in one guarded statement. The
// WHERE clause on the expected current status makes it the serialization
// point for the whole lifecycle: of two racing transitions exactly one
// matches the guard, and the loser sees false. Expiry is always cleared since
// both terminal states and confirmed carry none.
func (r *repositoryImpl) TransitionTx(ctx context.Context, tx sqlx.ExtContext, pnr string, from, to model.BookingStatus, payment model.PaymentStatus) (changed bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`UPDATE %s
		SET status = $1, payment_status = $2, expires_at = NULL, updated_at = NOW()
		WHERE pnr = $3 AND status = $4`, model.TableName)

	result, err := tx.ExecContext(ctx, query, to, payment, pnr, from)
	if err != nil {
		return false, fmt.Errorf("failed to transition booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}
