package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skyfare/infras/otel"
	"skyfare/infras/postgres"
	"skyfare/internal/domains/inventory/model"
	"skyfare/shared/constant"

	"github.com/jmoiron/sqlx"
)

const (
	selectColumns = `id, flight_id, seat_class, total_seats, available_seats, updated_at`
)

type SeatInventory interface {
	Get(ctx context.Context, flightID int64, class model.SeatClass) (model.SeatInventory, error)
	ListByFlight(ctx context.Context, flightID int64) ([]model.SeatInventory, error)
	GetForUpdate(ctx context.Context, tx sqlx.ExtContext, flightID int64, class model.SeatClass) (model.SeatInventory, error)
	SetAvailable(ctx context.Context, tx sqlx.ExtContext, id int64, available int) error
	ReleaseCapped(ctx context.Context, tx sqlx.ExtContext, flightID int64, class model.SeatClass, seats int) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) SeatInventory {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Get returns the inventory row for the pair, or the zero value when the
// flight does not carry the class.
func (r *repositoryImpl) Get(ctx context.Context, flightID int64, class model.SeatClass) (res model.SeatInventory, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE flight_id = $1 AND seat_class = $2`, selectColumns, model.TableName)

	err = r.db.Read.GetContext(ctx, &res, query, flightID, class)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SeatInventory{}, nil
	}

	if err != nil {
		return model.SeatInventory{}, fmt.Errorf("failed to get seat inventory: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ListByFlight(ctx context.Context, flightID int64) (res []model.SeatInventory, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.ListByFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE flight_id = $1 ORDER BY seat_class`, selectColumns, model.TableName)

	err = r.db.Read.SelectContext(ctx, &res, query, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seat inventory: %w", err)
	}

	return res, nil
}

// GetForUpdate locks the inventory row for the remainder of the enclosing
// transaction. It must run on the write connection.
func (r *repositoryImpl) GetForUpdate(ctx context.Context, tx sqlx.ExtContext, flightID int64, class model.SeatClass) (res model.SeatInventory, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.GetForUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE flight_id = $1 AND seat_class = $2 FOR UPDATE`, selectColumns, model.TableName)

	err = sqlx.GetContext(ctx, tx, &res, query, flightID, class)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SeatInventory{}, nil
	}

	if err != nil {
		return model.SeatInventory{}, fmt.Errorf("failed to lock seat inventory: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) SetAvailable(ctx context.Context, tx sqlx.ExtContext, id int64, available int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.SetAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`UPDATE %s SET available_seats = $1, updated_at = NOW() WHERE id = $2`, model.TableName)

	_, err = tx.ExecContext(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("failed to update seat inventory: %w", err)
	}

	return nil
}

// ReleaseCapped gives seats back without ever exceeding the cabin capacity.
func (r *repositoryImpl) ReleaseCapped(ctx context.Context, tx sqlx.ExtContext, flightID int64, class model.SeatClass, seats int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.ReleaseCapped")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`UPDATE %s
		SET available_seats = LEAST(total_seats, available_seats + $1), updated_at = NOW()
		WHERE flight_id = $2 AND seat_class = $3`, model.TableName)

	_, err = tx.ExecContext(ctx, query, seats, flightID, class)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}

	return nil
}
