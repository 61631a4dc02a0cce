package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyfare/infras/otel"
	"skyfare/infras/postgres"
	"skyfare/internal/domains/history/model"
	"skyfare/shared/constant"

	"github.com/jmoiron/sqlx"
)

const (
	selectColumns = `id, flight_id, seat_class, price, base_fare, seats_available, days_to_departure, recorded_at`
)

type PriceHistory interface {
	AppendTx(ctx context.Context, tx sqlx.ExtContext, point model.PricePoint) error
	ListByFlight(ctx context.Context, flightID int64, seatClass string, limit int) ([]model.PricePoint, error)
	Summarize(ctx context.Context, flightID int64) ([]model.Summary, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PriceHistory {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) AppendTx(ctx context.Context, tx sqlx.ExtContext, point model.PricePoint) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.AppendTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`INSERT INTO %s
		(flight_id, seat_class, price, base_fare, seats_available, days_to_departure, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, model.TableName)

	_, err = tx.ExecContext(ctx, query,
		point.FlightID,
		point.SeatClass,
		point.Price,
		point.BaseFare,
		point.SeatsAvailable,
		point.DaysToDeparture,
		point.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append price point: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ListByFlight(ctx context.Context, flightID int64, seatClass string, limit int) (res []model.PricePoint, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.ListByFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	args := []any{flightID}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE flight_id = $1`, selectColumns, model.TableName)

	if seatClass != "" {
		query += ` AND seat_class = $2`
		args = append(args, seatClass)
	}

	query += fmt.Sprintf(` ORDER BY recorded_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	err = r.db.Read.SelectContext(ctx, &res, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list price history: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Summarize(ctx context.Context, flightID int64) (res []model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.Summarize")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT
			flight_id,
			seat_class,
			COUNT(*) AS samples,
			MIN(price) AS min_price,
			ROUND(AVG(price)::numeric, 2) AS avg_price,
			MAX(price) AS max_price
		FROM %s
		WHERE flight_id = $1
		GROUP BY flight_id, seat_class
		ORDER BY seat_class`, model.TableName)

	err = r.db.Read.SelectContext(ctx, &res, query, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize price history: %w", err)
	}

	return res, nil
}
