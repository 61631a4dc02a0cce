package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"skyfare/infras/otel"
	"skyfare/infras/postgres"
	"skyfare/internal/domains/flight/model"
	gDto "skyfare/shared/dto"
	gRepo "skyfare/shared/repository"
)

type Flight interface {
	Get(ctx context.Context, id int64) (model.Flight, error)
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]model.Flight, error)
	ListScheduledWithin(ctx context.Context, from, until time.Time) ([]model.Flight, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Flight]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Flight {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Flight](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Get returns the flight with the given id, or the zero value when no such
// row exists.
func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Flight, error) {
	return r.Repository.Get(ctx, gDto.FilterGroup{ // nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
		},
	})
}

func (r *repositoryImpl) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]model.Flight, error) {
	return r.GetAll(ctx, // nolint:wrapcheck
		gDto.QueryParams{Limit: limit, SortBy: model.FieldDepartureTime, SortDir: gDto.SortDirAsc},
		scheduledBetween(now, time.Time{}),
	)
}

func (r *repositoryImpl) ListScheduledWithin(ctx context.Context, from, until time.Time) ([]model.Flight, error) {
	return r.GetAll(ctx, // nolint:wrapcheck
		gDto.QueryParams{SortBy: model.FieldDepartureTime, SortDir: gDto.SortDirAsc},
		scheduledBetween(from, until),
	)
}

// scheduledBetween filters to scheduled flights departing at or after from,
// and, when until is set, at or before until.
func scheduledBetween(from, until time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusScheduled), Operator: gDto.FilterOperatorEq},
		gDto.Filter{ArgName: "departure_from", Field: model.FieldDepartureTime, Value: from, Operator: gDto.FilterOperatorGreaterEq},
	}

	if !until.IsZero() {
		filters = append(filters, gDto.Filter{ArgName: "departure_until", Field: model.FieldDepartureTime, Value: until, Operator: gDto.FilterOperatorLessEq})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}
