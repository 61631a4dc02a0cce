package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"skyfare/infras/otel"
	"skyfare/internal/domains/inventory/model"
	"skyfare/internal/domains/inventory/repository"
	"skyfare/shared/constant"
	"skyfare/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxRunner runs fn inside a database transaction, committing on nil and
// rolling back otherwise.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Ledger is the single authority over seat counts. Every reservation and
// release goes through it so availability never drifts below zero or above
// capacity, no matter how many bookings race.
type Ledger interface {
	Get(ctx context.Context, flightID int64, class model.SeatClass) (model.SeatInventory, error)
	ListByFlight(ctx context.Context, flightID int64) ([]model.SeatInventory, error)
	Reserve(ctx context.Context, flightID int64, class model.SeatClass, seats int) (model.SeatInventory, error)
	Release(ctx context.Context, flightID int64, class model.SeatClass, seats int) error
	ReserveTx(ctx context.Context, tx *sqlx.Tx, flightID int64, class model.SeatClass, seats int) (model.SeatInventory, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, flightID int64, class model.SeatClass, seats int) error
	SnapshotTx(ctx context.Context, tx *sqlx.Tx, flightID int64, class model.SeatClass) (model.SeatInventory, error)
	Lock(flightID int64, class model.SeatClass) func()
}

type ledgerImpl struct {
	repo repository.SeatInventory
	tx   TxRunner
	otel otel.Otel

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(repo repository.SeatInventory, tx TxRunner, otel otel.Otel) Ledger {
	return &ledgerImpl{
		repo:  repo,
		tx:    tx,
		otel:  otel,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *ledgerImpl) Get(ctx context.Context, flightID int64, class model.SeatClass) (res model.SeatInventory, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, flightID, class)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Str("seat_class", string(class)).Msg("[Ledger] failed to get inventory")
		return model.SeatInventory{}, fmt.Errorf("failed to get inventory: %w", err)
	}

	if res.ID == 0 {
		// nolint:wrapcheck
		return model.SeatInventory{}, failure.NotFound(model.EntityName)
	}

	return res, nil
}

func (s *ledgerImpl) ListByFlight(ctx context.Context, flightID int64) (res []model.SeatInventory, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.ListByFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.ListByFlight(ctx, flightID)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Msg("[Ledger] failed to list inventory")
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	return res, nil
}

// Reserve takes seats in its own transaction. Callers that already hold a
// transaction (booking creation, market ticks) use ReserveTx instead.
func (s *ledgerImpl) Reserve(ctx context.Context, flightID int64, class model.SeatClass, seats int) (res model.SeatInventory, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock := s.Lock(flightID, class)
	defer unlock()

	err = s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		res, err = s.ReserveTx(ctx, tx, flightID, class, seats)
		return err
	})
	if err != nil {
		// nolint:wrapcheck
		return model.SeatInventory{}, err
	}

	return res, nil
}

func (s *ledgerImpl) Release(ctx context.Context, flightID int64, class model.SeatClass, seats int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock := s.Lock(flightID, class)
	defer unlock()

	// nolint:wrapcheck
	return s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		return s.ReleaseTx(ctx, tx, flightID, class, seats)
	})
}

// ReserveTx decrements availability inside the caller's transaction and
// returns the snapshot as it stood before the decrement. Quotes are priced
// off that snapshot, so the fare a passenger pays reflects the scarcity they
// booked into, not the one they created.
func (s *ledgerImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, flightID int64, class model.SeatClass, seats int) (res model.SeatInventory, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.ReserveTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	if seats <= 0 {
		// nolint:wrapcheck
		return model.SeatInventory{}, failure.BadRequest(fmt.Errorf("seat count must be positive"))
	}

	inv, err := s.repo.GetForUpdate(ctx, tx, flightID, class)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Str("seat_class", string(class)).Msg("[Ledger] failed to lock inventory")
		return model.SeatInventory{}, fmt.Errorf("failed to lock inventory: %w", err)
	}

	if inv.ID == 0 {
		// nolint:wrapcheck
		return model.SeatInventory{}, failure.NotFound(model.EntityName)
	}

	if inv.AvailableSeats < seats {
		// nolint:wrapcheck
		return model.SeatInventory{}, failure.Conflict(
			fmt.Sprintf("only %d %s seats left", inv.AvailableSeats, class))
	}

	err = s.repo.SetAvailable(ctx, tx, inv.ID, inv.AvailableSeats-seats)
	if err != nil {
		log.Error().Err(err).Int64("inventory_id", inv.ID).Msg("[Ledger] failed to reserve seats")
		return model.SeatInventory{}, fmt.Errorf("failed to reserve seats: %w", err)
	}

	return inv, nil
}

// ReleaseTx gives seats back inside the caller's transaction. Availability is
// capped at capacity, so double releases degrade to a no-op rather than
// overselling on the next reservation.
func (s *ledgerImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, flightID int64, class model.SeatClass, seats int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.ReleaseTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	if seats <= 0 {
		// nolint:wrapcheck
		return failure.BadRequest(fmt.Errorf("seat count must be positive"))
	}

	err = s.repo.ReleaseCapped(ctx, tx, flightID, class, seats)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Str("seat_class", string(class)).Msg("[Ledger] failed to release seats")
		return fmt.Errorf("failed to release seats: %w", err)
	}

	return nil
}

// SnapshotTx locks the row for the rest of the caller's transaction and
// returns it as it stands. Callers that decide on reserve versus release
// after looking at availability use this to pin the row first.
func (s *ledgerImpl) SnapshotTx(ctx context.Context, tx *sqlx.Tx, flightID int64, class model.SeatClass) (res model.SeatInventory, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.SnapshotTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetForUpdate(ctx, tx, flightID, class)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Str("seat_class", string(class)).Msg("[Ledger] failed to lock inventory")
		return model.SeatInventory{}, fmt.Errorf("failed to lock inventory: %w", err)
	}

	if res.ID == 0 {
		// nolint:wrapcheck
		return model.SeatInventory{}, failure.NotFound(model.EntityName)
	}

	return res, nil
}

// Lock serializes in-process writers on one (flight, class) pair and returns
// the matching unlock. The row-level FOR UPDATE lock protects against other
// processes; this keeps local goroutines from piling up on the database.
func (s *ledgerImpl) Lock(flightID int64, class model.SeatClass) func() {
	key := fmt.Sprintf("%d:%s", flightID, class)

	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
