package market

//go:generate go run go.uber.org/mock/mockgen -source=./scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"skyfare/config"
	"skyfare/infras/otel"
	flightModel "skyfare/internal/domains/flight/model"
	flightRepo "skyfare/internal/domains/flight/repository"
	historyModel "skyfare/internal/domains/history/model"
	historyRepo "skyfare/internal/domains/history/repository"
	invModel "skyfare/internal/domains/inventory/model"
	invService "skyfare/internal/domains/inventory/service"
	"skyfare/internal/domains/pricing"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Sweeper is the slice of the booking lifecycle the scheduler drives: lapsed
// holds are cancelled after every tick.
type Sweeper interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// TxRunner runs fn inside a database transaction, committing on nil and
// rolling back otherwise.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Status struct {
	IsRunning       bool `json:"is_running"`
	IntervalSeconds int  `json:"interval_seconds"`
}

// activityOdds is the per-tick probability that a cabin sees simulated
// market activity. Demand concentrates close to departure.
func activityOdds(daysToDeparture int) float64 {
	switch {
	case daysToDeparture <= 7:
		return 0.7
	case daysToDeparture <= 30:
		return 0.5
	default:
		return 0.3
	}
}

// Scheduler drives the simulated market: on every tick it perturbs seat
// availability on a random sample of upcoming flights, records the resulting
// quotes into price history, and sweeps expired holds. One scheduler runs per
// process; Start and Stop guard against double activation.
type Scheduler struct {
	flights flightRepo.Flight
	ledger  invService.Ledger
	history historyRepo.PriceHistory
	pricer  *pricing.Engine
	sweeper Sweeper
	tx      TxRunner
	cfg     *config.Config
	otel    otel.Otel

	mu       sync.Mutex
	running  bool
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	rng      *rand.Rand
}

type Option func(*Scheduler)

// WithRand fixes the simulation randomness for tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scheduler) {
		s.rng = rng
	}
}

func New(
	flights flightRepo.Flight,
	ledger invService.Ledger,
	history historyRepo.PriceHistory,
	pricer *pricing.Engine,
	sweeper Sweeper,
	tx TxRunner,
	cfg *config.Config,
	otel otel.Otel,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		flights: flights,
		ledger:  ledger,
		history: history,
		pricer:  pricer,
		sweeper: sweeper,
		tx:      tx,
		cfg:     cfg,
		otel:    otel,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start launches the tick loop with the given interval; zero falls back to
// the configured default. Fails with a conflict when already running.
func (s *Scheduler) Start(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return failure.Conflict("market scheduler is already running") // nolint:wrapcheck
	}

	if interval <= 0 {
		interval = time.Duration(s.cfg.Market.IntervalSeconds) * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.running = true
	s.interval = interval
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)

	log.Info().Dur("interval", interval).Msg("[Market] scheduler started")

	return nil
}

// Stop cancels the tick loop and waits for an in-flight tick to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()

		return failure.Conflict("market scheduler is not running") // nolint:wrapcheck
	}

	cancel := s.cancel
	done := s.done
	s.running = false
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	<-done

	log.Info().Msg("[Market] scheduler stopped")

	return nil
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{IsRunning: s.running}
	if s.running {
		status.IntervalSeconds = int(s.interval / time.Second)
	}

	return status
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	backoff := time.Duration(s.cfg.Market.BackoffSeconds) * time.Second

	for {
		wait := s.interval

		if err := s.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}

			log.Error().Err(err).Dur("backoff", backoff).Msg("[Market] tick failed, backing off")
			wait = backoff
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// Tick runs one round of market simulation. Exported so operators and tests
// can force a round without waiting out the interval.
func (s *Scheduler) Tick(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".market.Tick")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	horizon := now.AddDate(0, 0, s.cfg.Market.HorizonDays)

	flights, err := s.flights.ListScheduledWithin(ctx, now, horizon)
	if err != nil {
		return err // nolint:wrapcheck
	}

	sampled := s.sample(flights)

	// Every perturbation of the round commits or rolls back as one unit, so a
	// failed round never leaves partial price points or seat movements behind.
	err = s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		for _, flight := range sampled {
			if ctx.Err() != nil {
				return ctx.Err() // nolint:wrapcheck
			}

			if err := s.simulateFlight(ctx, tx, flight, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	swept, err := s.sweeper.SweepExpired(ctx, now)
	if err != nil {
		return err // nolint:wrapcheck
	}

	log.Info().Int("flights", len(flights)).Int("swept", swept).Msg("[Market] tick completed")

	return nil
}

// sample picks a random subset of flights for this tick, between the
// configured minimum and maximum.
func (s *Scheduler) sample(flights []flightModel.Flight) []flightModel.Flight {
	if len(flights) == 0 {
		return nil
	}

	count := s.cfg.Market.MinFlightsPerTick
	if spread := s.cfg.Market.MaxFlightsPerTick - s.cfg.Market.MinFlightsPerTick; spread > 0 {
		count += s.rng.Intn(spread + 1)
	}

	if count >= len(flights) {
		return flights
	}

	picked := make([]flightModel.Flight, len(flights))
	copy(picked, flights)

	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:count]
}

func (s *Scheduler) simulateFlight(ctx context.Context, tx *sqlx.Tx, flight flightModel.Flight, now time.Time) error {
	inventories, err := s.ledger.ListByFlight(ctx, flight.ID)
	if err != nil {
		return err // nolint:wrapcheck
	}

	for _, inv := range inventories {
		if err := s.simulateClass(ctx, tx, flight, inv.SeatClass, now); err != nil {
			return err
		}
	}

	return nil
}

// simulateClass perturbs one (flight, class) pair and records the quote that
// a shopper would see afterwards. Cabins that draw no activity this round are
// left untouched, price history included.
func (s *Scheduler) simulateClass(ctx context.Context, tx *sqlx.Tx, flight flightModel.Flight, class invModel.SeatClass, now time.Time) error {
	days := timezone.DaysUntil(now, flight.DepartureTime)

	if s.rng.Float64() >= activityOdds(days) {
		return nil
	}

	var bookSeats, cancelSeats int

	switch roll := s.rng.Float64(); {
	case roll < 0.6:
		bookSeats = 1 + s.rng.Intn(3)
	case roll < 0.8:
		cancelSeats = 1 + s.rng.Intn(2)
	}

	unlock := s.ledger.Lock(flight.ID, class)
	defer unlock()

	inv, err := s.ledger.SnapshotTx(ctx, tx, flight.ID, class)
	if err != nil {
		return err // nolint:wrapcheck
	}

	available := inv.AvailableSeats

	switch {
	case bookSeats > 0 && available > 0:
		bookSeats = min(bookSeats, available)

		if _, err := s.ledger.ReserveTx(ctx, tx, flight.ID, class, bookSeats); err != nil {
			return err // nolint:wrapcheck
		}

		available -= bookSeats
	case cancelSeats > 0 && available < inv.TotalSeats:
		cancelSeats = min(cancelSeats, inv.TotalSeats-available)

		if err := s.ledger.ReleaseTx(ctx, tx, flight.ID, class, cancelSeats); err != nil {
			return err // nolint:wrapcheck
		}

		available += cancelSeats
	}

	quote := s.pricer.Quote(pricing.QuoteInput{
		BaseFare:        flight.BaseFare,
		SeatsAvailable:  available,
		TotalSeats:      inv.TotalSeats,
		DepartureTime:   flight.DepartureTime,
		OriginCode:      flight.OriginCode,
		DestinationCode: flight.DestinationCode,
		AirlineCode:     flight.AirlineCode,
		SeatClass:       string(class),
		Now:             now,
	})

	// nolint:wrapcheck
	return s.history.AppendTx(ctx, tx, historyModel.PricePoint{
		FlightID:        flight.ID,
		SeatClass:       string(class),
		Price:           quote.FinalPrice,
		BaseFare:        flight.BaseFare,
		SeatsAvailable:  available,
		DaysToDeparture: max(0, days),
		RecordedAt:      now,
	})
}
