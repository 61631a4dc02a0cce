package market_test

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"skyfare/config"
	otelMocks "skyfare/infras/otel/mocks"
	flightMocks "skyfare/internal/domains/flight/mocks"
	flightModel "skyfare/internal/domains/flight/model"
	historyMocks "skyfare/internal/domains/history/mocks"
	historyModel "skyfare/internal/domains/history/model"
	invMocks "skyfare/internal/domains/inventory/mocks"
	invModel "skyfare/internal/domains/inventory/model"
	"skyfare/internal/domains/market"
	marketMocks "skyfare/internal/domains/market/mocks"
	"skyfare/internal/domains/pricing"
	"skyfare/shared/failure"
	"skyfare/shared/timezone"
)

// Raw Int63 draws chosen so Float64 and Intn land exactly where each case
// needs them.
const (
	drawActive = int64(2) << 32             // Float64 ~0.0, Intn(3) = 2
	drawIdle   = int64(3689348814741910323) // Float64 ~0.40
	drawCancel = int64(6456360425798343065) // Float64 ~0.70
	drawOne    = int64(1) << 32             // Intn(2) = 1
)

// marketSource replays a fixed cycle of raw draws.
type marketSource struct {
	values []int64
	pos    int
}

func (s *marketSource) Int63() int64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++

	return v
}

func (s *marketSource) Seed(int64) {}

type schedulerFixture struct {
	flights *flightMocks.MockFlight
	ledger  *invMocks.MockLedger
	history *historyMocks.MockPriceHistory
	sweeper *marketMocks.MockSweeper
	tx      *marketMocks.MockTxRunner
	cfg     *config.Config
	sched   *market.Scheduler
}

func newSchedulerFixture(t *testing.T, ctrl *gomock.Controller, src rand.Source) *schedulerFixture {
	t.Helper()

	f := &schedulerFixture{
		flights: flightMocks.NewMockFlight(ctrl),
		ledger:  invMocks.NewMockLedger(ctrl),
		history: historyMocks.NewMockPriceHistory(ctrl),
		sweeper: marketMocks.NewMockSweeper(ctrl),
		tx:      marketMocks.NewMockTxRunner(ctrl),
		cfg:     &config.Config{},
	}

	f.cfg.Market.IntervalSeconds = 300
	f.cfg.Market.BackoffSeconds = 60
	f.cfg.Market.HorizonDays = 60
	f.cfg.Market.MinFlightsPerTick = 1
	f.cfg.Market.MaxFlightsPerTick = 1

	f.sched = market.New(
		f.flights, f.ledger, f.history,
		pricing.NewWithSource(rand.NewSource(42)),
		f.sweeper, f.tx, f.cfg, otelMocks.NewOtel(),
		market.WithRand(rand.New(src)),
	)

	return f
}

func (f *schedulerFixture) expectTxPassthrough() {
	f.tx.EXPECT().
		RunTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
}

func (f *schedulerFixture) expectQuietMarket() {
	f.flights.EXPECT().
		ListScheduledWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	f.tx.EXPECT().
		RunTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
	f.sweeper.EXPECT().
		SweepExpired(gomock.Any(), gomock.Any()).
		Return(0, nil).
		AnyTimes()
}

// upcomingFlight departs a hair over the given number of days from now, so
// whole-day math stays stable for the duration of a test run.
func upcomingFlight(days int) flightModel.Flight {
	return flightModel.Flight{
		ID:              3,
		AirlineCode:     "6E",
		OriginCode:      "BOM",
		DestinationCode: "GOI",
		DepartureTime:   timezone.Now().AddDate(0, 0, days).Add(time.Hour),
		BaseFare:        4000,
		Status:          flightModel.StatusScheduled,
	}
}

func TestScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, rand.NewSource(42))
	f.expectQuietMarket()

	require.NoError(t, f.sched.Start(time.Hour))

	status := f.sched.Status()
	assert.True(t, status.IsRunning)
	assert.Equal(t, 3600, status.IntervalSeconds)

	err := f.sched.Start(time.Hour)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	require.NoError(t, f.sched.Stop())

	status = f.sched.Status()
	assert.False(t, status.IsRunning)
	assert.Zero(t, status.IntervalSeconds)

	err = f.sched.Stop()
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestScheduler_StartUsesConfiguredDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, rand.NewSource(42))
	f.expectQuietMarket()

	require.NoError(t, f.sched.Start(0))
	defer func() { _ = f.sched.Stop() }()

	assert.Equal(t, 300, f.sched.Status().IntervalSeconds)
}

// Every cabin draws activity, books 3 seats where it can, and the whole round
// shares one transaction. The business cabin only has 2 seats left, so its
// booking clamps to availability instead of skipping.
func TestScheduler_Tick_BooksWithinAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, &marketSource{values: []int64{drawActive}})

	flight := upcomingFlight(3)

	f.flights.EXPECT().
		ListScheduledWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]flightModel.Flight{flight}, nil)

	f.tx.EXPECT().
		RunTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		Times(1)

	f.ledger.EXPECT().
		ListByFlight(gomock.Any(), int64(3)).
		Return([]invModel.SeatInventory{
			{ID: 1, FlightID: 3, SeatClass: invModel.ClassEconomy, TotalSeats: 180, AvailableSeats: 120},
			{ID: 2, FlightID: 3, SeatClass: invModel.ClassBusiness, TotalSeats: 24, AvailableSeats: 2},
			{ID: 3, FlightID: 3, SeatClass: invModel.ClassFirst, TotalSeats: 8, AvailableSeats: 8},
		}, nil)

	f.ledger.EXPECT().Lock(int64(3), gomock.Any()).Return(func() {}).Times(3)

	f.ledger.EXPECT().
		SnapshotTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ int64, class invModel.SeatClass) (invModel.SeatInventory, error) {
			switch class {
			case invModel.ClassEconomy:
				return invModel.SeatInventory{ID: 1, TotalSeats: 180, AvailableSeats: 120, SeatClass: class}, nil
			case invModel.ClassBusiness:
				return invModel.SeatInventory{ID: 2, TotalSeats: 24, AvailableSeats: 2, SeatClass: class}, nil
			default:
				return invModel.SeatInventory{ID: 3, TotalSeats: 8, AvailableSeats: 8, SeatClass: class}, nil
			}
		}).
		Times(3)

	wantReserved := map[invModel.SeatClass]int{
		invModel.ClassEconomy:  3,
		invModel.ClassBusiness: 2,
		invModel.ClassFirst:    3,
	}
	wantLeft := map[invModel.SeatClass]int{
		invModel.ClassEconomy:  117,
		invModel.ClassBusiness: 0,
		invModel.ClassFirst:    5,
	}

	f.ledger.EXPECT().
		ReserveTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ int64, class invModel.SeatClass, seats int) (invModel.SeatInventory, error) {
			assert.Equal(t, wantReserved[class], seats)

			return invModel.SeatInventory{}, nil
		}).
		Times(3)

	f.history.EXPECT().
		AppendTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, point historyModel.PricePoint) error {
			assert.Equal(t, int64(3), point.FlightID)
			assert.Greater(t, point.Price, 0.0)
			assert.Equal(t, 3, point.DaysToDeparture)
			assert.Equal(t, wantLeft[invModel.SeatClass(point.SeatClass)], point.SeatsAvailable)

			return nil
		}).
		Times(3)

	f.sweeper.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(2, nil)

	assert.NoError(t, f.sched.Tick(context.Background()))
}

// A flight 45 days out carries 0.3 activity odds for every cabin; a 0.40 draw
// leaves all of them untouched, price history included.
func TestScheduler_Tick_QuietWhenDepartureFarOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, &marketSource{values: []int64{drawIdle}})
	f.expectTxPassthrough()

	flight := upcomingFlight(45)

	f.flights.EXPECT().
		ListScheduledWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]flightModel.Flight{flight}, nil)

	f.ledger.EXPECT().
		ListByFlight(gomock.Any(), int64(3)).
		Return([]invModel.SeatInventory{
			{ID: 1, FlightID: 3, SeatClass: invModel.ClassEconomy, TotalSeats: 180, AvailableSeats: 120},
			{ID: 2, FlightID: 3, SeatClass: invModel.ClassBusiness, TotalSeats: 24, AvailableSeats: 20},
			{ID: 3, FlightID: 3, SeatClass: invModel.ClassFirst, TotalSeats: 8, AvailableSeats: 8},
		}, nil)

	f.sweeper.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(0, nil)

	assert.NoError(t, f.sched.Tick(context.Background()))
}

// A cancellation draw of 2 seats against a cabin with a single seat sold
// releases just that seat.
func TestScheduler_Tick_CancellationRestoresSeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, &marketSource{values: []int64{drawActive, drawCancel, drawOne}})
	f.expectTxPassthrough()

	flight := upcomingFlight(3)

	f.flights.EXPECT().
		ListScheduledWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]flightModel.Flight{flight}, nil)

	f.ledger.EXPECT().
		ListByFlight(gomock.Any(), int64(3)).
		Return([]invModel.SeatInventory{
			{ID: 1, FlightID: 3, SeatClass: invModel.ClassEconomy, TotalSeats: 180, AvailableSeats: 179},
		}, nil)

	f.ledger.EXPECT().Lock(int64(3), invModel.ClassEconomy).Return(func() {})

	f.ledger.EXPECT().
		SnapshotTx(gomock.Any(), gomock.Any(), int64(3), invModel.ClassEconomy).
		Return(invModel.SeatInventory{ID: 1, TotalSeats: 180, AvailableSeats: 179, SeatClass: invModel.ClassEconomy}, nil)

	f.ledger.EXPECT().
		ReleaseTx(gomock.Any(), gomock.Any(), int64(3), invModel.ClassEconomy, 1).
		Return(nil)

	f.history.EXPECT().
		AppendTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, point historyModel.PricePoint) error {
			assert.Equal(t, 180, point.SeatsAvailable)

			return nil
		})

	f.sweeper.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(0, nil)

	assert.NoError(t, f.sched.Tick(context.Background()))
}

// A failure mid-round surfaces through the shared transaction and the sweep
// never runs.
func TestScheduler_Tick_RollsBackRoundOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, &marketSource{values: []int64{drawActive}})
	f.expectTxPassthrough()

	flight := upcomingFlight(3)

	f.flights.EXPECT().
		ListScheduledWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]flightModel.Flight{flight}, nil)

	f.ledger.EXPECT().
		ListByFlight(gomock.Any(), int64(3)).
		Return([]invModel.SeatInventory{
			{ID: 1, FlightID: 3, SeatClass: invModel.ClassEconomy, TotalSeats: 180, AvailableSeats: 120},
		}, nil)

	f.ledger.EXPECT().Lock(int64(3), invModel.ClassEconomy).Return(func() {})

	f.ledger.EXPECT().
		SnapshotTx(gomock.Any(), gomock.Any(), int64(3), invModel.ClassEconomy).
		Return(invModel.SeatInventory{}, errors.New("database error"))

	assert.Error(t, f.sched.Tick(context.Background()))
}

func TestScheduler_TickPropagatesListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(t, ctrl, rand.NewSource(42))

	f.flights.EXPECT().
		ListScheduledWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	assert.Error(t, f.sched.Tick(context.Background()))
}
