package airlineapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"skyfare/config"
	"skyfare/infras/otel"
	"skyfare/shared/constant"

	"github.com/rs/zerolog/log"
)

// Schedule is one itinerary as an upstream airline system would return it.
type Schedule struct {
	FlightNumber    string    `json:"flight_number"`
	AirlineCode     string    `json:"airline_code"`
	OriginCode      string    `json:"origin_code"`
	DestinationCode string    `json:"destination_code"`
	DepartureTime   time.Time `json:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time"`
	Fare            float64   `json:"fare"`
	SeatsLeft       int       `json:"seats_left"`
}

// LiveFare is the carrier's own current quote for a flight. It is informational
// only and never feeds the fare engine or the ledger.
type LiveFare struct {
	FlightNumber string    `json:"flight_number"`
	Fare         float64   `json:"fare"`
	Currency     string    `json:"currency"`
	SeatsLeft    int       `json:"seats_left"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Client is the upstream airline schedule feed. The real integration is
// simulated: responses carry artificial latency and an occasional transient
// failure, which is what the retry behavior upstream of this package is
// exercised against.
type Client interface {
	SearchSchedules(ctx context.Context, origin, destination string, date time.Time) ([]Schedule, error)
	RealTimePricing(ctx context.Context, flightNumber string) (LiveFare, error)
}

type clientImpl struct {
	cfg  *config.Config
	otel otel.Otel

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*clientImpl)

// WithRand fixes the simulated latency, failures and fares for tests.
func WithRand(rng *rand.Rand) Option {
	return func(c *clientImpl) {
		c.rng = rng
	}
}

func New(cfg *config.Config, otel otel.Otel, opts ...Option) Client {
	c := &clientImpl{
		cfg:  cfg,
		otel: otel,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var airlines = []string{"AI", "6E", "UK", "SG", "I5", "G8"}

func (c *clientImpl) SearchSchedules(ctx context.Context, origin, destination string, date time.Time) (res []Schedule, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".airlineapi.SearchSchedules")
	defer scope.End()
	defer scope.TraceIfError(err)

	c.mu.Lock()
	latency := time.Duration(c.rng.Intn(c.cfg.External.AirlineAPI.LatencyMs+1)) * time.Millisecond
	failed := c.rng.Float64() < c.cfg.External.AirlineAPI.FailureRate
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err() // nolint:wrapcheck
	case <-time.After(latency):
	}

	if failed {
		log.Warn().Str("origin", origin).Str("destination", destination).Msg("[AirlineAPI] upstream returned an error")

		return nil, fmt.Errorf("airline api unavailable")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	count := c.cfg.External.AirlineAPI.MinSchedules
	if spread := c.cfg.External.AirlineAPI.MaxSchedules - c.cfg.External.AirlineAPI.MinSchedules; spread > 0 {
		count += c.rng.Intn(spread + 1)
	}

	res = make([]Schedule, 0, count)

	for i := 0; i < count; i++ {
		airline := airlines[c.rng.Intn(len(airlines))]
		departure := time.Date(date.Year(), date.Month(), date.Day(), 5+c.rng.Intn(18), 5*c.rng.Intn(12), 0, 0, date.Location())
		duration := time.Duration(60+c.rng.Intn(180)) * time.Minute

		res = append(res, Schedule{
			FlightNumber:    fmt.Sprintf("%s%d", airline, 100+c.rng.Intn(900)),
			AirlineCode:     airline,
			OriginCode:      origin,
			DestinationCode: destination,
			DepartureTime:   departure,
			ArrivalTime:     departure.Add(duration),
			Fare:            float64(2500 + c.rng.Intn(9500)),
			SeatsLeft:       1 + c.rng.Intn(60),
		})
	}

	return res, nil
}

func (c *clientImpl) RealTimePricing(ctx context.Context, flightNumber string) (res LiveFare, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".airlineapi.RealTimePricing")
	defer scope.End()
	defer scope.TraceIfError(err)

	c.mu.Lock()
	latency := time.Duration(c.rng.Intn(c.cfg.External.AirlineAPI.LatencyMs+1)) * time.Millisecond
	failed := c.rng.Float64() < c.cfg.External.AirlineAPI.FailureRate
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return LiveFare{}, ctx.Err() // nolint:wrapcheck
	case <-time.After(latency):
	}

	if failed {
		log.Warn().Str("flight_number", flightNumber).Msg("[AirlineAPI] upstream returned an error")

		return LiveFare{}, fmt.Errorf("airline api unavailable")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return LiveFare{
		FlightNumber: flightNumber,
		Fare:         float64(2500 + c.rng.Intn(9500)),
		Currency:     "INR",
		SeatsLeft:    1 + c.rng.Intn(60),
		FetchedAt:    time.Now(),
	}, nil
}
