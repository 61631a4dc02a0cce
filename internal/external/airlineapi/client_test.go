package airlineapi_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfare/config"
	otelMocks "skyfare/infras/otel/mocks"
	"skyfare/internal/external/airlineapi"
)

func clientConfig(failureRate float64) *config.Config {
	cfg := &config.Config{}
	cfg.External.AirlineAPI.FailureRate = failureRate
	cfg.External.AirlineAPI.LatencyMs = 1
	cfg.External.AirlineAPI.MinSchedules = 2
	cfg.External.AirlineAPI.MaxSchedules = 5

	return cfg
}

func TestClient_SearchSchedules(t *testing.T) {
	client := airlineapi.New(
		clientConfig(0),
		otelMocks.NewOtel(),
		airlineapi.WithRand(rand.New(rand.NewSource(42))),
	)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	schedules, err := client.SearchSchedules(context.Background(), "DEL", "BOM", date)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(schedules), 2)
	assert.LessOrEqual(t, len(schedules), 5)

	for _, s := range schedules {
		assert.Equal(t, "DEL", s.OriginCode)
		assert.Equal(t, "BOM", s.DestinationCode)
		assert.Equal(t, date.Day(), s.DepartureTime.Day())
		assert.True(t, s.ArrivalTime.After(s.DepartureTime))
		assert.GreaterOrEqual(t, s.Fare, 2500.0)
		assert.Positive(t, s.SeatsLeft)
		assert.Contains(t, s.FlightNumber, s.AirlineCode)
	}
}

func TestClient_SearchSchedules_UpstreamFailure(t *testing.T) {
	client := airlineapi.New(
		clientConfig(1),
		otelMocks.NewOtel(),
		airlineapi.WithRand(rand.New(rand.NewSource(42))),
	)

	_, err := client.SearchSchedules(context.Background(), "DEL", "BOM", time.Now())

	assert.EqualError(t, err, "airline api unavailable")
}

func TestClient_RealTimePricing(t *testing.T) {
	client := airlineapi.New(
		clientConfig(0),
		otelMocks.NewOtel(),
		airlineapi.WithRand(rand.New(rand.NewSource(42))),
	)

	fare, err := client.RealTimePricing(context.Background(), "AI101")

	require.NoError(t, err)
	assert.Equal(t, "AI101", fare.FlightNumber)
	assert.Equal(t, "INR", fare.Currency)
	assert.GreaterOrEqual(t, fare.Fare, 2500.0)
	assert.Positive(t, fare.SeatsLeft)
	assert.False(t, fare.FetchedAt.IsZero())
}

func TestClient_RealTimePricing_UpstreamFailure(t *testing.T) {
	client := airlineapi.New(
		clientConfig(1),
		otelMocks.NewOtel(),
		airlineapi.WithRand(rand.New(rand.NewSource(42))),
	)

	_, err := client.RealTimePricing(context.Background(), "AI101")

	assert.EqualError(t, err, "airline api unavailable")
}

func TestClient_SearchSchedules_ContextCancelled(t *testing.T) {
	cfg := clientConfig(0)
	cfg.External.AirlineAPI.LatencyMs = 5000

	client := airlineapi.New(
		cfg,
		otelMocks.NewOtel(),
		airlineapi.WithRand(rand.New(rand.NewSource(42))),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchSchedules(ctx, "DEL", "BOM", time.Now())

	assert.ErrorIs(t, err, context.Canceled)
}
