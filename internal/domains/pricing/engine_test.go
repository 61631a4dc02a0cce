package pricing_test

import (
	"math/rand"
	"testing"
	"time"

	"skyfare/internal/domains/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteInput(now time.Time) pricing.QuoteInput {
	return pricing.QuoteInput{
		BaseFare:        5000,
		SeatsAvailable:  90,
		TotalSeats:      180,
		DepartureTime:   now.AddDate(0, 0, 20),
		OriginCode:      "DEL",
		DestinationCode: "BOM",
		AirlineCode:     "AI",
		SeatClass:       "economy",
		Now:             now,
	}
}

func TestEngine_Quote_Deterministic(t *testing.T) {
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	a := pricing.NewWithSource(rand.NewSource(42))
	b := pricing.NewWithSource(rand.NewSource(42))

	in := quoteInput(now)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Quote(in), b.Quote(in))
	}
}

func TestEngine_Quote_LastMinuteScarcity(t *testing.T) {
	// Sunday evening departure in twelve hours, five of 180 seats left, on a
	// metro route with a premium carrier. Every surcharge fires at once.
	departure := time.Date(2025, 2, 9, 19, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, departure.Weekday())

	now := departure.Add(-12 * time.Hour)

	engine := pricing.NewWithSource(rand.NewSource(1))

	breakdown := engine.Quote(pricing.QuoteInput{
		BaseFare:        5000,
		SeatsAvailable:  5,
		TotalSeats:      180,
		DepartureTime:   departure,
		OriginCode:      "DEL",
		DestinationCode: "BOM",
		AirlineCode:     "AI",
		SeatClass:       "economy",
		Now:             now,
	})

	assert.InDelta(t, 0.60, breakdown.SeatFactor, 1e-9)
	assert.InDelta(t, 0.80, breakdown.TimeFactor, 1e-9)
	assert.InDelta(t, 0.20, breakdown.WeekendFactor, 1e-9)
	assert.InDelta(t, 0.15, breakdown.PeakHourFactor, 1e-9)
	assert.InDelta(t, 0.10, breakdown.RouteFactor, 1e-9)
	assert.InDelta(t, 0.10, breakdown.AirlineTierFactor, 1e-9)
	assert.Equal(t, 1.0, breakdown.ClassMultiplier)

	// Demand spike applies within a week of departure, so the raw multiplier
	// blows past the cap and the price clamps at 2.5x base.
	assert.Equal(t, 12500.0, breakdown.FinalPrice)
}

func TestEngine_Quote_PriceBounds(t *testing.T) {
	engine := pricing.NewWithSource(rand.NewSource(7))

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   pricing.QuoteInput
	}{
		{"wide open early booking", pricing.QuoteInput{
			BaseFare: 4000, SeatsAvailable: 180, TotalSeats: 180,
			DepartureTime: now.AddDate(0, 0, 90), OriginCode: "IXA", DestinationCode: "IXB",
			AirlineCode: "SG", SeatClass: "economy", Now: now,
		}},
		{"sold down last minute", pricing.QuoteInput{
			BaseFare: 4000, SeatsAvailable: 2, TotalSeats: 180,
			DepartureTime: now.Add(30 * time.Minute), OriginCode: "DEL", DestinationCode: "BOM",
			AirlineCode: "AI", SeatClass: "economy", Now: now,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				breakdown := engine.Quote(tt.in)

				assert.GreaterOrEqual(t, breakdown.FinalPrice, tt.in.BaseFare*0.70)
				assert.LessOrEqual(t, breakdown.FinalPrice, tt.in.BaseFare*2.50)
			}
		})
	}
}

func TestEngine_Quote_ClassMultipliers(t *testing.T) {
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		class string
		want  float64
	}{
		{"economy", 1.0},
		{"business", 2.8},
		{"first", 4.5},
		{"unknown", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			engine := pricing.NewWithSource(rand.NewSource(3))

			in := quoteInput(now)
			in.SeatClass = tt.class

			assert.Equal(t, tt.want, engine.Quote(in).ClassMultiplier)
		})
	}
}

func TestEngine_Quote_SeasonalWindows(t *testing.T) {
	engine := pricing.NewWithSource(rand.NewSource(11))

	tests := []struct {
		name      string
		departure time.Time
		want      float64
	}{
		{"diwali window", time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC), 0.25},
		{"new year wrap, december side", time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC), 0.25},
		{"new year wrap, january side", time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC), 0.25},
		{"peak month outside festivals", time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC), 0.15},
		{"plain february", time.Date(2025, 2, 18, 12, 0, 0, 0, time.UTC), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := quoteInput(tt.departure.AddDate(0, 0, -45))
			in.DepartureTime = tt.departure

			assert.InDelta(t, tt.want, engine.Quote(in).SeasonalFactor, 1e-9)
		})
	}
}

func TestEngine_Quote_DemandSpikeNearDeparture(t *testing.T) {
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	far := pricing.NewWithSource(rand.NewSource(9))
	in := quoteInput(now)
	in.DepartureTime = now.AddDate(0, 0, 30)

	for i := 0; i < 100; i++ {
		demand := far.Quote(in).DemandFactor

		assert.GreaterOrEqual(t, demand, -0.05)
		assert.LessOrEqual(t, demand, 0.15)
	}

	near := pricing.NewWithSource(rand.NewSource(9))
	in.DepartureTime = now.AddDate(0, 0, 5)

	for i := 0; i < 100; i++ {
		demand := near.Quote(in).DemandFactor

		assert.GreaterOrEqual(t, demand, 0.0)
		assert.LessOrEqual(t, demand, 0.35)
	}
}

func TestEngine_Quote_RouteAndTierFactors(t *testing.T) {
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		origin      string
		destination string
		airline     string
		wantRoute   float64
		wantTier    float64
	}{
		{"metro premium", "DEL", "BOM", "AI", 0.10, 0.10},
		{"tourist standard", "BOM", "GOI", "6E", 0.08, 0.0},
		{"business budget", "DEL", "HYD", "SG", 0.06, -0.05},
		{"unlisted route and airline", "IXA", "IXB", "ZZ", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := pricing.NewWithSource(rand.NewSource(5))

			in := quoteInput(now)
			in.OriginCode = tt.origin
			in.DestinationCode = tt.destination
			in.AirlineCode = tt.airline

			breakdown := engine.Quote(in)

			assert.InDelta(t, tt.wantRoute, breakdown.RouteFactor, 1e-9)
			assert.InDelta(t, tt.wantTier, breakdown.AirlineTierFactor, 1e-9)
		})
	}
}

func TestEngine_Quote_ZeroTotalSeats(t *testing.T) {
	engine := pricing.NewWithSource(rand.NewSource(2))

	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)
	in := quoteInput(now)
	in.SeatsAvailable = 0
	in.TotalSeats = 0

	assert.Equal(t, 0.0, engine.Quote(in).SeatFactor)
}
