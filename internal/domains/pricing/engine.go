package pricing

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"skyfare/shared/timezone"
)

const (
	minPriceRatio = 0.70
	maxPriceRatio = 2.50
)

// QuoteInput carries every signal the fare computation depends on. Now is
// explicit so quotes can be replayed against historical instants.
type QuoteInput struct {
	BaseFare        float64
	SeatsAvailable  int
	TotalSeats      int
	DepartureTime   time.Time
	OriginCode      string
	DestinationCode string
	AirlineCode     string
	SeatClass       string
	Now             time.Time
}

// Breakdown is a fully itemized quote. Every factor is rounded to three
// decimals, the final price to two, so the numbers can be persisted and
// audited as-is.
type Breakdown struct {
	FinalPrice        float64 `json:"final_price"`
	BaseFare          float64 `json:"base_fare"`
	SeatFactor        float64 `json:"seat_factor"`
	TimeFactor        float64 `json:"time_factor"`
	DemandFactor      float64 `json:"demand_factor"`
	SeasonalFactor    float64 `json:"seasonal_factor"`
	WeekendFactor     float64 `json:"weekend_factor"`
	PeakHourFactor    float64 `json:"peak_hour_factor"`
	RouteFactor       float64 `json:"route_factor"`
	AirlineTierFactor float64 `json:"airline_tier_factor"`
	ClassMultiplier   float64 `json:"class_multiplier"`
	TotalMultiplier   float64 `json:"total_multiplier"`
}

// Engine computes dynamic fares. It holds no flight state; the only mutable
// piece is the demand randomness source, which is injected so tests and
// replays can fix the outcome.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Engine {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewWithSource(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// Quote computes the fare for the given inputs. Apart from the demand draw it
// is a pure function: identical inputs and an identically seeded source yield
// an identical breakdown.
func (e *Engine) Quote(in QuoteInput) Breakdown {
	seatFactor := seatAvailabilityFactor(in.SeatsAvailable, in.TotalSeats)
	timeFactor := timeToDepartureFactor(in.Now, in.DepartureTime)
	demandFactor := e.demandFactor(in.Now, in.DepartureTime)
	seasonalFactor := seasonalFactor(in.DepartureTime)
	weekendFactor := weekendFactor(in.DepartureTime)
	peakHourFactor := peakHourFactor(in.DepartureTime)
	routeFactor := routeCategoryFactor(in.OriginCode, in.DestinationCode)
	tierFactor := airlineTierFactor(in.AirlineCode)
	classMultiplier := classMultiplier(in.SeatClass)

	totalMultiplier := 1.0 +
		seatFactor +
		timeFactor +
		demandFactor +
		seasonalFactor +
		weekendFactor +
		peakHourFactor +
		routeFactor +
		tierFactor

	finalPrice := clampPrice(in.BaseFare*totalMultiplier*classMultiplier, in.BaseFare)

	return Breakdown{
		FinalPrice:        round2(finalPrice),
		BaseFare:          in.BaseFare,
		SeatFactor:        round3(seatFactor),
		TimeFactor:        round3(timeFactor),
		DemandFactor:      round3(demandFactor),
		SeasonalFactor:    round3(seasonalFactor),
		WeekendFactor:     round3(weekendFactor),
		PeakHourFactor:    round3(peakHourFactor),
		RouteFactor:       round3(routeFactor),
		AirlineTierFactor: round3(tierFactor),
		ClassMultiplier:   classMultiplier,
		TotalMultiplier:   round3(totalMultiplier),
	}
}

func seatAvailabilityFactor(available, total int) float64 {
	if total == 0 {
		return 0.0
	}

	percent := float64(available) / float64(total) * 100

	switch {
	case percent >= 80:
		return -0.10 // discount to attract bookings
	case percent >= 50:
		return 0.0
	case percent >= 20:
		return 0.20
	case percent >= 10:
		return 0.40
	default:
		return 0.60 // scarcity pricing
	}
}

func timeToDepartureFactor(now, departure time.Time) float64 {
	days := timezone.DaysUntil(now, departure)
	hours := timezone.HoursUntil(now, departure)

	switch {
	case days >= 60:
		return -0.15
	case days >= 30:
		return -0.05
	case days >= 15:
		return 0.0
	case days >= 7:
		return 0.15
	case days >= 3:
		return 0.30
	case days >= 1:
		return 0.50
	case hours >= 1:
		return 0.80
	default:
		return 1.00 // extreme last minute
	}
}

// demandFactor draws a base term in [-0.05, 0.15) and, when departure is
// within a week, an extra spike in [0.05, 0.20). The draws always happen in
// this order so a seeded source replays exactly.
func (e *Engine) demandFactor(now, departure time.Time) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	base := uniform(e.rng, -0.05, 0.15)

	if timezone.DaysUntil(now, departure) <= 7 {
		return base + uniform(e.rng, 0.05, 0.20)
	}

	return base
}

func seasonalFactor(departure time.Time) float64 {
	for _, window := range festivalWindows {
		if inWindow(departure, window) {
			return 0.25 // maximum seasonal premium
		}
	}

	if peakMonths[int(departure.Month())] {
		return 0.15
	}

	return 0.0
}

func weekendFactor(departure time.Time) float64 {
	hour := departure.Hour()

	switch departure.Weekday() {
	case time.Sunday:
		return 0.20
	case time.Saturday:
		return 0.15
	case time.Friday:
		if hour >= 17 {
			return 0.18 // weekend getaway departures
		}
	case time.Monday:
		if hour <= 10 {
			return 0.12 // business travel
		}
	}

	return 0.0
}

func peakHourFactor(departure time.Time) float64 {
	hour := departure.Hour()

	switch {
	case hour >= 5 && hour < 8:
		return 0.12
	case hour >= 8 && hour < 10:
		return 0.08
	case hour >= 18 && hour < 22:
		return 0.15
	case hour >= 11 && hour < 15:
		return -0.05
	case hour >= 22 || hour < 5:
		return -0.10 // red-eye
	default:
		return 0.0
	}
}

func routeCategoryFactor(origin, destination string) float64 {
	route := origin + "-" + destination

	switch {
	case metroRoutes[route]:
		return 0.10
	case touristRoutes[route]:
		return 0.08
	case businessRoutes[route]:
		return 0.06
	default:
		return 0.0
	}
}

func airlineTierFactor(code string) float64 {
	tier, ok := airlineTiers[code]
	if !ok {
		tier = tierStandard
	}

	switch tier {
	case tierPremium:
		return 0.10
	case tierBudget:
		return -0.05
	default:
		return 0.0
	}
}

func classMultiplier(seatClass string) float64 {
	if m, ok := classMultipliers[seatClass]; ok {
		return m
	}

	return 1.0
}

func clampPrice(price, baseFare float64) float64 {
	return math.Max(baseFare*minPriceRatio, math.Min(price, baseFare*maxPriceRatio))
}

// inWindow reports whether the date falls inside the window, ignoring year.
// Windows whose start month is after their end month wrap the year boundary.
func inWindow(t time.Time, w dateWindow) bool {
	month := int(t.Month())
	day := t.Day()

	switch {
	case w.startMonth == w.endMonth:
		return month == w.startMonth && day >= w.startDay && day <= w.endDay
	case w.startMonth < w.endMonth:
		return (month == w.startMonth && day >= w.startDay) ||
			(month == w.endMonth && day <= w.endDay) ||
			(month > w.startMonth && month < w.endMonth)
	default:
		return (month == w.startMonth && day >= w.startDay) ||
			(month == w.endMonth && day <= w.endDay) ||
			month > w.startMonth || month < w.endMonth
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
