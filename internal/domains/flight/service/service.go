package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyfare/config"
	"skyfare/infras/otel"
	"skyfare/internal/domains/flight/model/dto"
	"skyfare/internal/domains/flight/repository"
	invModel "skyfare/internal/domains/inventory/model"
	invService "skyfare/internal/domains/inventory/service"
	"skyfare/internal/domains/pricing"
	"skyfare/shared"
	"skyfare/shared/cache"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight    = "flight:get"
	cacheListUpcoming = "flight:upcoming"

	defaultListLimit = 100
)

type Flight interface {
	Get(ctx context.Context, id int64) (dto.FlightResponse, error)
	ListUpcoming(ctx context.Context) (dto.GetFlightsResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo   repository.Flight
	ledger invService.Ledger
	pricer *pricing.Engine
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Flight, ledger invService.Ledger, pricer *pricing.Engine, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:   repo,
		ledger: ledger,
		pricer: pricer,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	flight, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", id).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == 0 {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	inventories, err := s.ledger.ListByFlight(ctx, flight.ID)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", id).Msg("failed to list seat availability")

		return res, fmt.Errorf("failed to list seat availability: %w", err)
	}

	res.FromModel(flight, inventories)

	return res, nil
}

func (s *serviceImpl) ListUpcoming(ctx context.Context) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.ListUpcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheListUpcoming)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for upcoming flights")

		return res, nil
	}

	flights, err := s.repo.ListUpcoming(ctx, timezone.Now(), defaultListLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list upcoming flights")

		return res, fmt.Errorf("failed to list upcoming flights: %w", err)
	}

	res.FromModels(flights)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save upcoming flights to cache")
		}
	}()

	return res, nil
}

// Quote prices a (flight, class) pair at this instant. Quotes are never
// cached: availability and the demand draw move between calls, and that
// movement is the product.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	flight, err := s.repo.Get(ctx, req.FlightID)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", req.FlightID).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == 0 {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	inv, err := s.ledger.Get(ctx, flight.ID, invModel.SeatClass(req.SeatClass))
	if err != nil {
		log.Error().Err(err).Int64("flight_id", req.FlightID).Str("seat_class", req.SeatClass).Msg("failed to get seat availability")

		return res, err // nolint:wrapcheck
	}

	now := timezone.Now()

	breakdown := s.pricer.Quote(pricing.QuoteInput{
		BaseFare:        flight.BaseFare,
		SeatsAvailable:  inv.AvailableSeats,
		TotalSeats:      inv.TotalSeats,
		DepartureTime:   flight.DepartureTime,
		OriginCode:      flight.OriginCode,
		DestinationCode: flight.DestinationCode,
		AirlineCode:     flight.AirlineCode,
		SeatClass:       req.SeatClass,
		Now:             now,
	})

	return dto.QuoteResponse{
		FlightID:  flight.ID,
		SeatClass: req.SeatClass,
		QuotedAt:  now,
		Breakdown: breakdown,
	}, nil
}
