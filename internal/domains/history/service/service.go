package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyfare/config"
	"skyfare/infras/otel"
	"skyfare/internal/domains/history/model"
	"skyfare/internal/domains/history/repository"
	"skyfare/shared"
	"skyfare/shared/cache"
	"skyfare/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheHistorySummary = "history:summary"

	defaultListLimit = 200
	maxListLimit     = 1000
)

type PriceHistory interface {
	ListByFlight(ctx context.Context, flightID int64, seatClass string, limit int) ([]model.PricePoint, error)
	Summarize(ctx context.Context, flightID int64) ([]model.Summary, error)
}

type serviceImpl struct {
	repo  repository.PriceHistory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PriceHistory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PriceHistory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ListByFlight(ctx context.Context, flightID int64, seatClass string, limit int) (res []model.PricePoint, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.ListByFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = defaultListLimit
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	res, err = s.repo.ListByFlight(ctx, flightID, seatClass, limit)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Msg("failed to list price history")

		return nil, fmt.Errorf("failed to list price history: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Summarize(ctx context.Context, flightID int64) (res []model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.Summarize")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHistorySummary, fmt.Sprintf("%d", flightID))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for price history summary")

		return res, nil
	}

	res, err = s.repo.Summarize(ctx, flightID)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flightID).Msg("failed to summarize price history")

		return nil, fmt.Errorf("failed to summarize price history: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save price history summary to cache")
		}
	}()

	return res, nil
}
