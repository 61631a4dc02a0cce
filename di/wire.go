//go:build wireinject
// +build wireinject

package di

import (
	"skyfare/config"
	"skyfare/infras/kafka"
	"skyfare/infras/otel"
	"skyfare/infras/postgres"
	"skyfare/infras/redis"
	"skyfare/internal/domains/market"
	"skyfare/internal/domains/pricing"
	"skyfare/internal/external/airlineapi"
	"skyfare/shared/cache"
	"skyfare/transport/http"
	"skyfare/transport/http/middleware"
	"skyfare/transport/http/router"

	bookingRepository "skyfare/internal/domains/booking/repository"
	bookingService "skyfare/internal/domains/booking/service"
	flightRepository "skyfare/internal/domains/flight/repository"
	flightService "skyfare/internal/domains/flight/service"
	historyRepository "skyfare/internal/domains/history/repository"
	historyService "skyfare/internal/domains/history/service"
	inventoryRepository "skyfare/internal/domains/inventory/repository"
	inventoryService "skyfare/internal/domains/inventory/service"

	bookingHandler "skyfare/internal/handlers/booking"
	externalHandler "skyfare/internal/handlers/external"
	flightHandler "skyfare/internal/handlers/flight"
	healthHandler "skyfare/internal/handlers/health"
	historyHandler "skyfare/internal/handlers/history"
	marketHandler "skyfare/internal/handlers/market"
	pricingHandler "skyfare/internal/handlers/pricing"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var pricingDomain = wire.NewSet(
	pricing.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
	wire.Bind(new(inventoryService.TxRunner), new(*postgres.Connection)),
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	wire.Bind(new(bookingService.TxRunner), new(*postgres.Connection)),
)

var marketDomain = wire.NewSet(
	market.New,
	wire.Bind(new(market.TxRunner), new(*postgres.Connection)),
	wire.Bind(new(market.Sweeper), new(bookingService.Booking)),
)

var externalClients = wire.NewSet(
	airlineapi.New,
)

var domains = wire.NewSet(
	pricingDomain,
	inventoryDomain,
	flightDomain,
	historyDomain,
	bookingDomain,
	marketDomain,
	externalClients,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	flightHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	historyHandler.New,
	marketHandler.New,
	externalHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
