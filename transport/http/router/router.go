package router

import (
	"skyfare/internal/handlers/booking"
	"skyfare/internal/handlers/external"
	"skyfare/internal/handlers/flight"
	"skyfare/internal/handlers/health"
	"skyfare/internal/handlers/history"
	"skyfare/internal/handlers/market"
	"skyfare/internal/handlers/pricing"
	"skyfare/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Flight   flight.Handler
	Pricing  pricing.Handler
	Booking  booking.Handler
	History  history.Handler
	Market   market.Handler
	External external.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.Tracing)

	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())
		routerGroup.Use(r.Middleware.UserContext)

		r.DomainHandlers.Flight.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
		r.DomainHandlers.External.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Middleware.RequireAPIKey)

			r.DomainHandlers.Market.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
