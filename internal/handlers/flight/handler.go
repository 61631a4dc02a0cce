package flight

import (
	"net/http"
	"strconv"

	"skyfare/infras/otel"
	"skyfare/internal/domains/flight/service"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFlights)
		routerGroup.Get("/{id}", handler.GetFlightByID)
	})
}

// GetFlights lists upcoming scheduled flights.
// @Summary Get upcoming flights
// @Description List flights that are still scheduled and depart in the future.
// @Tags Flight
// @Produce json
// @Success 200 {object} response.Data[dto.GetFlightsResponse] "List of flights"
// @Failure 500 {object} response.Error
// @Router /v1/flights [get]
func (handler *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlights")
	defer scope.End()

	flights, err := handler.service.ListUpcoming(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights retrieved")

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID retrieves one flight with its seat availability.
// @Summary Get a flight by ID
// @Description Retrieve one flight together with per-class seat availability.
// @Tags Flight
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} response.Data[dto.FlightResponse] "Flight details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [get]
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid flight id")

		response.WithError(w, failure.BadRequestFromString("flight id must be an integer"))

		return
	}

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight retrieved")

	response.WithJSON(w, http.StatusOK, flight)
}
