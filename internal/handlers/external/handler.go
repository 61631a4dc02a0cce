package external

import (
	"net/http"
	"time"

	"skyfare/infras/otel"
	"skyfare/internal/external/airlineapi"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/shared/timezone"
	"skyfare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	client airlineapi.Client
	otel   otel.Otel
}

func New(client airlineapi.Client, otel otel.Otel) Handler {
	return Handler{
		client: client,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/external", func(routerGroup chi.Router) {
		routerGroup.Get("/search", handler.SearchSchedules)
		routerGroup.Get("/pricing", handler.RealTimePricing)
	})
}

// SearchSchedules queries the upstream airline schedule feed.
// @Summary Search airline schedules
// @Description Query the upstream airline feed for schedules on a route and date.
// @Tags External
// @Produce json
// @Param origin query string true "Origin airport code"
// @Param destination query string true "Destination airport code"
// @Param date query string false "Travel date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[[]airlineapi.Schedule] "Schedules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/external/search [get]
func (handler *Handler) SearchSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchSchedules")
	defer scope.End()

	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")

	if origin == "" || destination == "" {
		response.WithError(w, failure.BadRequestFromString("origin and destination are required"))

		return
	}

	date := timezone.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, timezone.GetLocation())
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("invalid travel date")

			response.WithError(w, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD"))

			return
		}

		date = parsed
	}

	schedules, err := handler.client.SearchSchedules(ctx, origin, destination, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search airline schedules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Airline schedules retrieved")

	response.WithJSON(w, http.StatusOK, schedules)
}

// RealTimePricing fetches the carrier's current fare for one flight.
// @Summary Get a carrier's live fare
// @Description Query the upstream airline feed for the current fare of a flight.
// @Tags External
// @Produce json
// @Param flight_number query string true "Carrier flight number"
// @Success 200 {object} response.Data[airlineapi.LiveFare] "Live fare"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/external/pricing [get]
func (handler *Handler) RealTimePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RealTimePricing")
	defer scope.End()

	flightNumber := r.URL.Query().Get("flight_number")
	if flightNumber == "" {
		response.WithError(w, failure.BadRequestFromString("flight_number is required"))

		return
	}

	fare, err := handler.client.RealTimePricing(ctx, flightNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch live fare")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Live fare retrieved")

	response.WithJSON(w, http.StatusOK, fare)
}
