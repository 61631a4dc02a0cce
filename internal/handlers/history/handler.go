package history

import (
	"net/http"
	"strconv"

	"skyfare/infras/otel"
	"skyfare/internal/domains/history/service"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PriceHistory
	otel    otel.Otel
}

func New(service service.PriceHistory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/price-history", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetHistory)
		routerGroup.Get("/{id}/summary", handler.GetSummary)
	})
}

// GetHistory lists recorded price points for a flight.
// @Summary Get price history
// @Description List recorded price points for a flight, newest first, optionally filtered by seat class.
// @Tags PriceHistory
// @Produce json
// @Param id path int true "Flight ID"
// @Param seat_class query string false "Seat class filter (economy, business, first)"
// @Param limit query int false "Maximum number of points"
// @Success 200 {object} response.Data[[]model.PricePoint] "Price points"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/price-history/{id} [get]
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	flightID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid flight id")

		response.WithError(w, failure.BadRequestFromString("flight id must be an integer"))

		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	seatClass := r.URL.Query().Get("seat_class")

	points, err := handler.service.ListByFlight(ctx, flightID, seatClass, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list price history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price history retrieved")

	response.WithJSON(w, http.StatusOK, points)
}

// GetSummary aggregates price history per seat class.
// @Summary Get price history summary
// @Description Aggregate the recorded prices for a flight into min, average and max per seat class.
// @Tags PriceHistory
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} response.Data[[]model.Summary] "Per-class aggregates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/price-history/{id}/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	flightID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid flight id")

		response.WithError(w, failure.BadRequestFromString("flight id must be an integer"))

		return
	}

	summary, err := handler.service.Summarize(ctx, flightID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarize price history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price history summarized")

	response.WithJSON(w, http.StatusOK, summary)
}
