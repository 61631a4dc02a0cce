package market

import (
	"net/http"
	"strconv"
	"time"

	"skyfare/infras/otel"
	"skyfare/internal/domains/market"
	"skyfare/shared/constant"
	"skyfare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	scheduler *market.Scheduler
	otel      otel.Otel
}

func New(scheduler *market.Scheduler, otel otel.Otel) Handler {
	return Handler{
		scheduler: scheduler,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/market", func(routerGroup chi.Router) {
		routerGroup.Post("/start", handler.StartScheduler)
		routerGroup.Post("/stop", handler.StopScheduler)
		routerGroup.Get("/status", handler.GetStatus)
	})
}

// StartScheduler launches the market simulation loop.
// @Summary Start the market scheduler
// @Description Start the market simulation loop, optionally overriding the tick interval in seconds.
// @Tags Market
// @Produce json
// @Param interval_seconds query int false "Tick interval in seconds"
// @Success 200 {object} response.Message "Scheduler started"
// @Failure 409 {object} response.Error
// @Router /v1/market/start [post]
// @Security ApiKeyAuth
func (handler *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartScheduler")
	defer scope.End()

	seconds, _ := strconv.Atoi(r.URL.Query().Get("interval_seconds"))

	if err := handler.scheduler.Start(time.Duration(seconds) * time.Second); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start market scheduler")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Market scheduler started")

	response.WithMessage(w, http.StatusOK, "Market scheduler started")
}

// StopScheduler stops the market simulation loop.
// @Summary Stop the market scheduler
// @Description Stop the market simulation loop and wait for an in-flight tick to finish.
// @Tags Market
// @Produce json
// @Success 200 {object} response.Message "Scheduler stopped"
// @Failure 409 {object} response.Error
// @Router /v1/market/stop [post]
// @Security ApiKeyAuth
func (handler *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StopScheduler")
	defer scope.End()

	if err := handler.scheduler.Stop(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to stop market scheduler")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Market scheduler stopped")

	response.WithMessage(w, http.StatusOK, "Market scheduler stopped")
}

// GetStatus reports the scheduler state.
// @Summary Get market scheduler status
// @Description Report whether the simulation loop is running and at which interval.
// @Tags Market
// @Produce json
// @Success 200 {object} response.Data[market.Status] "Scheduler status"
// @Router /v1/market/status [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.scheduler.Status())
}
