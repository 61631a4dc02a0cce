package booking

import (
	"net/http"

	"skyfare/infras/otel"
	"skyfare/internal/domains/booking/model/dto"
	"skyfare/internal/domains/booking/service"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/shared/validator"
	"skyfare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetMyBookings)
		routerGroup.Get("/{pnr}", handler.GetBookingByPNR)
		routerGroup.Post("/{pnr}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{pnr}/cancel", handler.CancelBooking)
	})
}

// CreateBooking reserves seats and opens a pending booking hold.
// @Summary Create a new booking
// @Description Reserve seats on a flight and open a pending hold that must be confirmed before it expires.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created with pnr " + booking.PNR)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetMyBookings lists the caller's bookings.
// @Summary Get my bookings
// @Description List every booking belonging to the calling user.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	bookings, err := handler.service.ListByUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved for user " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByPNR retrieves a booking by its record locator.
// @Summary Get a booking by PNR
// @Description Retrieve one booking, passengers included, by its record locator.
// @Tags Booking
// @Produce json
// @Param pnr path string true "Record locator"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{pnr} [get]
func (handler *Handler) GetBookingByPNR(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByPNR")
	defer scope.End()

	pnr := chi.URLParam(r, constant.RequestParamPNR)

	booking, err := handler.service.GetByPNR(ctx, pnr)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by pnr")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved")

	response.WithJSON(w, http.StatusOK, booking)
}

// ConfirmBooking settles payment on a pending booking.
// @Summary Confirm a booking
// @Description Settle payment on a pending hold. Holds found past their expiry are cancelled and the call fails with 410.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pnr path string true "Record locator"
// @Param request body dto.ConfirmBookingRequest true "Confirm Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking confirmed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 410 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{pnr}/confirm [post]
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	pnr := chi.URLParam(r, constant.RequestParamPNR)

	req := dto.ConfirmBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Confirm(ctx, pnr, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking and refunds settled payment.
// @Summary Cancel a booking
// @Description Release the reserved seats and, when payment had settled, refund the full amount.
// @Tags Booking
// @Produce json
// @Param pnr path string true "Record locator"
// @Success 200 {object} response.Data[dto.RefundSummary] "Cancellation outcome"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{pnr}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	pnr := chi.URLParam(r, constant.RequestParamPNR)

	summary, err := handler.service.Cancel(ctx, pnr)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled")

	response.WithJSON(w, http.StatusOK, summary)
}
