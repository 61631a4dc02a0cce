package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"skyfare/config"
	"skyfare/infras/kafka"
	"skyfare/infras/otel"
	"skyfare/internal/domains/booking/model"
	"skyfare/internal/domains/booking/model/dto"
	"skyfare/internal/domains/booking/repository"
	flightRepo "skyfare/internal/domains/flight/repository"
	invModel "skyfare/internal/domains/inventory/model"
	invService "skyfare/internal/domains/inventory/service"
	"skyfare/internal/domains/pricing"
	"skyfare/shared"
	"skyfare/shared/cache"
	"skyfare/shared/constant"
	"skyfare/shared/failure"
	"skyfare/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking   = "booking:get"
	cacheUserBookings = "booking:user"

	expiredSweepBatch = 200

	EventCreated   = "booking_created"
	EventConfirmed = "booking_confirmed"
	EventCancelled = "booking_cancelled"
	EventExpired   = "booking_expired"
)

const pnrLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TxRunner runs fn inside a database transaction, committing on nil and
// rolling back otherwise.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Event is the payload published to the booking events topic on every
// lifecycle transition.
type Event struct {
	Event      string    `json:"event"`
	PNR        string    `json:"pnr"`
	FlightID   int64     `json:"flight_id"`
	SeatClass  string    `json:"seat_class"`
	SeatCount  int       `json:"seat_count"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetByPNR(ctx context.Context, pnr string) (dto.BookingResponse, error)
	ListByUser(ctx context.Context, userID string) (dto.GetBookingsResponse, error)
	Confirm(ctx context.Context, pnr string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, pnr string) (dto.RefundSummary, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

type serviceImpl struct {
	repo       repository.Booking
	flightRepo flightRepo.Flight
	ledger     invService.Ledger
	pricer     *pricing.Engine
	tx         TxRunner
	broker     kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*serviceImpl)

// WithRand fixes the record locator randomness, which tests use to force
// collisions.
func WithRand(rng *rand.Rand) Option {
	return func(s *serviceImpl) {
		s.rng = rng
	}
}

func New(
	repo repository.Booking,
	flightRepo flightRepo.Flight,
	ledger invService.Ledger,
	pricer *pricing.Engine,
	tx TxRunner,
	broker kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	opts ...Option,
) Booking {
	s := &serviceImpl{
		repo:       repo,
		flightRepo: flightRepo,
		ledger:     ledger,
		pricer:     pricer,
		tx:         tx,
		broker:     broker,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create reserves seats, prices them off the availability at the moment of
// booking, and opens a pending hold that expires unless confirmed in time.
// Seat reservation and the booking insert share one transaction, so a failed
// insert can never leak seats.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()
	seats := len(req.Passengers)

	if seats > s.cfg.Booking.MaxPassengers {
		// nolint:wrapcheck
		return res, failure.BadRequestFromString(fmt.Sprintf("a booking holds at most %d passengers", s.cfg.Booking.MaxPassengers))
	}

	flight, err := s.flightRepo.Get(ctx, req.FlightID)
	if err != nil {
		log.Error().Err(err).Int64("flight_id", req.FlightID).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == 0 {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	if !flight.Bookable(now) {
		return res, failure.Conflict("flight is not open for booking") // nolint:wrapcheck
	}

	class := invModel.SeatClass(req.SeatClass)

	unlock := s.ledger.Lock(flight.ID, class)
	defer unlock()

	var booking model.Booking

	err = s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		inv, txErr := s.ledger.ReserveTx(ctx, tx, flight.ID, class, seats)
		if txErr != nil {
			return txErr
		}

		quote := s.pricer.Quote(pricing.QuoteInput{
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

		pnr, txErr := s.generatePNR(ctx)
		if txErr != nil {
			return txErr
		}

		expiresAt := now.Add(time.Duration(s.cfg.Booking.HoldTTLMinutes) * time.Minute)

		booking = model.Booking{
			PNR:           pnr,
			UserID:        userID,
			FlightID:      flight.ID,
			SeatClass:     req.SeatClass,
			SeatCount:     seats,
			PricePerSeat:  quote.FinalPrice,
			TotalPrice:    roundMoney(quote.FinalPrice * float64(seats)),
			Status:        model.StatusPending,
			PaymentStatus: model.PaymentUnpaid,
			ExpiresAt:     &expiresAt,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		booking.ID, txErr = s.repo.InsertTx(ctx, tx, booking)
		if txErr != nil {
			return txErr
		}

		passengers := make([]model.Passenger, 0, seats)
		for _, p := range req.Passengers {
			passengers = append(passengers, model.Passenger{FullName: p.FullName, Age: p.Age})
		}

		return s.repo.InsertPassengersTx(ctx, tx, booking.ID, passengers)
	})
	if err != nil {
		log.Error().Err(err).Int64("flight_id", flight.ID).Str("seat_class", req.SeatClass).Msg("failed to create booking")

		return res, err // nolint:wrapcheck
	}

	s.publish(ctx, EventCreated, booking)
	s.invalidate(ctx, booking)

	res.FromModel(booking, nil)
	for _, p := range req.Passengers {
		res.Passengers = append(res.Passengers, dto.PassengerResponse{FullName: p.FullName, Age: p.Age})
	}

	return res, nil
}

func (s *serviceImpl) GetByPNR(ctx context.Context, pnr string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByPNR")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, pnr)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.GetByPNR(ctx, pnr)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	passengers, err := s.repo.ListPassengers(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to list passengers")

		return res, fmt.Errorf("failed to list passengers: %w", err)
	}

	res.FromModel(booking, passengers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListByUser(ctx context.Context, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheUserBookings, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user bookings")

		return res, nil
	}

	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user bookings to cache")
		}
	}()

	return res, nil
}

// Confirm settles payment on a pending hold. A hold found past its expiry is
// cancelled on the spot and the confirmation is rejected; a paid seat never
// comes out of a lapsed hold.
func (s *serviceImpl) Confirm(ctx context.Context, pnr string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetByPNR(ctx, pnr)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	switch booking.Status {
	case model.StatusConfirmed:
		return res, failure.Conflict("booking is already confirmed") // nolint:wrapcheck
	case model.StatusCancelled:
		return res, failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	now := timezone.Now()

	if booking.ExpiredAt(now) {
		if cancelErr := s.expire(ctx, booking); cancelErr != nil {
			log.Error().Err(cancelErr).Str("pnr", pnr).Msg("failed to cancel expired booking")

			return res, fmt.Errorf("failed to cancel expired booking: %w", cancelErr)
		}

		return res, failure.Expired("booking hold has expired") // nolint:wrapcheck
	}

	err = s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		changed, txErr := s.repo.TransitionTx(ctx, tx, pnr, model.StatusPending, model.StatusConfirmed, model.PaymentPaid)
		if txErr != nil {
			return txErr
		}

		if !changed {
			return failure.Conflict("booking is no longer pending") // nolint:wrapcheck
		}

		return s.repo.InsertPaymentTx(ctx, tx, model.PaymentTransaction{
			BookingID: booking.ID,
			Reference: uuid.NewString(),
			Type:      model.TransactionPayment,
			Amount:    booking.TotalPrice,
			Method:    req.PaymentMethod,
		})
	})
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to confirm booking")

		return res, err // nolint:wrapcheck
	}

	booking.Status = model.StatusConfirmed
	booking.PaymentStatus = model.PaymentPaid
	booking.ExpiresAt = nil

	s.publish(ctx, EventConfirmed, booking)
	s.invalidate(ctx, booking)

	passengers, err := s.repo.ListPassengers(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to list passengers")

		return res, fmt.Errorf("failed to list passengers: %w", err)
	}

	res.FromModel(booking, passengers)

	return res, nil
}

// Cancel releases the held seats unconditionally and refunds the full amount
// when payment had settled. Seat release and the status flip share one
// transaction, and the guarded transition keeps a racing sweep or confirm
// from double-releasing.
func (s *serviceImpl) Cancel(ctx context.Context, pnr string) (res dto.RefundSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetByPNR(ctx, pnr)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	refunded := booking.PaymentStatus == model.PaymentPaid

	payment := model.PaymentUnpaid
	if refunded {
		payment = model.PaymentRefunded
	}

	unlock := s.ledger.Lock(booking.FlightID, invModel.SeatClass(booking.SeatClass))
	defer unlock()

	err = s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		changed, txErr := s.repo.TransitionTx(ctx, tx, pnr, booking.Status, model.StatusCancelled, payment)
		if txErr != nil {
			return txErr
		}

		if !changed {
			return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
		}

		if refunded {
			txErr = s.repo.InsertPaymentTx(ctx, tx, model.PaymentTransaction{
				BookingID: booking.ID,
				Reference: uuid.NewString(),
				Type:      model.TransactionRefund,
				Amount:    booking.TotalPrice,
			})
			if txErr != nil {
				return txErr
			}
		}

		return s.ledger.ReleaseTx(ctx, tx, booking.FlightID, invModel.SeatClass(booking.SeatClass), booking.SeatCount)
	})
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to cancel booking")

		return res, err // nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled
	booking.PaymentStatus = payment

	s.publish(ctx, EventCancelled, booking)
	s.invalidate(ctx, booking)

	res = dto.RefundSummary{
		PNR:      pnr,
		Status:   model.StatusCancelled,
		Refunded: refunded,
	}
	if refunded {
		res.Amount = booking.TotalPrice
	}

	return res, nil
}

// SweepExpired cancels every pending hold whose payment window lapsed at or
// before now. Each booking is swept in its own guarded transaction, so a user
// confirming or cancelling concurrently simply wins or loses that one row.
func (s *serviceImpl) SweepExpired(ctx context.Context, now time.Time) (swept int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SweepExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	expired, err := s.repo.ListExpiredPending(ctx, now, expiredSweepBatch)
	if err != nil {
		log.Error().Err(err).Msg("failed to list expired bookings")

		return 0, fmt.Errorf("failed to list expired bookings: %w", err)
	}

	for _, booking := range expired {
		if err := s.expire(ctx, booking); err != nil {
			if failure.IsCode(err, http.StatusConflict) {
				continue // lost the race to a user-driven transition
			}

			log.Error().Err(err).Str("pnr", booking.PNR).Msg("failed to expire booking")

			return swept, fmt.Errorf("failed to expire booking: %w", err)
		}

		swept++
	}

	if swept > 0 {
		log.Info().Int("count", swept).Msg("expired pending bookings swept")
	}

	return swept, nil
}

// expire cancels one pending hold and gives its seats back.
func (s *serviceImpl) expire(ctx context.Context, booking model.Booking) error {
	unlock := s.ledger.Lock(booking.FlightID, invModel.SeatClass(booking.SeatClass))
	defer unlock()

	err := s.tx.RunTx(ctx, func(tx *sqlx.Tx) error {
		changed, txErr := s.repo.TransitionTx(ctx, tx, booking.PNR, model.StatusPending, model.StatusCancelled, model.PaymentUnpaid)
		if txErr != nil {
			return txErr
		}

		if !changed {
			return failure.Conflict("booking is no longer pending") // nolint:wrapcheck
		}

		return s.ledger.ReleaseTx(ctx, tx, booking.FlightID, invModel.SeatClass(booking.SeatClass), booking.SeatCount)
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled

	s.publish(ctx, EventExpired, booking)
	s.invalidate(ctx, booking)

	return nil
}

func (s *serviceImpl) generatePNR(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.cfg.Booking.PNRMaxRetries; attempt++ {
		pnr := s.randomPNR()

		exists, err := s.repo.ExistsPNR(ctx, pnr)
		if err != nil {
			return "", fmt.Errorf("failed to check pnr: %w", err)
		}

		if !exists {
			return pnr, nil
		}
	}

	return "", failure.InternalError(fmt.Errorf("could not allocate a unique pnr")) // nolint:wrapcheck
}

// randomPNR builds a record locator of three uppercase letters followed by
// three digits.
func (s *serviceImpl) randomPNR() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, 6)
	for i := 0; i < 3; i++ {
		buf[i] = pnrLetters[s.rng.Intn(len(pnrLetters))]
	}
	for i := 3; i < 6; i++ {
		buf[i] = byte('0' + s.rng.Intn(10))
	}

	return string(buf)
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.broker.SendMessages(c, s.cfg.Kafka.BookingEventsTopic, kafka.Message{
			Key: booking.PNR,
			Value: Event{
				Event:      event,
				PNR:        booking.PNR,
				FlightID:   booking.FlightID,
				SeatClass:  booking.SeatClass,
				SeatCount:  booking.SeatCount,
				TotalPrice: booking.TotalPrice,
				OccurredAt: timezone.Now(),
			},
		})
		if err != nil {
			log.Error().Err(err).Str("event", event).Str("pnr", booking.PNR).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.PNR)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheUserBookings)
	}()
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
