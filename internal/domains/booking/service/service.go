package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/availability"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/internal/events"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

// Create reserves one unit of the room for the requested range. The room row
// is locked for the duration of the transaction, so the overlap count and the
// insert are atomic against concurrent requests for the same room.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	from, to, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	if !from.Before(to) {
		return res, failure.UnprocessableEntity(availability.ErrInvalidRange.Error()) // nolint:wrapcheck
	}

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking transaction")

		return res, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()
		}
	}()

	room, err := s.roomRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to lock room for booking")

		return res, fmt.Errorf("failed to lock room for booking: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.BadRequestFromString("room does not exist or is not active") // nolint:wrapcheck
	}

	overlapping, err := s.repo.CountTx(ctx, sqltx, model.OverlapFilter(from, to, room.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	if room.Quantity-overlapping <= 0 {
		return res, failure.Conflict("room is fully booked for the requested dates") // nolint:wrapcheck
	}

	booking := req.ToModel(user, room, from, to)

	if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking transaction")

		return res, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.publishBookingCreated(c, booking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) publishBookingCreated(ctx context.Context, booking model.Booking) {
	event := events.BookingCreatedEvent{
		BookingID:     booking.ID,
		RoomID:        booking.RoomID,
		UserID:        booking.UserID,
		DateFrom:      booking.DateFrom.Format(constant.DateOnlyFormat),
		DateTo:        booking.DateTo.Format(constant.DateOnlyFormat),
		PricePerNight: booking.PricePerNight,
		TotalNights:   booking.TotalNights(),
		TotalCost:     booking.TotalCost(),
		Status:        booking.Status,
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{
		Key:   booking.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Get returns one booking. Non-admin callers only see their own bookings.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !s.canAccess(ctx, booking) {
		return res, failure.ForbiddenError // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Cancel marks the booking cancelled, releasing its unit for the range.
// Owners can cancel their own bookings; admins can cancel any.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for cancellation")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !s.canAccess(ctx, booking) {
		return failure.ForbiddenError // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) canAccess(ctx context.Context, booking model.Booking) bool {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin || role == constant.RoleSuperAdmin {
		return true
	}

	return booking.UserID == user
}
