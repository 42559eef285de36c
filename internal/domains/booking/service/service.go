package service

import (
	"context"
	"errors"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	checkinRepo "inn/internal/domains/checkin/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// Booking writes change which rooms are free, so the room availability
	// cache is cleared alongside the booking caches.
	cacheAvailableRoom = "room:available"
)

// Booking is the lifecycle engine. It exclusively owns status transitions:
// every edge is validated against the current persisted state and written
// with compare-and-swap semantics, so a failed transition never mutates the
// stored booking.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	Schedule(ctx context.Context, req dto.RoomScheduleRequest) (dto.RoomScheduleResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	checkinRepo checkinRepo.CheckIn
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, checkinRepo checkinRepo.CheckIn, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		checkinRepo: checkinRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := req.ToModel(staffID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) //nolint:wrapcheck
	}

	if !booking.CheckInDate.Before(booking.CheckOutDate) {
		return res, model.ErrInvalidRange //nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	// Conflict scan and insert happen inside one transaction behind a room
	// row lock, so two concurrent creates for an overlapping window cannot
	// both land.
	if err = s.repo.CreateReserved(ctx, booking); err != nil {
		if !errors.Is(err, model.ErrRoomUnavailable) {
			log.Error().Err(err).Msg("failed to create booking")
		}

		return res, err //nolint:wrapcheck
	}

	s.invalidateListCaches(ctx)

	scope.AddEvent("Booking created for room " + booking.RoomID)
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
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

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update patches a booking that is still Pending or Confirmed. When the room
// or the stay window changes, availability is re-checked with the booking's
// own reservation excluded from the conflict scan.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.StatusID != model.StatusPending && booking.StatusID != model.StatusConfirmed {
		return model.ErrInvalidTransition //nolint:wrapcheck
	}

	newRoomID := booking.RoomID
	if req.RoomID != constant.Empty {
		newRoomID = req.RoomID
	}

	newCheckIn := booking.CheckInDate
	newCheckOut := booking.CheckOutDate

	if req.CheckInDate != constant.Empty {
		if newCheckIn, err = timezone.Parse(constant.DateOnlyFormat, req.CheckInDate); err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid check-in date: %v", err)) //nolint:wrapcheck
		}
	}

	if req.CheckOutDate != constant.Empty {
		if newCheckOut, err = timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate); err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid check-out date: %v", err)) //nolint:wrapcheck
		}
	}

	if !newCheckIn.Before(newCheckOut) {
		return model.ErrInvalidRange //nolint:wrapcheck
	}

	windowChanged := newRoomID != booking.RoomID ||
		!newCheckIn.Equal(booking.CheckInDate) ||
		!newCheckOut.Equal(booking.CheckOutDate)

	if newRoomID != booking.RoomID {
		roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(newRoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if room exists")

			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !roomExists {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, staffID)
	delete(updatedFields, model.FieldCheckInDate)
	delete(updatedFields, model.FieldCheckOutDate)

	if !newCheckIn.Equal(booking.CheckInDate) {
		updatedFields[model.FieldCheckInDate] = newCheckIn
	}

	if !newCheckOut.Equal(booking.CheckOutDate) {
		updatedFields[model.FieldCheckOutDate] = newCheckOut
	}

	if windowChanged {
		// Same lock-scan-write transaction as Create; a plain read before
		// the write would let two concurrent moves both pass the scan.
		if err = s.repo.UpdateReserved(ctx, booking.ID, newRoomID, newCheckIn, newCheckOut, updatedFields); err != nil {
			if !errors.Is(err, model.ErrRoomUnavailable) {
				log.Error().Err(err).Msg("failed to update booking")
			}

			return err //nolint:wrapcheck
		}
	} else if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// Confirm moves a Pending booking to Confirmed. Confirming an already
// Confirmed booking is a no-op success so at-least-once callers can retry
// safely.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.StatusID == model.StatusConfirmed {
		res.FromModel(booking)

		return res, nil
	}

	if !booking.StatusID.CanTransitionTo(model.StatusConfirmed) {
		return res, model.ErrInvalidTransition //nolint:wrapcheck
	}

	err = s.repo.UpdateStatus(ctx, id, model.StatusPending, model.StatusConfirmed, s.modifiedFields(staffID))
	if errors.Is(err, model.ErrTransitionConflict) {
		// Lost the swap; a concurrent confirm is still a success.
		current, getErr := s.getBooking(ctx, id)
		if getErr == nil && current.StatusID == model.StatusConfirmed {
			res.FromModel(current)

			return res, nil
		}

		return res, err //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to confirm booking")

		return res, err //nolint:wrapcheck
	}

	s.invalidateBookingCaches(ctx, id)

	booking.StatusID = model.StatusConfirmed
	res.FromModel(booking)

	scope.AddEvent("Booking confirmed")

	return res, nil
}

// Cancel terminates a Pending or Confirmed booking with a taxonomy reason
// and an optional refund. A stay in progress or completed cannot be
// cancelled.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	reason := model.CancelReason(req.Reason)
	if !reason.Valid() {
		return res, failure.BadRequestFromString("unknown cancellation reason") //nolint:wrapcheck
	}

	if req.RefundAmount != nil && *req.RefundAmount < 0 {
		return res, failure.BadRequestFromString("refund amount must not be negative") //nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.StatusID.CanTransitionTo(model.StatusCancelled) {
		return res, model.ErrInvalidTransition //nolint:wrapcheck
	}

	cancelledAt := timezone.Now()
	reasonStr := reason.String()

	extra := s.modifiedFields(staffID)
	extra[model.FieldCancelReason] = reasonStr
	extra[model.FieldRefundAmount] = req.RefundAmount
	extra[model.FieldCancelledAt] = cancelledAt

	if err = s.repo.UpdateStatus(ctx, id, booking.StatusID, model.StatusCancelled, extra); err != nil {
		if !errors.Is(err, model.ErrTransitionConflict) {
			log.Error().Err(err).Msg("failed to cancel booking")
		}

		return res, err //nolint:wrapcheck
	}

	s.invalidateBookingCaches(ctx, id)

	booking.StatusID = model.StatusCancelled
	booking.CancelReason = &reasonStr
	booking.RefundAmount = req.RefundAmount
	booking.CancelledAt = &cancelledAt
	res.FromModel(booking)

	scope.AddEvent("Booking cancelled: " + reasonStr)

	return res, nil
}

// Delete permanently removes a booking. Refused once a check-in record
// exists, mirroring the delete guard on the check-in table.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	hasCheckIn, err := s.checkinRepo.ExistForBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for check-in records")

		return fmt.Errorf("failed to check for check-in records: %w", err)
	}

	if hasCheckIn {
		return model.ErrDeleteForbidden //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// Schedule returns the active bookings for one room intersecting the
// requested window, for front-desk calendar views.
func (s *serviceImpl) Schedule(ctx context.Context, req dto.RoomScheduleRequest) (res dto.RoomScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Schedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, err := timezone.Parse(constant.DateOnlyFormat, req.FromDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid from date: %v", err)) //nolint:wrapcheck
	}

	to, err := timezone.Parse(constant.DateOnlyFormat, req.ToDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid to date: %v", err)) //nolint:wrapcheck
	}

	if !from.Before(to) {
		return res, model.ErrInvalidRange //nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	bookings, err := s.repo.ListActiveForRoom(ctx, req.RoomID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to list room schedule")

		return res, fmt.Errorf("failed to list room schedule: %w", err)
	}

	res.FromModels(req.RoomID, bookings)

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) modifiedFields(staffID string) map[string]any {
	return map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: staffID,
	}
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
	}()
}
