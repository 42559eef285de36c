package service

import (
	"context"
	"errors"
	"fmt"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	bookingModel "inn/internal/domains/booking/model"
	bookingRepo "inn/internal/domains/booking/repository"
	"inn/internal/domains/checkin/model"
	"inn/internal/domains/checkin/model/dto"
	"inn/internal/domains/checkin/repository"
	hkModel "inn/internal/domains/housekeeping/model"
	hkRepo "inn/internal/domains/housekeeping/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCheckIn    = "checkin:get"
	cacheGetAllCheckIn = "checkin:gets"
	cacheCountCheckIn  = "checkin:count"
)

// CheckIn processes arrivals and departures. Opening a stay requires a
// Confirmed booking; closing one requires an open check-in. Both writes are
// transactional in the repository, and a departure hands the bill off to the
// payment pipeline over Kafka.
type CheckIn interface {
	ProcessCheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	ProcessCheckOut(ctx context.Context, req dto.CheckOutRequest) (dto.CheckOutResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckInsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CheckInResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.CheckIn
	bookingRepo bookingRepo.Booking
	taskRepo    hkRepo.Task
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.CheckIn, bookingRepo bookingRepo.Booking, taskRepo hkRepo.Task, kafkaClient kafka.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) CheckIn {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		taskRepo:    taskRepo,
		kafka:       kafkaClient,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) ProcessCheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.ProcessCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if !booking.StatusID.CanTransitionTo(bookingModel.StatusCheckedIn) {
		return res, bookingModel.ErrInvalidTransition //nolint:wrapcheck
	}

	now := timezone.Now()
	arrival, days := model.ClassifyArrival(booking.CheckInDate, now)

	if arrival != model.ArrivalOnTime {
		log.Info().
			Str("bookingID", booking.ID).
			Str("arrival", arrival.String()).
			Int("days", days).
			Msg("guest arrival deviates from booked check-in date")
	}

	checkIn := model.CheckIn{
		ID:          uuid.NewString(),
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		StaffID:     staffID,
		CheckInTime: now,
		Arrival:     arrival,
		ArrivalDays: days,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  staffID,
			ModifiedBy: staffID,
		},
	}

	if err = s.repo.CreateForBooking(ctx, checkIn); err != nil {
		if !errors.Is(err, bookingModel.ErrTransitionConflict) {
			log.Error().Err(err).Msg("failed to process check-in")
		}

		return res, err //nolint:wrapcheck
	}

	s.invalidateCaches(ctx)

	scope.AddEvent("Guest checked in for booking " + booking.ID)
	res.FromModel(checkIn)

	return res, nil
}

func (s *serviceImpl) ProcessCheckOut(ctx context.Context, req dto.CheckOutRequest) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.ProcessCheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.StatusID == bookingModel.StatusCheckedOut {
		return res, model.ErrAlreadyCheckedOut //nolint:wrapcheck
	}

	if !booking.StatusID.CanTransitionTo(bookingModel.StatusCheckedOut) {
		return res, bookingModel.ErrInvalidTransition //nolint:wrapcheck
	}

	checkIn, err := s.repo.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if checkIn.ID == constant.Empty {
		return res, model.ErrNotCheckedIn //nolint:wrapcheck
	}

	now := timezone.Now()
	checkOut := model.CheckOut{
		ID:           uuid.NewString(),
		CheckInID:    checkIn.ID,
		BookingID:    booking.ID,
		RoomID:       booking.RoomID,
		StaffID:      staffID,
		CheckOutTime: now,
		Notes:        req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  staffID,
			ModifiedBy: staffID,
		},
	}

	if err = s.repo.CloseWithCheckout(ctx, checkOut); err != nil {
		if !errors.Is(err, model.ErrAlreadyCheckedOut) && !errors.Is(err, bookingModel.ErrTransitionConflict) {
			log.Error().Err(err).Msg("failed to process check-out")
		}

		return res, err //nolint:wrapcheck
	}

	// The stay is closed at this point. The cleaning task and the payment
	// handoff are follow-ups; a failure there is logged, not rolled back.
	task := hkModel.NewCleaningTask(booking.RoomID, checkOut.ID, staffID)
	if err := s.taskRepo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Str("roomID", booking.RoomID).Msg("failed to create cleaning task after check-out")
	}

	s.publishCheckoutCompleted(ctx, booking.ID, checkOut.ID, booking.RoomID, staffID)
	s.invalidateCaches(ctx)

	scope.AddEvent("Guest checked out for booking " + booking.ID)
	res.FromModel(checkOut)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckInsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCheckIn, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for check-ins")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-ins")

		return res, fmt.Errorf("failed to count check-ins: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-ins")

		return res, fmt.Errorf("failed to get check-ins: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-ins to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCheckIn, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-ins")

		return res, fmt.Errorf("failed to count check-ins: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCheckIn, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for check-in")

		return res, nil
	}

	checkIn, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in")

		return res, fmt.Errorf("failed to get check-in: %w", err)
	}

	if checkIn.ID == constant.Empty {
		return res, failure.NotFound("check-in not found") //nolint:wrapcheck
	}

	res.FromModel(checkIn)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in to cache")
		}
	}()

	return res, nil
}

// Delete undoes a mistaken arrival: the check-in record is removed and the
// owning booking reverts to Confirmed with the room released, so the guest
// can be checked in again. Refused once the stay has been checked out.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in")

		return fmt.Errorf("failed to get check-in: %w", err)
	}

	if checkIn.ID == constant.Empty {
		return failure.NotFound("check-in not found") //nolint:wrapcheck
	}

	checkedOut, err := s.repo.HasCheckOut(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for check-out record")

		return fmt.Errorf("failed to check for check-out record: %w", err)
	}

	if checkedOut {
		return model.ErrDeleteForbidden //nolint:wrapcheck
	}

	if err = s.repo.DeleteWithRevert(ctx, checkIn); err != nil {
		log.Error().Err(err).Msg("failed to delete check-in")

		if errors.Is(err, model.ErrDeleteForbidden) || errors.Is(err, bookingModel.ErrTransitionConflict) {
			return err //nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete check-in: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishCheckoutCompleted(ctx context.Context, bookingID, checkoutID, roomID, staffID string) {
	event := dto.CheckoutCompletedEvent{
		BookingID:  bookingID,
		CheckoutID: checkoutID,
		RoomID:     roomID,
		StaffID:    staffID,
	}

	message := kafka.Message{
		Key:   bookingID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.CheckoutCompleted, message); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to publish checkout completed event")
	}
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetCheckIn)
		shared.InvalidateCaches(c, s.cache, cacheGetAllCheckIn)
		shared.InvalidateCaches(c, s.cache, cacheCountCheckIn)
		shared.InvalidateCaches(c, s.cache, "booking")
		shared.InvalidateCaches(c, s.cache, "room:available")
	}()
}
