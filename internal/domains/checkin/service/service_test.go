package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	kafkaMocks "inn/infras/kafka/mocks"
	"inn/infras/otel/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	bookingModel "inn/internal/domains/booking/model"
	checkinMocks "inn/internal/domains/checkin/mocks"
	"inn/internal/domains/checkin/model"
	"inn/internal/domains/checkin/model/dto"
	"inn/internal/domains/checkin/service"
	hkMocks "inn/internal/domains/housekeeping/mocks"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
	"inn/shared/timezone"
)

func newCheckInService(ctrl *gomock.Controller) (
	service.CheckIn,
	*checkinMocks.MockCheckIn,
	*bookingMocks.MockBooking,
	*hkMocks.MockTask,
	*kafkaMocks.MockClient,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := checkinMocks.NewMockCheckIn(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockTaskRepo := hkMocks.NewMockTask(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.CheckoutCompleted = "hotel.checkout.completed"

	svc := service.New(mockRepo, mockBookingRepo, mockTaskRepo, mockKafka, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockBookingRepo, mockTaskRepo, mockKafka, mockCache
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyStaffID, "staff-id-123")
}

func bookingWithStatus(status bookingModel.Status) bookingModel.Booking {
	checkIn, _ := timezone.Parse(constant.DateOnlyFormat, "2026-03-10")
	checkOut, _ := timezone.Parse(constant.DateOnlyFormat, "2026-03-12")

	return bookingModel.Booking{
		ID:           "booking-id-1",
		RoomID:       "room-id-1",
		CustomerID:   "customer-id-1",
		StaffID:      "staff-id-123",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		StatusID:     status,
	}
}

func TestCheckInService_ProcessCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBookingRepo, _, _, _ := newCheckInService(ctrl)

	req := dto.CheckInRequest{BookingID: "booking-id-1"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "confirmed booking checks in",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusConfirmed), nil)

				mockRepo.EXPECT().
					CreateForBooking(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "pending booking cannot check in",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusPending), nil)
			},
			wantErr: bookingModel.ErrInvalidTransition,
		},
		{
			name: "cancelled booking cannot check in",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusCancelled), nil)
			},
			wantErr: bookingModel.ErrInvalidTransition,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: errors.New("booking not found"),
		},
		{
			name: "concurrent check-in wins the transition",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusConfirmed), nil)

				mockRepo.EXPECT().
					CreateForBooking(gomock.Any(), gomock.Any()).
					Return(bookingModel.ErrTransitionConflict)
			},
			wantErr: bookingModel.ErrTransitionConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ProcessCheckIn(staffContext(), req)

			if tt.wantErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id-1", res.BookingID)
				assert.Equal(t, "room-id-1", res.RoomID)
				assert.NotEmpty(t, res.Arrival)
			}
		})
	}
}

func TestCheckInService_ProcessCheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBookingRepo, mockTaskRepo, mockKafka, _ := newCheckInService(ctrl)

	req := dto.CheckOutRequest{BookingID: "booking-id-1", Notes: "minibar restocked"}

	openCheckIn := model.CheckIn{
		ID:        "checkin-id-1",
		BookingID: "booking-id-1",
		RoomID:    "room-id-1",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "checked-in booking checks out",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusCheckedIn), nil)

				mockRepo.EXPECT().
					GetByBookingID(gomock.Any(), "booking-id-1").
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					CloseWithCheckout(gomock.Any(), gomock.Any()).
					Return(nil)

				mockTaskRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "hotel.checkout.completed", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cleaning task failure does not fail the departure",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusCheckedIn), nil)

				mockRepo.EXPECT().
					GetByBookingID(gomock.Any(), "booking-id-1").
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					CloseWithCheckout(gomock.Any(), gomock.Any()).
					Return(nil)

				mockTaskRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "hotel.checkout.completed", gomock.Any()).
					Return(errors.New("broker unreachable"))
			},
		},
		{
			name: "already checked out",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusCheckedOut), nil)
			},
			wantErr: model.ErrAlreadyCheckedOut,
		},
		{
			name: "pending booking cannot check out",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusPending), nil)
			},
			wantErr: bookingModel.ErrInvalidTransition,
		},
		{
			name: "no open check-in for the booking",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusCheckedIn), nil)

				mockRepo.EXPECT().
					GetByBookingID(gomock.Any(), "booking-id-1").
					Return(model.CheckIn{}, nil)
			},
			wantErr: model.ErrNotCheckedIn,
		},
		{
			name: "stay already closed in the repository",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingWithStatus(bookingModel.StatusCheckedIn), nil)

				mockRepo.EXPECT().
					GetByBookingID(gomock.Any(), "booking-id-1").
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					CloseWithCheckout(gomock.Any(), gomock.Any()).
					Return(model.ErrAlreadyCheckedOut)
			},
			wantErr: model.ErrAlreadyCheckedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ProcessCheckOut(staffContext(), req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				// A missing stay record is not-found; lifecycle refusals
				// are conflicts.
				if errors.Is(tt.wantErr, model.ErrNotCheckedIn) {
					assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "checkin-id-1", res.CheckInID)
				assert.Equal(t, "booking-id-1", res.BookingID)
			}
		})
	}
}

func TestCheckInService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _, _ := newCheckInService(ctrl)

	openCheckIn := model.CheckIn{ID: "checkin-id-1", BookingID: "booking-id-1", RoomID: "room-id-1"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "deleting reverts the booking and releases the room in one call",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					HasCheckOut(gomock.Any(), "checkin-id-1").
					Return(false, nil)

				// The booking and room identifiers must reach the
				// transactional delete so the stay can be re-opened.
				mockRepo.EXPECT().
					DeleteWithRevert(gomock.Any(), openCheckIn).
					Return(nil)
			},
		},
		{
			name: "delete refused once checked out",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					HasCheckOut(gomock.Any(), "checkin-id-1").
					Return(true, nil)
			},
			wantErr: model.ErrDeleteForbidden,
		},
		{
			name: "delete refused when a check-out lands concurrently",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					HasCheckOut(gomock.Any(), "checkin-id-1").
					Return(false, nil)

				mockRepo.EXPECT().
					DeleteWithRevert(gomock.Any(), openCheckIn).
					Return(model.ErrDeleteForbidden)
			},
			wantErr: model.ErrDeleteForbidden,
		},
		{
			name: "booking left checked-in state before the revert",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openCheckIn, nil)

				mockRepo.EXPECT().
					HasCheckOut(gomock.Any(), "checkin-id-1").
					Return(false, nil)

				mockRepo.EXPECT().
					DeleteWithRevert(gomock.Any(), openCheckIn).
					Return(bookingModel.ErrTransitionConflict)
			},
			wantErr: bookingModel.ErrTransitionConflict,
		},
		{
			name: "check-in not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CheckIn{}, nil)
			},
			wantErr: errors.New("check-in not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(staffContext(), "checkin-id-1")

			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, model.ErrDeleteForbidden) || errors.Is(tt.wantErr, bookingModel.ErrTransitionConflict):
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestCheckInService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _, mockCache := newCheckInService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss falls through to the repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CheckIn{ID: "checkin-id-1"}, nil)
			},
		},
		{
			name: "check-in not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CheckIn{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "checkin-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
