package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	s3Mocks "inn/infras/s3/mocks"
	roomMocks "inn/internal/domains/room/mocks"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	cacheMocks "inn/shared/cache/mocks"
)

func newRoomService(ctrl *gomock.Controller) (
	service.Room,
	*roomMocks.MockRoom,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCache
}

func TestRoomService_FindAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newRoomService(ctrl)

	availableRooms := []model.Room{
		{ID: "room-id-1", Number: "101", Floor: 1, Price: 120},
		{ID: "room-id-2", Number: "204", Floor: 2, Price: 180},
	}

	tests := []struct {
		name      string
		req       dto.AvailableRoomsRequest
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "rooms found for a valid window",
			req: dto.AvailableRoomsRequest{
				CheckInDate:  "2026-03-10",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(availableRooms, nil)
			},
			wantTotal: 2,
		},
		{
			name: "cache hit skips the repository",
			req: dto.AvailableRoomsRequest{
				CheckInDate:  "2026-03-10",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "no rooms available",
			req: dto.AvailableRoomsRequest{
				CheckInDate:  "2026-03-10",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Room{}, nil)
			},
			wantTotal: 0,
		},
		{
			name: "invalid check-in date",
			req: dto.AvailableRoomsRequest{
				CheckInDate:  "10-03-2026",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out not after check-in",
			req: dto.AvailableRoomsRequest{
				CheckInDate:  "2026-03-12",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.AvailableRoomsRequest{
				CheckInDate:  "2026-03-10",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.FindAvailable(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.Total)
				assert.Len(t, res.Rooms, tt.wantTotal)
			}
		})
	}
}

func TestRoomService_GetTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "room types returned",
			setupMock: func() {
				mockRepo.EXPECT().
					GetTypes(gomock.Any()).
					Return([]model.RoomType{{ID: "type-id-1", Name: "Deluxe"}}, nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetTypes(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetTypes(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res)
			}
		})
	}
}

func TestRoomService_IsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomService(ctrl)

	validReq := dto.RoomAvailabilityRequest{
		RoomID:       "room-id-1",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
	}

	tests := []struct {
		name          string
		req           dto.RoomAvailabilityRequest
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "room is free for the window",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					IsAvailable(gomock.Any(), "room-id-1", gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantAvailable: true,
		},
		{
			name: "room is taken for the window",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					IsAvailable(gomock.Any(), "room-id-1", gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantAvailable: false,
		},
		{
			name: "invalid check-in date format",
			req: dto.RoomAvailabilityRequest{
				RoomID:       "room-id-1",
				CheckInDate:  "10-03-2026",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out not after check-in",
			req: dto.RoomAvailabilityRequest{
				RoomID:       "room-id-1",
				CheckInDate:  "2026-03-12",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "room does not exist",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					IsAvailable(gomock.Any(), "room-id-1", gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.IsAvailable(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.RoomID, res.RoomID)
				assert.Equal(t, tt.wantAvailable, res.Available)
			}
		})
	}
}
