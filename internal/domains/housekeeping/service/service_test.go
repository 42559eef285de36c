package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	hkMocks "inn/internal/domains/housekeeping/mocks"
	"inn/internal/domains/housekeeping/model"
	"inn/internal/domains/housekeeping/model/dto"
	"inn/internal/domains/housekeeping/service"
	roomMocks "inn/internal/domains/room/mocks"
	roomModel "inn/internal/domains/room/model"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
)

func newTaskService(ctrl *gomock.Controller) (
	service.Task,
	*hkMocks.MockTask,
	*roomMocks.MockRoom,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := hkMocks.NewMockTask(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockRoomRepo, mockCache
}

func pendingCleaningTask() model.Task {
	return model.Task{
		ID:       "task-id-1",
		RoomID:   "room-id-1",
		TaskType: model.TaskTypeCleaning,
		Status:   model.StatusPending,
	}
}

func TestTaskService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, _ := newTaskService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateTaskRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "completing a cleaning task releases the room",
			req:  dto.UpdateTaskRequest{Status: model.StatusDone},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingCleaningTask(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateRoomStatus(gomock.Any(), "room-id-1", roomModel.StatusAvailable, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "progress update does not touch the room",
			req:  dto.UpdateTaskRequest{Status: model.StatusInProgress},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingCleaningTask(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "completing a maintenance task does not touch the room",
			req:  dto.UpdateTaskRequest{Status: model.StatusDone},
			setupMock: func() {
				task := pendingCleaningTask()
				task.TaskType = model.TaskTypeMaintenance

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(task, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "already done cleaning task does not release twice",
			req:  dto.UpdateTaskRequest{Status: model.StatusDone, Notes: "rechecked"},
			setupMock: func() {
				task := pendingCleaningTask()
				task.Status = model.StatusDone

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(task, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty update request",
			req:       dto.UpdateTaskRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "task not found",
			req:  dto.UpdateTaskRequest{Status: model.StatusDone},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Task{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room release failure surfaces",
			req:  dto.UpdateTaskRequest{Status: model.StatusDone},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingCleaningTask(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateRoomStatus(gomock.Any(), "room-id-1", roomModel.StatusAvailable, gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "staff-id-123")
			err := svc.Update(ctx, tt.req, "task-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTaskService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingCleaningTask(), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "task not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Task{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "task-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
