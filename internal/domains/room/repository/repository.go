package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"inn/infras/otel"
	"inn/infras/postgres"
	bookingModel "inn/internal/domains/booking/model"
	"inn/internal/domains/room/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error)
	IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	UpdateRoomStatus(ctx context.Context, roomID string, statusID int, fields map[string]any) error
	GetTypes(ctx context.Context) ([]model.RoomType, error)
	GetStatuses(ctx context.Context) ([]model.RoomStatus, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailable returns active rooms with no booking that holds inventory
// over any part of [checkIn, checkOut). The interval is half-open, so a stay
// ending on checkIn does not conflict.
func (repo *repositoryImpl) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) (rooms []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT r.* FROM rooms r
		WHERE r.active = true
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status_id IN (?)
			  AND b.check_in_date < ?
			  AND b.check_out_date > ?
		  )
		ORDER BY r.number ASC`

	statuses := bookingModel.ActiveStatuses()
	ids := make([]int, len(statuses))

	for i, s := range statuses {
		ids[i] = int(s)
	}

	query, args, err := sqlx.In(query, ids, checkOut, checkIn)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to expand availability query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &rooms, repo.db.Read.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}

// IsAvailable reports whether one room is free for the whole half-open
// window [checkIn, checkOut). Cancelled and checked-out bookings never hold
// inventory.
func (repo *repositoryImpl) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.IsAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = ?
			  AND b.status_id IN (?)
			  AND b.check_in_date < ?
			  AND b.check_out_date > ?
		  )`

	statuses := bookingModel.ActiveStatuses()
	ids := make([]int, len(statuses))

	for i, s := range statuses {
		ids[i] = int(s)
	}

	query, args, err := sqlx.In(query, roomID, ids, checkOut, checkIn)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to expand availability query: %w", err)
	}

	if err = repo.db.Read.GetContext(ctx, &available, repo.db.Read.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return available, nil
}

// UpdateRoomStatus flips the housekeeping status of a room, optionally
// carrying audit fields in the same statement.
func (repo *repositoryImpl) UpdateRoomStatus(ctx context.Context, roomID string, statusID int, fields map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if fields == nil {
		fields = map[string]any{}
	}

	fields[model.FieldRoomStatusID] = statusID

	return repo.Update(ctx, fields, shared.FilterByID(roomID, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) GetTypes(ctx context.Context) (types []model.RoomType, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY name ASC", model.RoomTypeTableName)

	if err = repo.db.Read.SelectContext(ctx, &types, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	return types, nil
}

func (repo *repositoryImpl) GetStatuses(ctx context.Context) (statuses []model.RoomStatus, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetStatuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id ASC", model.RoomStatusTableName)

	if err = repo.db.Read.SelectContext(ctx, &statuses, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get room statuses: %w", err)
	}

	return statuses, nil
}
