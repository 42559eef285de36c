package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/logger"
	gRepo "inn/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	CreateReserved(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateReserved(ctx context.Context, id, roomID string, checkIn, checkOut time.Time, fields map[string]any) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListActiveForRoom(ctx context.Context, roomID string, from, to time.Time) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to model.Status, extra map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func activeStatusIDs() []int {
	statuses := model.ActiveStatuses()
	ids := make([]int, len(statuses))

	for i, s := range statuses {
		ids[i] = int(s)
	}

	return ids
}

// CreateReserved performs the conflict-scan-and-insert as one transaction.
// The room row is locked first, so concurrent creates for the same room
// serialize and at most one of two overlapping requests can succeed.
func (repo *repositoryImpl) CreateReserved(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateReserved")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var roomID string

	err = tx.GetContext(ctx, &roomID, "SELECT id FROM rooms WHERE id = $1 FOR UPDATE", booking.RoomID)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	overlaps, err := repo.existsOverlapTx(ctx, tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, constant.Empty)
	if err != nil {
		return err
	}

	if overlaps {
		return model.ErrRoomUnavailable //nolint:wrapcheck
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking create: %w", err)
	}

	return nil
}

// UpdateReserved moves a booking onto a new room or stay window with the
// same serialization as CreateReserved: the target room row is locked, the
// conflict scan re-runs inside the transaction (excluding the booking's own
// reservation), and the patch only lands when the window is still free.
func (repo *repositoryImpl) UpdateReserved(ctx context.Context, id, roomID string, checkIn, checkOut time.Time, fields map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateReserved")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var lockedID string

	err = tx.GetContext(ctx, &lockedID, "SELECT id FROM rooms WHERE id = $1 FOR UPDATE", roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	overlaps, err := repo.existsOverlapTx(ctx, tx, roomID, checkIn, checkOut, id)
	if err != nil {
		return err
	}

	if overlaps {
		return model.ErrRoomUnavailable //nolint:wrapcheck
	}

	if err = repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) existsOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	return repo.existsOverlap(ctx, tx, roomID, checkIn, checkOut, excludeID)
}

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// existsOverlap reports whether any active booking for the room intersects
// [checkIn, checkOut). excludeID, when non-empty, leaves a booking's own
// reservation out of the scan.
func (repo *repositoryImpl) existsOverlap(ctx context.Context, q queryer, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = ?
		  AND status_id IN (?)
		  AND check_in_date < ?
		  AND check_out_date > ?`
	args := []any{roomID, activeStatusIDs(), checkOut, checkIn}

	if excludeID != constant.Empty {
		query += " AND id != ?"
		args = append(args, excludeID)
	}

	query += ")"

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to expand overlap query: %w", err)
	}

	exists := false
	if err := q.GetContext(ctx, &exists, q.Rebind(query), inArgs...); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return exists, nil
}

// ListActiveForRoom returns the active bookings for a room that intersect
// [from, to), ordered by stay start.
func (repo *repositoryImpl) ListActiveForRoom(ctx context.Context, roomID string, from, to time.Time) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListActiveForRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT * FROM bookings
		WHERE room_id = ?
		  AND status_id IN (?)
		  AND check_in_date < ?
		  AND check_out_date > ?
		ORDER BY check_in_date ASC`

	query, args, err := sqlx.In(query, roomID, activeStatusIDs(), to, from)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to expand active booking query: %w", err)
	}

	if err = repo.db.Read.SelectContext(ctx, &bookings, repo.db.Read.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list active bookings (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

// UpdateStatus moves a booking along a lifecycle edge with compare-and-swap
// semantics: the write only lands if the booking is still in the expected
// state. A missed swap surfaces as ErrTransitionConflict so callers can
// re-read and retry. extra fields are written in the same statement, keeping
// the transition all-or-nothing.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id string, from, to model.Status, extra map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	setClauses := []string{"status_id = :to_status"}
	args := map[string]any{
		"id":          id,
		"from_status": int(from),
		"to_status":   int(to),
	}

	for col, val := range extra {
		setClauses = append(setClauses, fmt.Sprintf("%s = :%s", col, col))
		args[col] = val
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = :id AND status_id = :from_status",
		model.TableName,
		strings.Join(setClauses, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return model.ErrTransitionConflict //nolint:wrapcheck
	}

	return nil
}
