package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inn/infras/otel"
	"inn/infras/postgres"
	bookingModel "inn/internal/domains/booking/model"
	"inn/internal/domains/checkin/model"
	roomModel "inn/internal/domains/room/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type CheckIn interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckIn, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CheckIn, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ExistForBooking(ctx context.Context, bookingID string) (bool, error)
	HasCheckOut(ctx context.Context, checkInID string) (bool, error)
	GetByBookingID(ctx context.Context, bookingID string) (model.CheckIn, error)
	CreateForBooking(ctx context.Context, checkIn model.CheckIn) error
	CloseWithCheckout(ctx context.Context, checkOut model.CheckOut) error
	DeleteWithRevert(ctx context.Context, checkIn model.CheckIn) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CheckIn]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CheckIn {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CheckIn](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ExistForBooking(ctx context.Context, bookingID string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.ExistForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", model.TableName, model.FieldBookingID)

	if err = repo.db.Read.GetContext(ctx, &exists, query, bookingID); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check for check-in record: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) HasCheckOut(ctx context.Context, checkInID string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.HasCheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", model.CheckOutTableName, model.FieldCheckInID)

	if err = repo.db.Read.GetContext(ctx, &exists, query, checkInID); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check for check-out record: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) GetByBookingID(ctx context.Context, bookingID string) (checkIn model.CheckIn, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.GetByBookingID")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TableName, model.FieldBookingID)

	err = repo.db.Read.GetContext(ctx, &checkIn, query, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return checkIn, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return checkIn, fmt.Errorf("failed to get check-in by booking: %w", err)
	}

	return checkIn, nil
}

// CreateForBooking opens a stay as one transaction: the booking is swapped
// from Confirmed to CheckedIn, the check-in record is inserted, and the room
// flips to Occupied. The swap is the guard; if the booking already left
// Confirmed, nothing is written.
func (repo *repositoryImpl) CreateForBooking(ctx context.Context, checkIn model.CheckIn) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.CreateForBooking")
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

	if err = repo.swapBookingStatus(ctx, tx, checkIn.BookingID, bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn); err != nil {
		return err
	}

	if err = repo.InsertTx(ctx, tx, checkIn); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.setRoomStatus(ctx, tx, checkIn.RoomID, roomModel.StatusOccupied); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit check-in: %w", err)
	}

	return nil
}

// CloseWithCheckout closes a stay as one transaction: the check-out record is
// inserted (the unique constraint on check_in_id rejects a second close), the
// booking is swapped from CheckedIn to CheckedOut, and the room flips to
// Cleaning for housekeeping.
func (repo *repositoryImpl) CloseWithCheckout(ctx context.Context, checkOut model.CheckOut) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.CloseWithCheckout")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.CheckOutEntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.insertCheckOut(ctx, tx, checkOut); err != nil {
		return err
	}

	if err = repo.swapBookingStatus(ctx, tx, checkOut.BookingID, bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut); err != nil {
		return err
	}

	if err = repo.setRoomStatus(ctx, tx, checkOut.RoomID, roomModel.StatusCleaning); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit check-out: %w", err)
	}

	return nil
}

// DeleteWithRevert undoes a mistaken arrival as one transaction: the
// check-in row is removed, the booking is swapped from CheckedIn back to
// Confirmed, and the room flips back to Available so the stay can be
// re-opened later. The delete is guarded against a concurrent check-out;
// once a check-out row exists the stay is closed and cannot be undone.
func (repo *repositoryImpl) DeleteWithRevert(ctx context.Context, checkIn model.CheckIn) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.DeleteWithRevert")
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

	res, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
			model.TableName, model.FieldID, model.CheckOutTableName, model.FieldCheckInID,
		),
		checkIn.ID,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete check-in: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return model.ErrDeleteForbidden //nolint:wrapcheck
	}

	if err = repo.swapBookingStatus(ctx, tx, checkIn.BookingID, bookingModel.StatusCheckedIn, bookingModel.StatusConfirmed); err != nil {
		return err
	}

	if err = repo.setRoomStatus(ctx, tx, checkIn.RoomID, roomModel.StatusAvailable); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit check-in delete: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) insertCheckOut(ctx context.Context, tx *sqlx.Tx, checkOut model.CheckOut) error {
	query := fmt.Sprintf(`INSERT INTO %s
		(id, check_in_id, booking_id, room_id, staff_id, check_out_time, notes, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :check_in_id, :booking_id, :room_id, :staff_id, :check_out_time, :notes, :created_at, :modified_at, :created_by, :modified_by)`,
		model.CheckOutTableName,
	)

	if _, err := tx.NamedExecContext(ctx, query, checkOut); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return model.ErrAlreadyCheckedOut //nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert check-out: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) swapBookingStatus(ctx context.Context, tx *sqlx.Tx, bookingID string, from, to bookingModel.Status) error {
	res, err := tx.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET status_id = $1 WHERE id = $2 AND status_id = $3", bookingModel.TableName),
		int(to), bookingID, int(from),
	)
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
		return bookingModel.ErrTransitionConflict //nolint:wrapcheck
	}

	return nil
}

func (repo *repositoryImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string, statusID int) error {
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET %s = $1 WHERE id = $2", roomModel.TableName, roomModel.FieldRoomStatusID),
		statusID, roomID,
	); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}
