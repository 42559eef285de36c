package model

import (
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldCheckOutID = "check_out_id"
	FieldTaskType   = "task_type"
	FieldStatus     = "status"
	FieldNotes      = "notes"
	FieldAssignedTo = "assigned_to"
)

const (
	TaskTypeCleaning    = "cleaning"
	TaskTypeMaintenance = "maintenance"
	TaskTypeInspection  = "inspection"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Task struct {
	ID         string  `db:"id"`
	RoomID     string  `db:"room_id"`
	CheckOutID *string `db:"check_out_id"`
	TaskType   string  `db:"task_type"`
	Status     string  `db:"status"`
	Notes      string  `db:"notes"`
	AssignedTo *string `db:"assigned_to"`
	gModel.Metadata
}

// NewCleaningTask builds the pending cleaning task raised automatically when
// a stay is checked out.
func NewCleaningTask(roomID, checkOutID, user string) Task {
	return Task{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		CheckOutID: &checkOutID,
		TaskType:   TaskTypeCleaning,
		Status:     StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
