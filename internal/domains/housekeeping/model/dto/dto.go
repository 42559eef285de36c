package dto

import (
	"inn/internal/domains/housekeeping/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID     string `json:"room_id"     validate:"required,uuid"`
	TaskType   string `json:"task_type"   validate:"required,oneof=cleaning maintenance inspection"`
	Notes      string `json:"notes"       validate:"omitempty,max=500"`
	AssignedTo string `json:"assigned_to" validate:"omitempty,uuid"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	task := model.Task{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		TaskType: c.TaskType,
		Status:   model.StatusPending,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.AssignedTo != "" {
		task.AssignedTo = &c.AssignedTo
	}

	return task
}

type UpdateTaskRequest struct {
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=pending in_progress done"`
	Notes      string `db:"notes"       json:"notes"       validate:"omitempty,max=500"`
	AssignedTo string `db:"assigned_to" json:"assigned_to" validate:"omitempty,uuid"`
}

type TaskResponse struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	CheckOutID *string `json:"check_out_id,omitempty"`
	TaskType   string  `json:"task_type"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CheckOutID = model.CheckOutID
	r.TaskType = model.TaskType
	r.Status = model.Status
	r.Notes = model.Notes
	r.AssignedTo = model.AssignedTo
	r.Metadata.FromModel(model.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
