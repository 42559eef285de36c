package dto

import (
	"inn/internal/domains/checkin/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/timezone"
)

type CheckInRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type CheckOutRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Notes     string `json:"notes"      validate:"omitempty,max=500"`
}

type CheckInResponse struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	RoomID      string `json:"room_id"`
	StaffID     string `json:"staff_id"`
	CheckInTime string `json:"check_in_time"`
	Arrival     string `json:"arrival"`
	ArrivalDays int    `json:"arrival_days"`
	gDto.Metadata
}

func (r *CheckInResponse) FromModel(model model.CheckIn) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.RoomID = model.RoomID
	r.StaffID = model.StaffID
	r.CheckInTime = timezone.Format(model.CheckInTime, constant.DateFormat)
	r.Arrival = model.Arrival.String()
	r.ArrivalDays = model.ArrivalDays
	r.Metadata.FromModel(model.Metadata)
}

type CheckOutResponse struct {
	ID           string `json:"id"`
	CheckInID    string `json:"check_in_id"`
	BookingID    string `json:"booking_id"`
	RoomID       string `json:"room_id"`
	StaffID      string `json:"staff_id"`
	CheckOutTime string `json:"check_out_time"`
	Notes        string `json:"notes,omitempty"`
}

func (r *CheckOutResponse) FromModel(model model.CheckOut) {
	r.ID = model.ID
	r.CheckInID = model.CheckInID
	r.BookingID = model.BookingID
	r.RoomID = model.RoomID
	r.StaffID = model.StaffID
	r.CheckOutTime = timezone.Format(model.CheckOutTime, constant.DateFormat)
	r.Notes = model.Notes
}

type GetCheckInsResponse struct {
	CheckIns  []CheckInResponse `json:"check_ins"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCheckInsResponse) FromModels(models []model.CheckIn, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CheckIns = make([]CheckInResponse, len(models))
	for i, mod := range models {
		r.CheckIns[i].FromModel(mod)
	}
}

// CheckoutCompletedEvent is the payment handoff published after a stay is
// closed. Consumers settle the bill; this service never computes charges.
type CheckoutCompletedEvent struct {
	BookingID  string `json:"booking_id"`
	CheckoutID string `json:"checkout_id"`
	RoomID     string `json:"room_id"`
	StaffID    string `json:"staff_id"`
}
