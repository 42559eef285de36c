package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "check_ins"
	EntityName = "check_in"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldRoomID      = "room_id"
	FieldStaffID     = "staff_id"
	FieldCheckInTime = "check_in_time"
	FieldArrival     = "arrival"
	FieldArrivalDays = "arrival_days"

	CheckOutTableName  = "check_outs"
	CheckOutEntityName = "check_out"

	FieldCheckInID    = "check_in_id"
	FieldCheckOutTime = "check_out_time"
	FieldNotes        = "notes"
)

type CheckIn struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	RoomID      string    `db:"room_id"`
	StaffID     string    `db:"staff_id"`
	CheckInTime time.Time `db:"check_in_time"`
	Arrival     Arrival   `db:"arrival"`
	ArrivalDays int       `db:"arrival_days"`
	model.Metadata
}

type CheckOut struct {
	ID           string    `db:"id"`
	CheckInID    string    `db:"check_in_id"`
	BookingID    string    `db:"booking_id"`
	RoomID       string    `db:"room_id"`
	StaffID      string    `db:"staff_id"`
	CheckOutTime time.Time `db:"check_out_time"`
	Notes        string    `db:"notes"`
	model.Metadata
}
