package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldNumber       = "number"
	FieldFloor        = "floor"
	FieldRoomTypeID   = "room_type_id"
	FieldRoomStatusID = "room_status_id"
	FieldPrice        = "price"
	FieldImage        = "image"
	FieldActive       = "active"
)

// Housekeeping statuses. These describe the physical room, not the booking:
// an Available room can still be fully booked for a future window.
const (
	StatusAvailable   = 1
	StatusOccupied    = 2
	StatusCleaning    = 3
	StatusMaintenance = 4
)

type Room struct {
	ID           string  `db:"id"`
	Number       string  `db:"number"`
	Floor        int     `db:"floor"`
	RoomTypeID   string  `db:"room_type_id"`
	RoomStatusID int     `db:"room_status_id"`
	Price        float64 `db:"price"`
	Image        string  `db:"image"`
	Active       bool    `db:"active"`
	model.Metadata
}
