package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldCustomerID   = "customer_id"
	FieldStaffID      = "staff_id"
	FieldBookingDate  = "booking_date"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatusID     = "status_id"
	FieldCancelReason = "cancel_reason"
	FieldRefundAmount = "refund_amount"
	FieldCancelledAt  = "cancelled_at"
)

// Booking is the root entity of a stay. Status transitions are owned by the
// booking service; nothing else writes status_id.
type Booking struct {
	ID           string     `db:"id"`
	RoomID       string     `db:"room_id"`
	CustomerID   string     `db:"customer_id"`
	StaffID      string     `db:"staff_id"`
	BookingDate  time.Time  `db:"booking_date"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate time.Time  `db:"check_out_date"`
	StatusID     Status     `db:"status_id"`
	CancelReason *string    `db:"cancel_reason"`
	RefundAmount *float64   `db:"refund_amount"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	model.Metadata
}

// Overlaps reports whether the booking's stay window intersects
// [checkIn, checkOut) under half-open interval semantics. Back-to-back stays
// sharing a boundary date do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}
