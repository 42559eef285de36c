package dto

import (
	"time"

	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID       string `json:"room_id"        validate:"required"`
	CustomerID   string `json:"customer_id"    validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

// ToModel builds a new Pending booking. Stay dates carry date-only semantics
// and are normalized to midnight in the application timezone.
func (c *CreateBookingRequest) ToModel(staffID string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	now := timezone.Now()

	return model.Booking{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		CustomerID:   c.CustomerID,
		StaffID:      staffID,
		BookingDate:  now,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		StatusID:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  staffID,
			ModifiedBy: staffID,
		},
	}, nil
}

// UpdateBookingRequest patches a Pending or Confirmed booking. Date fields
// are parsed by the service so the availability re-check can compare the new
// window against the old one.
type UpdateBookingRequest struct {
	RoomID       string `db:"room_id"        json:"room_id"        validate:"omitempty"`
	CustomerID   string `db:"customer_id"    json:"customer_id"    validate:"omitempty"`
	CheckInDate  string `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty"`
}

type CancelBookingRequest struct {
	Reason       string   `json:"reason"        validate:"required,oneof=customer_request no_show room_issue payment_failed emergency other"`
	RefundAmount *float64 `json:"refund_amount" validate:"omitempty,gte=0"`
}

type BookingResponse struct {
	ID           string   `json:"id"`
	RoomID       string   `json:"room_id"`
	CustomerID   string   `json:"customer_id"`
	StaffID      string   `json:"staff_id"`
	BookingDate  string   `json:"booking_date"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	StatusID     int      `json:"status_id"`
	Status       string   `json:"status"`
	CancelReason *string  `json:"cancel_reason,omitempty"`
	RefundAmount *float64 `json:"refund_amount,omitempty"`
	CancelledAt  *string  `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.CustomerID = mod.CustomerID
	r.StaffID = mod.StaffID
	r.BookingDate = timezone.Format(mod.BookingDate, constant.DateFormat)
	r.CheckInDate = timezone.Format(mod.CheckInDate, constant.DateOnlyFormat)
	r.CheckOutDate = timezone.Format(mod.CheckOutDate, constant.DateOnlyFormat)
	r.StatusID = int(mod.StatusID)
	r.Status = mod.StatusID.String()
	r.CancelReason = mod.CancelReason
	r.RefundAmount = mod.RefundAmount

	if mod.CancelledAt != nil {
		cancelledAt := timezone.Format(*mod.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type RoomScheduleRequest struct {
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	FromDate string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date"   validate:"required,datetime=2006-01-02"`
}

// RoomScheduleResponse lists the active bookings for one room that intersect
// the requested window, ordered by check-in date.
type RoomScheduleResponse struct {
	RoomID   string            `json:"room_id"`
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *RoomScheduleResponse) FromModels(roomID string, models []model.Booking) {
	r.RoomID = roomID
	r.Total = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CancelFields is what a successful cancellation persists alongside the
// Cancelled status.
type CancelFields struct {
	Reason       model.CancelReason
	RefundAmount *float64
	CancelledAt  time.Time
}
