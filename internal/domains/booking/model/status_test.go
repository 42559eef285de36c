package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/model"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{"pending to confirmed", model.StatusPending, model.StatusConfirmed, true},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, true},
		{"pending to checked in", model.StatusPending, model.StatusCheckedIn, false},
		{"pending to checked out", model.StatusPending, model.StatusCheckedOut, false},
		{"confirmed to checked in", model.StatusConfirmed, model.StatusCheckedIn, true},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, true},
		{"confirmed to pending", model.StatusConfirmed, model.StatusPending, false},
		{"checked in to checked out", model.StatusCheckedIn, model.StatusCheckedOut, true},
		{"checked in to cancelled", model.StatusCheckedIn, model.StatusCancelled, false},
		{"checked out is terminal", model.StatusCheckedOut, model.StatusPending, false},
		{"checked out cannot cancel", model.StatusCheckedOut, model.StatusCancelled, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Active(t *testing.T) {
	assert.True(t, model.StatusPending.Active())
	assert.True(t, model.StatusConfirmed.Active())
	assert.True(t, model.StatusCheckedIn.Active())
	assert.False(t, model.StatusCheckedOut.Active())
	assert.False(t, model.StatusCancelled.Active())
}

func TestStatus_Valid(t *testing.T) {
	for id := 1; id <= 5; id++ {
		assert.True(t, model.Status(id).Valid())
	}

	assert.False(t, model.Status(0).Valid())
	assert.False(t, model.Status(6).Valid())
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus(2)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, status)

	_, err = model.ParseStatus(42)
	assert.Error(t, err)
}

func TestActiveStatuses(t *testing.T) {
	assert.Equal(t, []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn}, model.ActiveStatuses())
}

func TestBooking_Overlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	booking := model.Booking{
		CheckInDate:  day(10),
		CheckOutDate: day(15),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical window", day(10), day(15), true},
		{"fully inside", day(11), day(13), true},
		{"overlaps start", day(8), day(11), true},
		{"overlaps end", day(14), day(18), true},
		{"covers entirely", day(8), day(18), true},
		{"back to back before", day(5), day(10), false},
		{"back to back after", day(15), day(20), false},
		{"well before", day(1), day(5), false},
		{"well after", day(20), day(25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}
