package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/checkin/model"
	"inn/shared/timezone"
)

func TestClassifyArrival(t *testing.T) {
	loc := timezone.GetLocation()
	scheduled := time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)

	tests := []struct {
		name       string
		actual     time.Time
		wantClass  model.Arrival
		wantDays   int
	}{
		{
			name:      "on time",
			actual:    time.Date(2026, time.March, 10, 14, 30, 0, 0, loc),
			wantClass: model.ArrivalOnTime,
			wantDays:  0,
		},
		{
			name:      "one day early",
			actual:    time.Date(2026, time.March, 9, 23, 59, 0, 0, loc),
			wantClass: model.ArrivalEarly,
			wantDays:  1,
		},
		{
			name:      "two days early",
			actual:    time.Date(2026, time.March, 8, 8, 0, 0, 0, loc),
			wantClass: model.ArrivalEarly,
			wantDays:  2,
		},
		{
			name:      "one day late",
			actual:    time.Date(2026, time.March, 11, 0, 1, 0, 0, loc),
			wantClass: model.ArrivalLate,
			wantDays:  1,
		},
		{
			name:      "three days late",
			actual:    time.Date(2026, time.March, 13, 18, 0, 0, 0, loc),
			wantClass: model.ArrivalLate,
			wantDays:  3,
		},
		{
			name:      "end of scheduled day is still on time",
			actual:    time.Date(2026, time.March, 10, 23, 59, 59, 0, loc),
			wantClass: model.ArrivalOnTime,
			wantDays:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, days := model.ClassifyArrival(scheduled, tt.actual)

			assert.Equal(t, tt.wantClass, class)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestArrival_String(t *testing.T) {
	assert.Equal(t, "early", model.ArrivalEarly.String())
	assert.Equal(t, "on_time", model.ArrivalOnTime.String())
	assert.Equal(t, "late", model.ArrivalLate.String())
}
