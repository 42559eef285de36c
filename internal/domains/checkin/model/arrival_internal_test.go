package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysApart(t *testing.T) {
	// US Eastern springs forward on 2026-03-08, so the day before the
	// scheduled check-in is only 23 hours long.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := []struct {
		name      string
		scheduled time.Time
		actual    time.Time
		want      int
	}{
		{
			name:      "one day early across spring forward",
			scheduled: time.Date(2026, time.March, 9, 0, 0, 0, 0, loc),
			actual:    time.Date(2026, time.March, 8, 0, 0, 0, 0, loc),
			want:      1,
		},
		{
			name:      "one day late across fall back",
			scheduled: time.Date(2026, time.October, 31, 0, 0, 0, 0, loc),
			actual:    time.Date(2026, time.November, 1, 0, 0, 0, 0, loc),
			want:      -1,
		},
		{
			name:      "same day",
			scheduled: time.Date(2026, time.March, 8, 0, 0, 0, 0, loc),
			actual:    time.Date(2026, time.March, 8, 0, 0, 0, 0, loc),
			want:      0,
		},
		{
			name:      "multiple days spanning the transition",
			scheduled: time.Date(2026, time.March, 12, 0, 0, 0, 0, loc),
			actual:    time.Date(2026, time.March, 7, 0, 0, 0, 0, loc),
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysApart(tt.scheduled, tt.actual))
		})
	}
}
