package model

import (
	"math"
	"time"

	"inn/shared/timezone"
)

// Arrival classifies a guest's actual arrival against the booked check-in
// date. The classification is informational only; an early or late arrival
// never blocks processing.
type Arrival string

const (
	ArrivalEarly  Arrival = "early"
	ArrivalOnTime Arrival = "on_time"
	ArrivalLate   Arrival = "late"
)

func (a Arrival) String() string {
	return string(a)
}

// ClassifyArrival compares the calendar day of the actual arrival with the
// scheduled check-in day, both evaluated in the application timezone.
// It returns the classification and the whole-day distance, which is zero
// for an on-time arrival.
func ClassifyArrival(scheduled, actual time.Time) (Arrival, int) {
	scheduledDay := midnight(scheduled)
	actualDay := midnight(actual)

	days := daysApart(scheduledDay, actualDay)

	switch {
	case days > 0:
		return ArrivalEarly, days
	case days < 0:
		return ArrivalLate, -days
	default:
		return ArrivalOnTime, 0
	}
}

// daysApart counts calendar days between two midnights. Rounding keeps the
// count a whole-day distance when a DST shift makes a day 23 or 25 hours.
func daysApart(scheduledDay, actualDay time.Time) int {
	return int(math.Round(scheduledDay.Sub(actualDay).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	t = timezone.ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timezone.GetLocation())
}
