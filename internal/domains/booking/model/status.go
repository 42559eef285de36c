package model

import "fmt"

// Status is the closed set of booking lifecycle states. The numeric values
// are persisted in status_id and must never be reused.
type Status int

const (
	StatusPending    Status = 1
	StatusConfirmed  Status = 2
	StatusCheckedIn  Status = 3
	StatusCheckedOut Status = 4
	StatusCancelled  Status = 5
)

var statusNames = map[Status]string{
	StatusPending:    "pending",
	StatusConfirmed:  "confirmed",
	StatusCheckedIn:  "checked_in",
	StatusCheckedOut: "checked_out",
	StatusCancelled:  "cancelled",
}

// transitions holds the only directed edges the lifecycle permits. Cancelled
// and CheckedOut are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// Valid reports whether s is one of the enumerated states.
func (s Status) Valid() bool {
	_, ok := statusNames[s]

	return ok
}

// Active reports whether the booking still occupies room inventory. Cancelled
// and checked-out bookings never block availability.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCheckedIn
}

// CanTransitionTo reports whether the edge s -> next exists in the lifecycle.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ActiveStatuses returns the states that hold room inventory, in persisted
// order. Used by the availability overlap scans.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn}
}

// ParseStatus maps a persisted status_id back to a Status.
func ParseStatus(id int) (Status, error) {
	s := Status(id)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown booking status id %d", id)
	}

	return s, nil
}
