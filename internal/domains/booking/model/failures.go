package model

import (
	"net/http"

	"inn/shared/failure"
)

// Sentinel failures for the booking lifecycle, in the style of the shared
// failure package. Handlers map them to HTTP codes via failure.GetCode;
// callers distinguish them with errors.Is.
var (
	ErrInvalidRange = &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "check-in date must be strictly before check-out date",
	}
	ErrRoomUnavailable = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "room is not available for the requested dates",
	}
	ErrInvalidTransition = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "booking status does not permit the requested operation",
	}
	ErrDeleteForbidden = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "booking has a check-in record and can no longer be deleted",
	}
	ErrTransitionConflict = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "booking was modified concurrently, retry the operation",
	}
)
