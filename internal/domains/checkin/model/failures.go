package model

import (
	"net/http"

	"inn/shared/failure"
)

var (
	ErrNotCheckedIn = &failure.Failure{
		Code:    http.StatusNotFound,
		Message: "booking has no open check-in to close",
	}
	ErrAlreadyCheckedOut = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "stay has already been checked out",
	}
	ErrDeleteForbidden = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "check-in cannot be deleted once the stay is checked out",
	}
)
