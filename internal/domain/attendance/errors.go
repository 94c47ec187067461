package attendance

import "errors"

var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have an open attendance session")
	ErrNotCheckedIn     = errors.New("you have not checked in yet")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidCheckOut    = errors.New("check-out must not be before check-in")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
