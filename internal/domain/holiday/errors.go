package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("holiday already exists on this date")
	ErrUnauthorized    = errors.New("unauthorized to access this holiday")
)
