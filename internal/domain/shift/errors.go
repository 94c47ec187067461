package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNameExists    = errors.New("shift name already exists")
	ErrInvalidShiftWindow = errors.New("shift window leaves no working time after break")
	ErrUnauthorized       = errors.New("unauthorized to access this shift")
)
