package leave

import "errors"

var (
	ErrLeaveTypeNotFound        = errors.New("leave type not found")
	ErrApplicationNotFound      = errors.New("leave application not found")
	ErrInvalidDateRange         = errors.New("from_date must not be after to_date")
	ErrApplicationNotPending    = errors.New("leave application has already been processed")
	ErrOverlappingApplication   = errors.New("an approved leave already covers part of this range")
	ErrUnauthorized             = errors.New("unauthorized to access this leave application")
)
