package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrMissingProfile       = errors.New("employee profile is incomplete")
	ErrEmployeeInactive     = errors.New("employee is not active")
	ErrInvalidJoiningDate   = errors.New("joining date is invalid")
	ErrUnauthorized         = errors.New("unauthorized to access this employee")
)
