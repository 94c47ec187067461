package weekoff

import "errors"

var (
	ErrPolicyNotFound = errors.New("week-off policy not found")
	ErrInvalidWeekday = errors.New("invalid weekday name")
	ErrInvalidCycle   = errors.New("week cycle values must be between 1 and 5")
	ErrUnauthorized   = errors.New("unauthorized to access this week-off policy")
)
