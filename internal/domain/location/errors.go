package location

import "errors"

var (
	ErrLocationNotFound     = errors.New("location not found")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrUnauthorized         = errors.New("unauthorized to access this location")
)
