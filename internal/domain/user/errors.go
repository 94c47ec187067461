package user

import "errors"

var (
	ErrUserNotFound              = errors.New("user not found")
	ErrUserEmailExists           = errors.New("email already registered")
	ErrInvalidEmailFormat        = errors.New("invalid email format")
	ErrInvalidPasswordLength     = errors.New("password must be at least 8 characters")
	ErrUserInactive              = errors.New("user account is inactive")
	ErrSystemOwnerAccessRequired = errors.New("system owner access required")
	ErrOrganizationAccessRequired = errors.New("organization access required")
	ErrAdminAccessRequired       = errors.New("admin access required")
	ErrInsufficientPermissions   = errors.New("insufficient permissions")
)
