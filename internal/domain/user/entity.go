package user

import "time"

type Role string

const (
	RoleSystemOwner  Role = "system_owner" // Platform owner - full access across tenants
	RoleOrganization Role = "organization" // Organization account - manages its admins
	RoleAdmin        Role = "admin"        // Admin - manages employees, policies, attendance
	RoleEmployee     Role = "employee"     // Regular employee
)

var RoleValues = []string{
	string(RoleSystemOwner),
	string(RoleOrganization),
	string(RoleAdmin),
	string(RoleEmployee),
}

type User struct {
	ID             string
	Email          string
	PasswordHash   *string
	Role           Role
	AdminID        *string
	OrganizationID *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	EmployeeID *string
}

// IsSystemOwner checks if user is the platform owner
func (u *User) IsSystemOwner() bool {
	return u.Role == RoleSystemOwner
}

// IsOrganization checks if user is an organization account or above
func (u *User) IsOrganization() bool {
	return u.Role == RoleOrganization || u.Role == RoleSystemOwner
}

// IsAdmin checks if user is an admin or above
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsOrganization()
}

// CanManagePolicies checks if user can manage shift/week-off/holiday policies
func (u *User) CanManagePolicies() bool {
	return u.IsAdmin()
}
