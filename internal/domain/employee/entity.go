package employee

import (
	"time"
)

type Employee struct {
	ID             string
	UserID         string
	AdminID        string
	OrganizationID string
	EmployeeCode   string
	FullName       string
	Gender         *Gender
	PhoneNumber    *string
	Address        *string
	DOB            *time.Time
	// JoiningDate is the lower bound for any classified attendance day.
	JoiningDate      time.Time
	ResignationDate  *time.Time
	EmploymentStatus EmploymentStatus
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// Policy assignments
	ShiftIDs         []string
	WeekOffPolicyIDs []string
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusResigned),
	string(EmploymentStatusTerminated),
}
