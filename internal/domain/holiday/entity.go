package holiday

import "time"

type Holiday struct {
	ID             string
	AdminID        string
	OrganizationID string
	Name           string
	HolidayDate    time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
