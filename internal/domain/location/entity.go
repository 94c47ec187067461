package location

import "time"

// Location is a geofenced office location. Clock-ins must fall inside the
// radius of some active location of the admin unless geofencing is disabled.
type Location struct {
	ID             string
	AdminID        string
	OrganizationID string
	Name           string
	Address        *string
	Latitude       float64
	Longitude      float64
	RadiusMeters   int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
