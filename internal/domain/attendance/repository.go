package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance segments.
// All methods carry adminID to prevent cross-tenant data access.
type AttendanceRepository interface {
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string, adminID string) (Attendance, error)
	Update(ctx context.Context, updated Attendance) error
	List(ctx context.Context, adminID string, filter Filter) ([]Attendance, int64, error)
	// GetOpenSegment returns the user's latest segment without a check-out.
	GetOpenSegment(ctx context.Context, userID string) (Attendance, error)
	// GetByUserAndRange returns all segments for the user between the two
	// civil dates inclusive, ordered by date then check-in.
	GetByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)
	Delete(ctx context.Context, id string, adminID string) error
}
