package attendance

import (
	"context"
)

type AttendanceService interface {
	// CheckIn opens a new attendance segment for the calling employee,
	// attaching the nearest assigned shift and computing late minutes.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	// CheckOut closes the caller's open segment and computes working and
	// early-exit minutes against the attached shift.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter Filter) (ListAttendanceResponse, error)
}
