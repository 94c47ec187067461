package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/samar-devp/workforce-backend-go/internal/domain/employee"
	"github.com/samar-devp/workforce-backend-go/internal/domain/location"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/utils"
	reportsvc "github.com/samar-devp/workforce-backend-go/internal/service/report"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	location.LocationRepository
	loc *time.Location
	log *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	locationRepo location.LocationRepository,
	loc *time.Location,
	log *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
		LocationRepository:   locationRepo,
		loc:                  loc,
		log:                  log,
	}
}

func callerFromContext(ctx context.Context) (userID, adminID, organizationID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ = claims["user_id"].(string)
	if userID == "" {
		return "", "", "", fmt.Errorf("user_id claim is missing")
	}
	adminID, _ = claims["admin_id"].(string)
	organizationID, _ = claims["organization_id"].(string)
	return userID, adminID, organizationID, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, adminID, organizationID, err := callerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, err = s.AttendanceRepository.GetOpenSegment(ctx, userID)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrNotCheckedIn) {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkGeofence(ctx, adminID, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	shifts, err := s.ShiftRepository.GetAssignedToEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().In(s.loc)
	chosen, lateMinutes := shift.Nearest(shifts, now)

	seg := attendance.Attendance{
		UserID:           userID,
		AdminID:          adminID,
		OrganizationID:   organizationID,
		Date:             time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc),
		CheckIn:          &now,
		Status:           attendance.StatusPresent,
		IsLate:           lateMinutes > 0,
		LateMinutes:      lateMinutes,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
	}
	if chosen != nil {
		seg.ShiftID = &chosen.ID
	}

	created, err := s.AttendanceRepository.Create(ctx, seg)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.log.Info("employee checked in",
		slog.String("user_id", userID),
		slog.Bool("is_late", created.IsLate),
		slog.Int("late_minutes", created.LateMinutes),
	)

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. Working minutes span
// check-in to check-out; for night shifts the early-exit window is anchored
// on the check-out's civil date.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, _, _, err := callerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	seg, err := s.AttendanceRepository.GetOpenSegment(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().In(s.loc)
	if seg.CheckIn != nil && now.Before(*seg.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidCheckOut
	}

	working, err := reportsvc.WorkingMinutes(*seg.CheckIn, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	seg.CheckOut = &now
	seg.TotalWorkingMinutes = working
	seg.CheckOutLatitude = &req.Latitude
	seg.CheckOutLongitude = &req.Longitude

	if seg.ShiftID != nil {
		sh, err := s.ShiftRepository.GetByID(ctx, *seg.ShiftID, seg.AdminID)
		if err == nil {
			breakMinutes := sh.BreakMinutes
			seg.BreakMinutes = &breakMinutes

			// A day shift ends on the segment's own date even when the
			// check-out slips past midnight; only a night shift ends on
			// the check-out's civil date.
			anchor := seg.Date
			if sh.IsNightShift {
				anchor = now
			}
			early := reportsvc.EarlyExitMinutes(now, sh.EndTime, anchor)
			seg.IsEarlyExit = early > 0
			seg.EarlyExitMinutes = early
		}
	}

	if err := s.AttendanceRepository.Update(ctx, seg); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.log.Info("employee checked out",
		slog.String("user_id", userID),
		slog.Bool("is_early_exit", seg.IsEarlyExit),
		slog.Int("early_exit_minutes", seg.EarlyExitMinutes),
	)

	return toAttendanceResponse(seg), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	_, adminID, _, err := callerFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	segments, total, err := s.AttendanceRepository.List(ctx, adminID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(segments))
	for _, seg := range segments {
		responses = append(responses, toAttendanceResponse(seg))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// checkGeofence passes when the admin has no active locations, otherwise
// requires the coordinates to fall inside some location's radius.
func (s *AttendanceServiceImpl) checkGeofence(ctx context.Context, adminID string, lat, lng float64) error {
	locations, err := s.LocationRepository.List(ctx, adminID, true)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		return nil
	}

	for _, l := range locations {
		distance := utils.CalculateHaversineDistance(lat, lng, l.Latitude, l.Longitude)
		if distance <= float64(l.RadiusMeters) {
			return nil
		}
	}
	return location.ErrOutsideAllowedRadius
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		Date:             a.Date.Format("2006-01-02"),
		CheckIn:          timePtrToString(a.CheckIn),
		CheckOut:         timePtrToString(a.CheckOut),
		ShiftID:          a.ShiftID,
		WorkingMinutes:   a.TotalWorkingMinutes,
		BreakMinutes:     a.BreakMinutes,
		Status:           string(a.Status),
		IsLate:           a.IsLate,
		LateMinutes:      a.LateMinutes,
		IsEarlyExit:      a.IsEarlyExit,
		EarlyExitMinutes: a.EarlyExitMinutes,
	}
}
