package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, user_id, admin_id, organization_id, date, check_in, check_out,
	shift_id, total_working_minutes, break_minutes, status,
	is_late, late_minutes, is_early_exit, early_exit_minutes,
	check_in_latitude, check_in_longitude, check_out_latitude, check_out_longitude,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.UserID, &a.AdminID, &a.OrganizationID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.ShiftID, &a.TotalWorkingMinutes, &a.BreakMinutes, &a.Status,
		&a.IsLate, &a.LateMinutes, &a.IsEarlyExit, &a.EarlyExitMinutes,
		&a.CheckInLatitude, &a.CheckInLongitude, &a.CheckOutLatitude, &a.CheckOutLongitude,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	if newAttendance.ID == "" {
		newAttendance.ID = uuid.New().String()
	}
	query := `
		INSERT INTO attendance_segments (
			id, user_id, admin_id, organization_id, date, check_in, check_out,
			shift_id, total_working_minutes, break_minutes, status,
			is_late, late_minutes, is_early_exit, early_exit_minutes,
			check_in_latitude, check_in_longitude, check_out_latitude, check_out_longitude
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.UserID,
		newAttendance.AdminID,
		newAttendance.OrganizationID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.ShiftID,
		newAttendance.TotalWorkingMinutes,
		newAttendance.BreakMinutes,
		newAttendance.Status,
		newAttendance.IsLate,
		newAttendance.LateMinutes,
		newAttendance.IsEarlyExit,
		newAttendance.EarlyExitMinutes,
		newAttendance.CheckInLatitude,
		newAttendance.CheckInLongitude,
		newAttendance.CheckOutLatitude,
		newAttendance.CheckOutLongitude,
	))
	if err != nil {
		return attendance.Attendance{}, err
	}
	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendance_segments WHERE id = $1 AND admin_id = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, updated attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE attendance_segments
		SET check_in = $1, check_out = $2, shift_id = $3,
			total_working_minutes = $4, break_minutes = $5, status = $6,
			is_late = $7, late_minutes = $8, is_early_exit = $9, early_exit_minutes = $10,
			check_out_latitude = $11, check_out_longitude = $12, updated_at = NOW()
		WHERE id = $13
	`

	tag, err := q.Exec(ctx, query,
		updated.CheckIn,
		updated.CheckOut,
		updated.ShiftID,
		updated.TotalWorkingMinutes,
		updated.BreakMinutes,
		updated.Status,
		updated.IsLate,
		updated.LateMinutes,
		updated.IsEarlyExit,
		updated.EarlyExitMinutes,
		updated.CheckOutLatitude,
		updated.CheckOutLongitude,
		updated.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, adminID string, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"admin_id = $1"}
	args := []interface{}{adminID}
	n := 2

	if filter.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", n))
		args = append(args, *filter.UserID)
		n++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", n))
		args = append(args, *filter.Status)
		n++
	}
	if filter.FromDate != nil {
		where = append(where, fmt.Sprintf("date >= $%d", n))
		args = append(args, *filter.FromDate)
		n++
	}
	if filter.ToDate != nil {
		where = append(where, fmt.Sprintf("date <= $%d", n))
		args = append(args, *filter.ToDate)
		n++
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_segments WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := fmt.Sprintf(
		`SELECT `+attendanceColumns+` FROM attendance_segments WHERE %s ORDER BY date DESC, check_in LIMIT $%d OFFSET $%d`,
		whereClause, n, n+1,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var segments []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		segments = append(segments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return segments, total, nil
}

// GetOpenSegment implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenSegment(ctx context.Context, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_segments
		WHERE user_id = $1 AND check_in IS NOT NULL AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// GetByUserAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_segments
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, check_in NULLS LAST, id
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		segments = append(segments, a)
	}
	return segments, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_segments WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
