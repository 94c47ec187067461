package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, admin_id, organization_id, name, start_time, end_time,
	break_minutes, is_night_shift, duration_minutes, is_active, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.AdminID, &s.OrganizationID, &s.Name, &s.StartTime, &s.EndTime,
		&s.BreakMinutes, &s.IsNightShift, &s.DurationMinutes, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO shifts (
			admin_id, organization_id, name, start_time, end_time,
			break_minutes, is_night_shift, duration_minutes, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + shiftColumns

	s, err := scanShift(q.QueryRow(ctx, query,
		newShift.AdminID,
		newShift.OrganizationID,
		newShift.Name,
		newShift.StartTime,
		newShift.EndTime,
		newShift.BreakMinutes,
		newShift.IsNightShift,
		newShift.DurationMinutes,
		newShift.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, err
	}
	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1 AND admin_id = $2`

	s, err := scanShift(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, adminID string, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE admin_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY start_time, id`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// GetAssignedToEmployee implements shift.ShiftRepository. Ordered by start
// time then id so downstream tie-breaks are stable.
func (r *shiftRepositoryImpl) GetAssignedToEmployee(ctx context.Context, employeeID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT s.id, s.admin_id, s.organization_id, s.name, s.start_time, s.end_time,
			   s.break_minutes, s.is_night_shift, s.duration_minutes, s.is_active,
			   s.created_at, s.updated_at
		FROM shifts s
		JOIN employee_shifts es ON es.shift_id = s.id
		WHERE es.employee_id = $1 AND s.is_active = TRUE
		ORDER BY s.start_time, s.id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, updated shift.Shift) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, break_minutes = $4,
			is_night_shift = $5, duration_minutes = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8 AND admin_id = $9
	`

	tag, err := q.Exec(ctx, query,
		updated.Name,
		updated.StartTime,
		updated.EndTime,
		updated.BreakMinutes,
		updated.IsNightShift,
		updated.DurationMinutes,
		updated.IsActive,
		updated.ID,
		updated.AdminID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}
