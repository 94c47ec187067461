package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/holiday"
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type snapshotRepositoryImpl struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) report.SnapshotRepository {
	return &snapshotRepositoryImpl{db: db}
}

// LoadMonthSnapshot reads every input of the monthly computation inside one
// read-only transaction, so attendance, leaves and policies come from a
// single consistent view. Without this a leave approved mid-load could be
// counted together with an absence for the same boundary date.
func (r *snapshotRepositoryImpl) LoadMonthSnapshot(ctx context.Context, employeeID string, month, year int, scope report.Scope) (report.Snapshot, error) {
	var snap report.Snapshot

	err := WithReadTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		emp, err := scanEmployee(q.QueryRow(txCtx,
			employeeSelect+` WHERE e.id = $1 AND e.deleted_at IS NULL`, employeeID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return report.ErrEmployeeNotFound
			}
			return err
		}
		snap.Employee = emp

		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)

		shiftRows, err := q.Query(txCtx, `
			SELECT s.id, s.admin_id, s.organization_id, s.name, s.start_time, s.end_time,
				   s.break_minutes, s.is_night_shift, s.duration_minutes, s.is_active,
				   s.created_at, s.updated_at
			FROM shifts s
			JOIN employee_shifts es ON es.shift_id = s.id
			WHERE es.employee_id = $1 AND s.is_active = TRUE
			ORDER BY s.start_time, s.id
		`, employeeID)
		if err != nil {
			return err
		}
		defer shiftRows.Close()
		for shiftRows.Next() {
			s, err := scanShift(shiftRows)
			if err != nil {
				return err
			}
			snap.Shifts = append(snap.Shifts, s)
		}
		if err := shiftRows.Err(); err != nil {
			return err
		}

		snap.WeekOffPolicies, err = r.loadWeekOffPolicies(txCtx, emp.ID, emp.AdminID, emp.OrganizationID, scope)
		if err != nil {
			return err
		}

		snap.Holidays, err = r.loadHolidays(txCtx, emp.AdminID, emp.OrganizationID, scope, first, last)
		if err != nil {
			return err
		}

		leaveRows, err := q.Query(txCtx, leaveApplicationSelect+`
			WHERE la.user_id = $1 AND la.status = 'approved'
			  AND la.from_date <= $2 AND la.to_date >= $3
			ORDER BY la.from_date, la.id
		`, emp.UserID, last, first)
		if err != nil {
			return err
		}
		defer leaveRows.Close()
		for leaveRows.Next() {
			a, err := scanLeaveApplication(leaveRows)
			if err != nil {
				return err
			}
			snap.Leaves = append(snap.Leaves, a)
		}
		if err := leaveRows.Err(); err != nil {
			return err
		}

		segRows, err := q.Query(txCtx, `
			SELECT `+attendanceColumns+`
			FROM attendance_segments
			WHERE user_id = $1 AND date BETWEEN $2 AND $3
			ORDER BY date, check_in NULLS LAST, id
		`, emp.UserID, first, last)
		if err != nil {
			return err
		}
		defer segRows.Close()
		for segRows.Next() {
			a, err := scanAttendance(segRows)
			if err != nil {
				return err
			}
			snap.Segments = append(snap.Segments, a)
		}
		return segRows.Err()
	})
	if err != nil {
		return report.Snapshot{}, err
	}

	return snap, nil
}

// loadWeekOffPolicies returns the employee's assigned active policies; when
// no assignment exists, it falls back to all active policies in the selected
// scope.
func (r *snapshotRepositoryImpl) loadWeekOffPolicies(ctx context.Context, employeeID, adminID, organizationID string, scope report.Scope) ([]weekoff.Policy, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT p.id, p.admin_id, p.organization_id, p.name, p.weekdays, p.week_cycle,
			   p.is_active, p.created_at, p.updated_at
		FROM week_off_policies p
		JOIN employee_week_off_policies ep ON ep.policy_id = p.id
		WHERE ep.employee_id = $1 AND p.is_active = TRUE
		ORDER BY p.id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []weekoff.Policy
	for rows.Next() {
		p, err := scanWeekOffPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(policies) > 0 {
		return policies, nil
	}

	query := `SELECT ` + weekOffColumns + ` FROM week_off_policies WHERE admin_id = $1 AND is_active = TRUE ORDER BY id`
	arg := adminID
	if scope == report.ScopeOrganization {
		query = `SELECT ` + weekOffColumns + ` FROM week_off_policies WHERE organization_id = $1 AND is_active = TRUE ORDER BY id`
		arg = organizationID
	}

	fallbackRows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer fallbackRows.Close()

	for fallbackRows.Next() {
		p, err := scanWeekOffPolicy(fallbackRows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, fallbackRows.Err()
}

func (r *snapshotRepositoryImpl) loadHolidays(ctx context.Context, adminID, organizationID string, scope report.Scope, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE admin_id = $1 AND holiday_date BETWEEN $2 AND $3 ORDER BY holiday_date`
	arg := adminID
	if scope == report.ScopeOrganization {
		query = `SELECT ` + holidayColumns + ` FROM holidays WHERE organization_id = $1 AND holiday_date BETWEEN $2 AND $3 ORDER BY holiday_date`
		arg = organizationID
	}

	rows, err := q.Query(ctx, query, arg, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}
