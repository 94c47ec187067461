package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/employee"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.admin_id, e.organization_id, e.employee_code,
		   e.full_name, e.gender, e.phone_number, e.address, e.dob,
		   e.joining_date, e.resignation_date, e.employment_status,
		   e.is_active, e.created_at, e.updated_at, e.deleted_at,
		   COALESCE(s.shift_ids, '{}'), COALESCE(w.policy_ids, '{}')
	FROM employees e
	LEFT JOIN (
		SELECT employee_id, array_agg(shift_id::text ORDER BY shift_id) AS shift_ids
		FROM employee_shifts GROUP BY employee_id
	) s ON s.employee_id = e.id
	LEFT JOIN (
		SELECT employee_id, array_agg(policy_id::text ORDER BY policy_id) AS policy_ids
		FROM employee_week_off_policies GROUP BY employee_id
	) w ON w.employee_id = e.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e      employee.Employee
		gender *string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.AdminID, &e.OrganizationID, &e.EmployeeCode,
		&e.FullName, &gender, &e.PhoneNumber, &e.Address, &e.DOB,
		&e.JoiningDate, &e.ResignationDate, &e.EmploymentStatus,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.ShiftIDs, &e.WeekOffPolicyIDs,
	)
	if gender != nil {
		g := employee.Gender(*gender)
		e.Gender = &g
	}
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := employeeSelect + ` WHERE e.id = $1 AND e.admin_id = $2 AND e.deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := employeeSelect + ` WHERE e.user_id = $1 AND e.deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			user_id, admin_id, organization_id, employee_code, full_name,
			gender, phone_number, address, dob, joining_date,
			employment_status, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	created := newEmployee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.AdminID,
		newEmployee.OrganizationID,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Gender,
		newEmployee.PhoneNumber,
		newEmployee.Address,
		newEmployee.DOB,
		newEmployee.JoiningDate,
		newEmployee.EmploymentStatus,
		newEmployee.IsActive,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. Only the non-nil fields of
// the request are written.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, adminID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.FullName != nil {
		add("full_name", *req.FullName)
	}
	if req.Gender != nil {
		add("gender", *req.Gender)
	}
	if req.PhoneNumber != nil {
		add("phone_number", *req.PhoneNumber)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}
	if req.JoiningDate != nil {
		t, err := time.Parse("2006-01-02", *req.JoiningDate)
		if err != nil {
			return employee.ErrInvalidJoiningDate
		}
		add("joining_date", t)
	}
	if req.EmploymentStatus != nil {
		add("employment_status", *req.EmploymentStatus)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(
		`UPDATE employees SET %s WHERE id = $%d AND admin_id = $%d AND deleted_at IS NULL`,
		strings.Join(sets, ", "), n, n+1,
	)
	args = append(args, id, adminID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, adminID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"e.admin_id = $1", "e.deleted_at IS NULL"}
	args := []interface{}{adminID}
	n := 2

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", n, n))
		args = append(args, "%"+filter.Search+"%")
		n++
	}
	if filter.IsActive != nil {
		where = append(where, fmt.Sprintf("e.is_active = $%d", n))
		args = append(args, *filter.IsActive)
		n++
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + whereClause
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
		employeeSelect+` WHERE %s ORDER BY e.full_name LIMIT $%d OFFSET $%d`,
		whereClause, n, n+1,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Delete implements employee.EmployeeRepository. Soft delete.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees SET deleted_at = NOW(), is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND admin_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// AssignShifts implements employee.EmployeeRepository. Replaces the full
// assignment set.
func (r *employeeRepositoryImpl) AssignShifts(ctx context.Context, id string, shiftIDs []string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM employee_shifts WHERE employee_id = $1`, id); err != nil {
			return err
		}
		for _, shiftID := range shiftIDs {
			_, err := q.Exec(txCtx,
				`INSERT INTO employee_shifts (employee_id, shift_id) VALUES ($1, $2)`,
				id, shiftID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// AssignWeekOffPolicies implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AssignWeekOffPolicies(ctx context.Context, id string, policyIDs []string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM employee_week_off_policies WHERE employee_id = $1`, id); err != nil {
			return err
		}
		for _, policyID := range policyIDs {
			_, err := q.Exec(txCtx,
				`INSERT INTO employee_week_off_policies (employee_id, policy_id) VALUES ($1, $2)`,
				id, policyID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
