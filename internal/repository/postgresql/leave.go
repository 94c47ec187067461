package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `id, admin_id, organization_id, name, code, category, is_paid, is_active, created_at, updated_at`

func scanLeaveType(row pgx.Row) (leave.Type, error) {
	var t leave.Type
	err := row.Scan(
		&t.ID, &t.AdminID, &t.OrganizationID, &t.Name, &t.Code, &t.Category,
		&t.IsPaid, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, newType leave.Type) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (admin_id, organization_id, name, code, category, is_paid, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveTypeColumns

	t, err := scanLeaveType(q.QueryRow(ctx, query,
		newType.AdminID,
		newType.OrganizationID,
		newType.Name,
		newType.Code,
		newType.Category,
		newType.IsPaid,
		newType.IsActive,
	))
	if err != nil {
		return leave.Type{}, err
	}
	return t, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE id = $1 AND admin_id = $2`

	t, err := scanLeaveType(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Type{}, leave.ErrLeaveTypeNotFound
		}
		return leave.Type{}, err
	}
	return t, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context, adminID string, activeOnly bool) ([]leave.Type, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE admin_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name, id`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.Type
	for rows.Next() {
		t, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, updated leave.Type) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $1, code = $2, category = $3, is_paid = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6 AND admin_id = $7
	`

	tag, err := q.Exec(ctx, query,
		updated.Name,
		updated.Code,
		updated.Category,
		updated.IsPaid,
		updated.IsActive,
		updated.ID,
		updated.AdminID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

type leaveApplicationRepositoryImpl struct {
	db *database.DB
}

func NewLeaveApplicationRepository(db *database.DB) leave.ApplicationRepository {
	return &leaveApplicationRepositoryImpl{db: db}
}

const leaveApplicationSelect = `
	SELECT la.id, la.user_id, la.admin_id, la.organization_id, la.leave_type_id,
		   la.from_date, la.to_date, la.duration_type, la.status, la.reason,
		   la.approved_by, la.approved_at, la.created_at, la.updated_at,
		   lt.id, lt.admin_id, lt.organization_id, lt.name, lt.code, lt.category,
		   lt.is_paid, lt.is_active, lt.created_at, lt.updated_at
	FROM leave_applications la
	JOIN leave_types lt ON lt.id = la.leave_type_id
`

func scanLeaveApplication(row pgx.Row) (leave.Application, error) {
	var a leave.Application
	err := row.Scan(
		&a.ID, &a.UserID, &a.AdminID, &a.OrganizationID, &a.LeaveTypeID,
		&a.FromDate, &a.ToDate, &a.DurationType, &a.Status, &a.Reason,
		&a.ApprovedBy, &a.ApprovedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.Type.ID, &a.Type.AdminID, &a.Type.OrganizationID, &a.Type.Name,
		&a.Type.Code, &a.Type.Category, &a.Type.IsPaid, &a.Type.IsActive,
		&a.Type.CreatedAt, &a.Type.UpdatedAt,
	)
	return a, err
}

// Create implements leave.ApplicationRepository.
func (r *leaveApplicationRepositoryImpl) Create(ctx context.Context, newApplication leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_applications (
			user_id, admin_id, organization_id, leave_type_id,
			from_date, to_date, duration_type, status, reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	created := newApplication
	err := q.QueryRow(ctx, query,
		newApplication.UserID,
		newApplication.AdminID,
		newApplication.OrganizationID,
		newApplication.LeaveTypeID,
		newApplication.FromDate,
		newApplication.ToDate,
		newApplication.DurationType,
		newApplication.Status,
		newApplication.Reason,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return leave.Application{}, err
	}
	return created, nil
}

// GetByID implements leave.ApplicationRepository.
func (r *leaveApplicationRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)
	query := leaveApplicationSelect + ` WHERE la.id = $1 AND la.admin_id = $2`

	a, err := scanLeaveApplication(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, err
	}
	return a, nil
}

// List implements leave.ApplicationRepository.
func (r *leaveApplicationRepositoryImpl) List(ctx context.Context, adminID string, filter leave.ApplicationFilter) ([]leave.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"la.admin_id = $1"}
	args := []interface{}{adminID}
	n := 2

	if filter.UserID != nil {
		where = append(where, fmt.Sprintf("la.user_id = $%d", n))
		args = append(args, *filter.UserID)
		n++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("la.status = $%d", n))
		args = append(args, *filter.Status)
		n++
	}
	if filter.FromDate != nil {
		where = append(where, fmt.Sprintf("la.to_date >= $%d", n))
		args = append(args, *filter.FromDate)
		n++
	}
	if filter.ToDate != nil {
		where = append(where, fmt.Sprintf("la.from_date <= $%d", n))
		args = append(args, *filter.ToDate)
		n++
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_applications la WHERE ` + whereClause
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
		leaveApplicationSelect+` WHERE %s ORDER BY la.from_date DESC, la.id LIMIT $%d OFFSET $%d`,
		whereClause, n, n+1,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applications []leave.Application
	for rows.Next() {
		a, err := scanLeaveApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// GetApprovedInRange implements leave.ApplicationRepository. The ordering
// backs the overlap tie-break: earliest from_date wins, then smallest id.
func (r *leaveApplicationRepositoryImpl) GetApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)
	query := leaveApplicationSelect + `
		WHERE la.user_id = $1 AND la.status = $2
		  AND la.from_date <= $3 AND la.to_date >= $4
		ORDER BY la.from_date, la.id
	`

	rows, err := q.Query(ctx, query, userID, leave.StatusApproved, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []leave.Application
	for rows.Next() {
		a, err := scanLeaveApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// UpdateStatus implements leave.ApplicationRepository.
func (r *leaveApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, adminID string, status leave.Status, approvedBy string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_applications
		SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND admin_id = $4
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrApplicationNotFound
	}
	return nil
}

// Delete implements leave.ApplicationRepository.
func (r *leaveApplicationRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrApplicationNotFound
	}
	return nil
}
