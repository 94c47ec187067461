package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type weekOffPolicyRepositoryImpl struct {
	db *database.DB
}

func NewWeekOffPolicyRepository(db *database.DB) weekoff.PolicyRepository {
	return &weekOffPolicyRepositoryImpl{db: db}
}

const weekOffColumns = `id, admin_id, organization_id, name, weekdays, week_cycle,
	is_active, created_at, updated_at`

func scanWeekOffPolicy(row pgx.Row) (weekoff.Policy, error) {
	var p weekoff.Policy
	err := row.Scan(
		&p.ID, &p.AdminID, &p.OrganizationID, &p.Name, &p.Weekdays, &p.WeekCycle,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements weekoff.PolicyRepository.
func (r *weekOffPolicyRepositoryImpl) Create(ctx context.Context, newPolicy weekoff.Policy) (weekoff.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO week_off_policies (admin_id, organization_id, name, weekdays, week_cycle, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + weekOffColumns

	p, err := scanWeekOffPolicy(q.QueryRow(ctx, query,
		newPolicy.AdminID,
		newPolicy.OrganizationID,
		newPolicy.Name,
		newPolicy.Weekdays,
		newPolicy.WeekCycle,
		newPolicy.IsActive,
	))
	if err != nil {
		return weekoff.Policy{}, err
	}
	return p, nil
}

// GetByID implements weekoff.PolicyRepository.
func (r *weekOffPolicyRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (weekoff.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + weekOffColumns + ` FROM week_off_policies WHERE id = $1 AND admin_id = $2`

	p, err := scanWeekOffPolicy(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return weekoff.Policy{}, weekoff.ErrPolicyNotFound
		}
		return weekoff.Policy{}, err
	}
	return p, nil
}

// List implements weekoff.PolicyRepository.
func (r *weekOffPolicyRepositoryImpl) List(ctx context.Context, adminID string, activeOnly bool) ([]weekoff.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + weekOffColumns + ` FROM week_off_policies WHERE admin_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name, id`

	rows, err := q.Query(ctx, query, adminID)
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
	return policies, rows.Err()
}

// GetAssignedToEmployee implements weekoff.PolicyRepository.
func (r *weekOffPolicyRepositoryImpl) GetAssignedToEmployee(ctx context.Context, employeeID string) ([]weekoff.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT p.id, p.admin_id, p.organization_id, p.name, p.weekdays, p.week_cycle,
			   p.is_active, p.created_at, p.updated_at
		FROM week_off_policies p
		JOIN employee_week_off_policies ep ON ep.policy_id = p.id
		WHERE ep.employee_id = $1 AND p.is_active = TRUE
		ORDER BY p.id
	`

	rows, err := q.Query(ctx, query, employeeID)
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
	return policies, rows.Err()
}

// Update implements weekoff.PolicyRepository.
func (r *weekOffPolicyRepositoryImpl) Update(ctx context.Context, updated weekoff.Policy) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE week_off_policies
		SET name = $1, weekdays = $2, week_cycle = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5 AND admin_id = $6
	`

	tag, err := q.Exec(ctx, query,
		updated.Name,
		updated.Weekdays,
		updated.WeekCycle,
		updated.IsActive,
		updated.ID,
		updated.AdminID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return weekoff.ErrPolicyNotFound
	}
	return nil
}

// Delete implements weekoff.PolicyRepository.
func (r *weekOffPolicyRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM week_off_policies WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return weekoff.ErrPolicyNotFound
	}
	return nil
}
