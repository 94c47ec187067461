package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/holiday"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, admin_id, organization_id, name, holiday_date, is_active, created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.AdminID, &h.OrganizationID, &h.Name, &h.HolidayDate,
		&h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO holidays (admin_id, organization_id, name, holiday_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + holidayColumns

	h, err := scanHoliday(q.QueryRow(ctx, query,
		newHoliday.AdminID,
		newHoliday.OrganizationID,
		newHoliday.Name,
		newHoliday.HolidayDate,
		newHoliday.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1 AND admin_id = $2`

	h, err := scanHoliday(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, adminID string, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE admin_id = $1 AND EXTRACT(YEAR FROM holiday_date) = $2
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, adminID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListInRange implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListInRange(ctx context.Context, adminID string, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE admin_id = $1 AND holiday_date BETWEEN $2 AND $3
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, adminID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, updated holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE holidays
		SET name = $1, holiday_date = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4 AND admin_id = $5
	`

	tag, err := q.Exec(ctx, query,
		updated.Name,
		updated.HolidayDate,
		updated.IsActive,
		updated.ID,
		updated.AdminID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
