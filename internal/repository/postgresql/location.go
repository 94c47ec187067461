package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/location"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

const locationColumns = `id, admin_id, organization_id, name, address, latitude, longitude,
	radius_meters, is_active, created_at, updated_at`

func scanLocation(row pgx.Row) (location.Location, error) {
	var l location.Location
	err := row.Scan(
		&l.ID, &l.AdminID, &l.OrganizationID, &l.Name, &l.Address,
		&l.Latitude, &l.Longitude, &l.RadiusMeters, &l.IsActive,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements location.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, newLocation location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO locations (admin_id, organization_id, name, address, latitude, longitude, radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + locationColumns

	l, err := scanLocation(q.QueryRow(ctx, query,
		newLocation.AdminID,
		newLocation.OrganizationID,
		newLocation.Name,
		newLocation.Address,
		newLocation.Latitude,
		newLocation.Longitude,
		newLocation.RadiusMeters,
		newLocation.IsActive,
	))
	if err != nil {
		return location.Location{}, err
	}
	return l, nil
}

// GetByID implements location.LocationRepository.
func (r *locationRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1 AND admin_id = $2`

	l, err := scanLocation(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, err
	}
	return l, nil
}

// List implements location.LocationRepository.
func (r *locationRepositoryImpl) List(ctx context.Context, adminID string, activeOnly bool) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + locationColumns + ` FROM locations WHERE admin_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name, id`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// Update implements location.LocationRepository.
func (r *locationRepositoryImpl) Update(ctx context.Context, updated location.Location) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE locations
		SET name = $1, address = $2, latitude = $3, longitude = $4,
			radius_meters = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7 AND admin_id = $8
	`

	tag, err := q.Exec(ctx, query,
		updated.Name,
		updated.Address,
		updated.Latitude,
		updated.Longitude,
		updated.RadiusMeters,
		updated.IsActive,
		updated.ID,
		updated.AdminID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return location.ErrLocationNotFound
	}
	return nil
}

// Delete implements location.LocationRepository.
func (r *locationRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return location.ErrLocationNotFound
	}
	return nil
}
