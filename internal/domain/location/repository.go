package location

import (
	"context"
)

type LocationRepository interface {
	Create(ctx context.Context, newLocation Location) (Location, error)
	GetByID(ctx context.Context, id string, adminID string) (Location, error)
	List(ctx context.Context, adminID string, activeOnly bool) ([]Location, error)
	Update(ctx context.Context, updated Location) error
	Delete(ctx context.Context, id string, adminID string) error
}
