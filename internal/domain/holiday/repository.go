package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, newHoliday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string, adminID string) (Holiday, error)
	List(ctx context.Context, adminID string, year int) ([]Holiday, error)
	ListInRange(ctx context.Context, adminID string, from, to time.Time) ([]Holiday, error)
	Update(ctx context.Context, updated Holiday) error
	Delete(ctx context.Context, id string, adminID string) error
}
