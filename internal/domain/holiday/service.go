package holiday

import (
	"context"
)

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetByID(ctx context.Context, id string) (HolidayResponse, error)
	List(ctx context.Context, year int) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
