package shift

import (
	"context"
)

type ShiftRepository interface {
	Create(ctx context.Context, newShift Shift) (Shift, error)
	GetByID(ctx context.Context, id string, adminID string) (Shift, error)
	List(ctx context.Context, adminID string, activeOnly bool) ([]Shift, error)
	GetAssignedToEmployee(ctx context.Context, employeeID string) ([]Shift, error)
	Update(ctx context.Context, updated Shift) error
	Delete(ctx context.Context, id string, adminID string) error
}
