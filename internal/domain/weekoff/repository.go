package weekoff

import (
	"context"
)

type PolicyRepository interface {
	Create(ctx context.Context, newPolicy Policy) (Policy, error)
	GetByID(ctx context.Context, id string, adminID string) (Policy, error)
	List(ctx context.Context, adminID string, activeOnly bool) ([]Policy, error)
	GetAssignedToEmployee(ctx context.Context, employeeID string) ([]Policy, error)
	Update(ctx context.Context, updated Policy) error
	Delete(ctx context.Context, id string, adminID string) error
}
