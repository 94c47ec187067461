package employee

import (
	"context"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, adminID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, adminID string, req UpdateEmployeeRequest) error
	List(ctx context.Context, adminID string, filter EmployeeFilter) ([]Employee, int64, error)
	Delete(ctx context.Context, id string, adminID string) error
	AssignShifts(ctx context.Context, id string, shiftIDs []string) error
	AssignWeekOffPolicies(ctx context.Context, id string, policyIDs []string) error
}
