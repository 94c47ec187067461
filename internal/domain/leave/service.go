package leave

import (
	"context"
)

type LeaveService interface {
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)

	Apply(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error)
	GetApplication(ctx context.Context, id string) (ApplicationResponse, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationResponse, error)
	// Decide approves or rejects a pending application.
	Decide(ctx context.Context, id string, approve bool) error
}
