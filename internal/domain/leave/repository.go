package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, newType Type) (Type, error)
	GetByID(ctx context.Context, id string, adminID string) (Type, error)
	List(ctx context.Context, adminID string, activeOnly bool) ([]Type, error)
	Update(ctx context.Context, updated Type) error
	Delete(ctx context.Context, id string, adminID string) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, newApplication Application) (Application, error)
	GetByID(ctx context.Context, id string, adminID string) (Application, error)
	List(ctx context.Context, adminID string, filter ApplicationFilter) ([]Application, int64, error)
	// GetApprovedInRange returns approved applications for the user whose
	// range overlaps [from, to], ordered by from_date then id.
	GetApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, adminID string, status Status, approvedBy string) error
	Delete(ctx context.Context, id string, adminID string) error
}
