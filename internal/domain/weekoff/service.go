package weekoff

import (
	"context"
)

type PolicyService interface {
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	GetByID(ctx context.Context, id string) (PolicyResponse, error)
	List(ctx context.Context, activeOnly bool) ([]PolicyResponse, error)
	Update(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
	Delete(ctx context.Context, id string) error
}
