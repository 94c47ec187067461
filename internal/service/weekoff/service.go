package weekoff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
)

type PolicyServiceImpl struct {
	weekoff.PolicyRepository
	log *slog.Logger
}

func NewPolicyService(policyRepo weekoff.PolicyRepository, log *slog.Logger) weekoff.PolicyService {
	return &PolicyServiceImpl{
		PolicyRepository: policyRepo,
		log:              log,
	}
}

func tenantFromContext(ctx context.Context) (adminID, organizationID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	adminID, _ = claims["admin_id"].(string)
	if adminID == "" {
		return "", "", user.ErrAdminAccessRequired
	}
	organizationID, _ = claims["organization_id"].(string)
	return adminID, organizationID, nil
}

// Create implements weekoff.PolicyService.
func (s *PolicyServiceImpl) Create(ctx context.Context, req weekoff.CreatePolicyRequest) (weekoff.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return weekoff.PolicyResponse{}, err
	}

	adminID, organizationID, err := tenantFromContext(ctx)
	if err != nil {
		return weekoff.PolicyResponse{}, err
	}

	created, err := s.PolicyRepository.Create(ctx, weekoff.Policy{
		AdminID:        adminID,
		OrganizationID: organizationID,
		Name:           req.Name,
		Weekdays:       req.Weekdays,
		WeekCycle:      req.WeekCycle,
		IsActive:       true,
	})
	if err != nil {
		return weekoff.PolicyResponse{}, err
	}

	s.log.Info("week-off policy created", slog.String("policy_id", created.ID))

	return toPolicyResponse(created), nil
}

// GetByID implements weekoff.PolicyService.
func (s *PolicyServiceImpl) GetByID(ctx context.Context, id string) (weekoff.PolicyResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return weekoff.PolicyResponse{}, err
	}

	p, err := s.PolicyRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return weekoff.PolicyResponse{}, err
	}
	return toPolicyResponse(p), nil
}

// List implements weekoff.PolicyService.
func (s *PolicyServiceImpl) List(ctx context.Context, activeOnly bool) ([]weekoff.PolicyResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	policies, err := s.PolicyRepository.List(ctx, adminID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]weekoff.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, toPolicyResponse(p))
	}
	return responses, nil
}

// Update implements weekoff.PolicyService.
func (s *PolicyServiceImpl) Update(ctx context.Context, req weekoff.UpdatePolicyRequest) (weekoff.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return weekoff.PolicyResponse{}, err
	}

	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return weekoff.PolicyResponse{}, err
	}

	existing, err := s.PolicyRepository.GetByID(ctx, req.ID, adminID)
	if err != nil {
		return weekoff.PolicyResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Weekdays != nil {
		existing.Weekdays = req.Weekdays
	}
	if req.WeekCycle != nil {
		existing.WeekCycle = req.WeekCycle
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.PolicyRepository.Update(ctx, existing); err != nil {
		return weekoff.PolicyResponse{}, err
	}
	return toPolicyResponse(existing), nil
}

// Delete implements weekoff.PolicyService.
func (s *PolicyServiceImpl) Delete(ctx context.Context, id string) error {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	return s.PolicyRepository.Delete(ctx, id, adminID)
}

func toPolicyResponse(p weekoff.Policy) weekoff.PolicyResponse {
	return weekoff.PolicyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Weekdays:  p.Weekdays,
		WeekCycle: p.WeekCycle,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
