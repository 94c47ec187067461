package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveTypeRepository
	leave.ApplicationRepository
	log *slog.Logger
}

func NewLeaveService(typeRepo leave.LeaveTypeRepository, applicationRepo leave.ApplicationRepository, log *slog.Logger) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveTypeRepository:   typeRepo,
		ApplicationRepository: applicationRepo,
		log:                   log,
	}
}

func callerFromContext(ctx context.Context) (userID, adminID, organizationID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ = claims["user_id"].(string)
	adminID, _ = claims["admin_id"].(string)
	organizationID, _ = claims["organization_id"].(string)
	if adminID == "" {
		return "", "", "", user.ErrAdminAccessRequired
	}
	return userID, adminID, organizationID, nil
}

// CreateType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	_, adminID, organizationID, err := callerFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := s.LeaveTypeRepository.Create(ctx, leave.Type{
		AdminID:        adminID,
		OrganizationID: organizationID,
		Name:           req.Name,
		Code:           req.Code,
		Category:       leave.Category(req.Category),
		IsPaid:         req.IsPaid,
		IsActive:       true,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	s.log.Info("leave type created",
		slog.String("leave_type_id", created.ID),
		slog.String("category", string(created.Category)),
	)

	return toLeaveTypeResponse(created), nil
}

// ListTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	_, adminID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.LeaveTypeRepository.List(ctx, adminID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, toLeaveTypeResponse(t))
	}
	return responses, nil
}

// Apply implements leave.LeaveService. The caller applies for themselves;
// a range already covered by an approved leave is rejected.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.CreateApplicationRequest) (leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplicationResponse{}, err
	}

	userID, adminID, organizationID, err := callerFromContext(ctx)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID, adminID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	overlapping, err := s.ApplicationRepository.GetApprovedInRange(ctx, userID, from, to)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if len(overlapping) > 0 {
		return leave.ApplicationResponse{}, leave.ErrOverlappingApplication
	}

	created, err := s.ApplicationRepository.Create(ctx, leave.Application{
		UserID:         userID,
		AdminID:        adminID,
		OrganizationID: organizationID,
		LeaveTypeID:    req.LeaveTypeID,
		FromDate:       from,
		ToDate:         to,
		DurationType:   leave.DurationType(req.DurationType),
		Status:         leave.StatusPending,
		Reason:         req.Reason,
	})
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	created.Type = leaveType

	s.log.Info("leave application submitted",
		slog.String("application_id", created.ID),
		slog.String("user_id", userID),
		slog.String("from", req.FromDate),
		slog.String("to", req.ToDate),
	)

	return toApplicationResponse(created), nil
}

// GetApplication implements leave.LeaveService.
func (s *LeaveServiceImpl) GetApplication(ctx context.Context, id string) (leave.ApplicationResponse, error) {
	_, adminID, _, err := callerFromContext(ctx)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	a, err := s.ApplicationRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	return toApplicationResponse(a), nil
}

// ListApplications implements leave.LeaveService.
func (s *LeaveServiceImpl) ListApplications(ctx context.Context, filter leave.ApplicationFilter) (leave.ListApplicationResponse, error) {
	_, adminID, _, err := callerFromContext(ctx)
	if err != nil {
		return leave.ListApplicationResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	applications, total, err := s.ApplicationRepository.List(ctx, adminID, filter)
	if err != nil {
		return leave.ListApplicationResponse{}, err
	}

	responses := make([]leave.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, toApplicationResponse(a))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return leave.ListApplicationResponse{
		TotalCount:   total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
		Applications: responses,
	}, nil
}

// Decide implements leave.LeaveService. Only pending applications can be
// decided.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id string, approve bool) error {
	userID, adminID, _, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	a, err := s.ApplicationRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return err
	}
	if a.Status != leave.StatusPending {
		return leave.ErrApplicationNotPending
	}

	status := leave.StatusRejected
	if approve {
		status = leave.StatusApproved
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, id, adminID, status, userID); err != nil {
		return err
	}

	s.log.Info("leave application decided",
		slog.String("application_id", id),
		slog.String("status", string(status)),
		slog.String("decided_by", userID),
	)
	return nil
}

func toLeaveTypeResponse(t leave.Type) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:       t.ID,
		Name:     t.Name,
		Code:     t.Code,
		Category: string(t.Category),
		IsPaid:   t.IsPaid,
		IsActive: t.IsActive,
	}
}

func toApplicationResponse(a leave.Application) leave.ApplicationResponse {
	return leave.ApplicationResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		LeaveTypeID:  a.LeaveTypeID,
		LeaveCode:    a.Type.Code,
		Category:     string(a.Type.Category),
		IsPaid:       a.Type.IsPaid,
		FromDate:     a.FromDate.Format("2006-01-02"),
		ToDate:       a.ToDate.Format("2006-01-02"),
		DurationType: string(a.DurationType),
		Status:       string(a.Status),
		Reason:       a.Reason,
	}
}
