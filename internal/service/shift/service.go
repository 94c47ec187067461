package shift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	log *slog.Logger
}

func NewShiftService(shiftRepo shift.ShiftRepository, log *slog.Logger) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepo,
		log:             log,
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

// Create implements shift.ShiftService. Night-shift detection and duration
// are derived here, never taken from input.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	adminID, organizationID, err := tenantFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	start, _ := validator.IsValidTimeOfDay(req.StartTime)
	end, _ := validator.IsValidTimeOfDay(req.EndTime)

	newShift := shift.Shift{
		AdminID:        adminID,
		OrganizationID: organizationID,
		Name:           req.Name,
		StartTime:      start,
		EndTime:        end,
		BreakMinutes:   req.BreakMinutes,
		IsActive:       true,
	}
	if err := newShift.RecomputeDuration(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, newShift)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.log.Info("shift created",
		slog.String("shift_id", created.ID),
		slog.Bool("is_night_shift", created.IsNightShift),
		slog.Int("duration_minutes", created.DurationMinutes),
	)

	return toShiftResponse(created), nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	found, err := s.ShiftRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(found), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := s.ShiftRepository.List(ctx, adminID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// Update implements shift.ShiftService. The window is re-derived after every
// change so the stored duration never goes stale.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, req.ID, adminID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.StartTime != nil {
		start, _ := validator.IsValidTimeOfDay(*req.StartTime)
		existing.StartTime = start
	}
	if req.EndTime != nil {
		end, _ := validator.IsValidTimeOfDay(*req.EndTime)
		existing.EndTime = end
	}
	if req.BreakMinutes != nil {
		existing.BreakMinutes = *req.BreakMinutes
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := existing.RecomputeDuration(); err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := s.ShiftRepository.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(existing), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	return s.ShiftRepository.Delete(ctx, id, adminID)
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:              s.ID,
		Name:            s.Name,
		StartTime:       s.StartTime.Format("15:04"),
		EndTime:         s.EndTime.Format("15:04"),
		BreakMinutes:    s.BreakMinutes,
		IsNightShift:    s.IsNightShift,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
