package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/holiday"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	log *slog.Logger
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, log *slog.Logger) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
		log:               log,
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

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	adminID, organizationID, err := tenantFromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.HolidayDate)

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		AdminID:        adminID,
		OrganizationID: organizationID,
		Name:           req.Name,
		HolidayDate:    date,
		IsActive:       true,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	s.log.Info("holiday created",
		slog.String("holiday_id", created.ID),
		slog.String("date", req.HolidayDate),
	)

	return toHolidayResponse(created), nil
}

// GetByID implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetByID(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.HolidayRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toHolidayResponse(h), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = time.Now().Year()
	}

	holidays, err := s.HolidayRepository.List(ctx, adminID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}
	return responses, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.HolidayRepository.GetByID(ctx, req.ID, adminID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.HolidayDate != nil {
		date, _ := time.Parse("2006-01-02", *req.HolidayDate)
		existing.HolidayDate = date
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.HolidayRepository.Update(ctx, existing); err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toHolidayResponse(existing), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	return s.HolidayRepository.Delete(ctx, id, adminID)
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		HolidayDate: h.HolidayDate.Format("2006-01-02"),
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
