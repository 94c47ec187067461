package location

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/location"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
)

type LocationServiceImpl struct {
	location.LocationRepository
	log *slog.Logger
}

func NewLocationService(locationRepo location.LocationRepository, log *slog.Logger) location.LocationService {
	return &LocationServiceImpl{
		LocationRepository: locationRepo,
		log:                log,
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

// Create implements location.LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	adminID, organizationID, err := tenantFromContext(ctx)
	if err != nil {
		return location.LocationResponse{}, err
	}

	created, err := s.LocationRepository.Create(ctx, location.Location{
		AdminID:        adminID,
		OrganizationID: organizationID,
		Name:           req.Name,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		RadiusMeters:   req.RadiusMeters,
		IsActive:       true,
	})
	if err != nil {
		return location.LocationResponse{}, err
	}

	s.log.Info("location created", slog.String("location_id", created.ID))

	return toLocationResponse(created), nil
}

// GetByID implements location.LocationService.
func (s *LocationServiceImpl) GetByID(ctx context.Context, id string) (location.LocationResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return location.LocationResponse{}, err
	}

	l, err := s.LocationRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return toLocationResponse(l), nil
}

// List implements location.LocationService.
func (s *LocationServiceImpl) List(ctx context.Context, activeOnly bool) ([]location.LocationResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := s.LocationRepository.List(ctx, adminID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, toLocationResponse(l))
	}
	return responses, nil
}

// Update implements location.LocationService.
func (s *LocationServiceImpl) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return location.LocationResponse{}, err
	}

	existing, err := s.LocationRepository.GetByID(ctx, req.ID, adminID)
	if err != nil {
		return location.LocationResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Latitude != nil {
		existing.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		existing.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		existing.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.LocationRepository.Update(ctx, existing); err != nil {
		return location.LocationResponse{}, err
	}
	return toLocationResponse(existing), nil
}

// Delete implements location.LocationService.
func (s *LocationServiceImpl) Delete(ctx context.Context, id string) error {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	return s.LocationRepository.Delete(ctx, id, adminID)
}

func toLocationResponse(l location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:           l.ID,
		Name:         l.Name,
		Address:      l.Address,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		RadiusMeters: l.RadiusMeters,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
