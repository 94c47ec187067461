package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/employee"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
	"github.com/samar-devp/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	log *slog.Logger
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, userRepo user.UserRepository, log *slog.Logger) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
		log:                log,
	}
}

// tenantFromContext extracts the caller's admin and organization ids from
// the access token claims.
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

// Create implements employee.EmployeeService. The login user and the
// employee profile are created atomically.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	adminID, organizationID, err := tenantFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	passwordHash := string(hash)

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		newUser, err := s.UserRepository.Create(txCtx, user.User{
			Email:          req.Email,
			PasswordHash:   &passwordHash,
			Role:           user.RoleEmployee,
			AdminID:        &adminID,
			OrganizationID: &organizationID,
			IsActive:       true,
		})
		if err != nil {
			return err
		}

		var gender *employee.Gender
		if req.Gender != nil {
			g := employee.Gender(*req.Gender)
			gender = &g
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:           newUser.ID,
			AdminID:          adminID,
			OrganizationID:   organizationID,
			EmployeeCode:     req.EmployeeCode,
			FullName:         req.FullName,
			Gender:           gender,
			PhoneNumber:      req.PhoneNumber,
			Address:          req.Address,
			JoiningDate:      joiningDate,
			EmploymentStatus: employee.EmploymentStatusActive,
			IsActive:         true,
		})
		if err != nil {
			return err
		}

		if len(req.ShiftIDs) > 0 {
			if err := s.EmployeeRepository.AssignShifts(txCtx, created.ID, req.ShiftIDs); err != nil {
				return err
			}
			created.ShiftIDs = req.ShiftIDs
		}
		if len(req.WeekOffPolicyIDs) > 0 {
			if err := s.EmployeeRepository.AssignWeekOffPolicies(txCtx, created.ID, req.WeekOffPolicyIDs); err != nil {
				return err
			}
			created.WeekOffPolicyIDs = req.WeekOffPolicyIDs
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.log.Info("employee created",
		slog.String("employee_id", created.ID),
		slog.String("admin_id", adminID),
	)

	return toEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.EmployeeRepository.Update(txCtx, id, adminID, req); err != nil {
			return err
		}
		if req.ShiftIDs != nil {
			if err := s.EmployeeRepository.AssignShifts(txCtx, id, req.ShiftIDs); err != nil {
				return err
			}
		}
		if req.WeekOffPolicyIDs != nil {
			if err := s.EmployeeRepository.AssignWeekOffPolicies(txCtx, id, req.WeekOffPolicyIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id, adminID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, adminID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	adminID, _, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	return s.EmployeeRepository.Delete(ctx, id, adminID)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	var gender *string
	if e.Gender != nil {
		g := string(*e.Gender)
		gender = &g
	}
	return employee.EmployeeResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Gender:           gender,
		PhoneNumber:      e.PhoneNumber,
		Address:          e.Address,
		JoiningDate:      e.JoiningDate.Format("2006-01-02"),
		EmploymentStatus: string(e.EmploymentStatus),
		IsActive:         e.IsActive,
		ShiftIDs:         e.ShiftIDs,
		WeekOffPolicyIDs: e.WeekOffPolicyIDs,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
