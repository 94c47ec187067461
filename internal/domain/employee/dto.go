package employee

import (
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName         string   `json:"full_name"`
	EmployeeCode     string   `json:"employee_code"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Gender           *string  `json:"gender,omitempty"`
	PhoneNumber      *string  `json:"phone_number,omitempty"`
	Address          *string  `json:"address,omitempty"`
	JoiningDate      string   `json:"joining_date"`
	ShiftIDs         []string `json:"shift_ids,omitempty"`
	WeekOffPolicyIDs []string `json:"week_off_policy_ids,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be in YYYY-MM-DD format",
		})
	}
	if r.Gender != nil && *r.Gender != string(Male) && *r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male or Female",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName         *string  `json:"full_name,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	PhoneNumber      *string  `json:"phone_number,omitempty"`
	Address          *string  `json:"address,omitempty"`
	JoiningDate      *string  `json:"joining_date,omitempty"`
	EmploymentStatus *string  `json:"employment_status,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
	ShiftIDs         []string `json:"shift_ids,omitempty"`
	WeekOffPolicyIDs []string `json:"week_off_policy_ids,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, EmploymentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of active, resigned, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

type EmployeeResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	EmployeeCode     string     `json:"employee_code"`
	FullName         string     `json:"full_name"`
	Gender           *string    `json:"gender,omitempty"`
	PhoneNumber      *string    `json:"phone_number,omitempty"`
	Address          *string    `json:"address,omitempty"`
	JoiningDate      string     `json:"joining_date"`
	EmploymentStatus string     `json:"employment_status"`
	IsActive         bool       `json:"is_active"`
	ShiftIDs         []string   `json:"shift_ids"`
	WeekOffPolicyIDs []string   `json:"week_off_policy_ids"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
