package leave

import (
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE TYPE DTOs
// ========================================

type CreateLeaveTypeRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
	IsPaid   bool   `json:"is_paid"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if !validator.IsInSlice(r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of earned, sick, casual, compensatory, lwp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// LEAVE APPLICATION DTOs
// ========================================

type CreateApplicationRequest struct {
	LeaveTypeID  string  `json:"leave_type_id"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	DurationType string  `json:"duration_type"`
	Reason       *string `json:"reason,omitempty"`
}

func (r *CreateApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}
	if okFrom && okTo && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must not be after to_date",
		})
	}

	if !validator.IsInSlice(r.DurationType, DurationTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_type",
			Message: "duration_type must be one of full_day, half_day, short_leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplicationFilter struct {
	UserID   *string
	Status   *string
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	Limit    int
}

type ApplicationResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	LeaveTypeID  string  `json:"leave_type_id"`
	LeaveCode    string  `json:"leave_code"`
	Category     string  `json:"category"`
	IsPaid       bool    `json:"is_paid"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	DurationType string  `json:"duration_type"`
	Status       string  `json:"status"`
	Reason       *string `json:"reason,omitempty"`
}

type ListApplicationResponse struct {
	TotalCount   int64                 `json:"total_count"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
	Applications []ApplicationResponse `json:"applications"`
}

type LeaveTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
	IsPaid   bool   `json:"is_paid"`
	IsActive bool   `json:"is_active"`
}
