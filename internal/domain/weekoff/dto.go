package weekoff

import (
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// WEEK-OFF POLICY DTOs
// ========================================

type CreatePolicyRequest struct {
	Name      string   `json:"name"`
	Weekdays  []string `json:"weekdays"`
	WeekCycle []int    `json:"week_cycle,omitempty"`
}

func (r *CreatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Weekdays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekdays",
			Message: "at least one weekday is required",
		})
	}
	for _, d := range r.Weekdays {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekdays",
				Message: "weekdays must be full English weekday names",
			})
			break
		}
	}
	for _, w := range r.WeekCycle {
		if w < 1 || w > 5 {
			errs = append(errs, validator.ValidationError{
				Field:   "week_cycle",
				Message: "week_cycle values must be between 1 and 5",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePolicyRequest struct {
	ID        string   `json:"-"`
	Name      *string  `json:"name,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
	WeekCycle []int    `json:"week_cycle,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, d := range r.Weekdays {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekdays",
				Message: "weekdays must be full English weekday names",
			})
			break
		}
	}
	for _, w := range r.WeekCycle {
		if w < 1 || w > 5 {
			errs = append(errs, validator.ValidationError{
				Field:   "week_cycle",
				Message: "week_cycle values must be between 1 and 5",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PolicyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weekdays  []string  `json:"weekdays"`
	WeekCycle []int     `json:"week_cycle"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
