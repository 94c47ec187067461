package report

import (
	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type ComputeMonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Scope      Scope  `json:"scope"`
}

func (r *ComputeMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}
	if r.Scope == "" {
		r.Scope = ScopeAdmin
	}
	if !validator.IsInSlice(string(r.Scope), ScopeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be admin or organization",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
