package holiday

import (
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// HOLIDAY DTOs
// ========================================

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	HolidayDate string `json:"holiday_date"` // "YYYY-MM-DD"
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.HolidayDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_date",
			Message: "holiday_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	HolidayDate *string `json:"holiday_date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HolidayDate != nil {
		if _, ok := validator.IsValidDate(*r.HolidayDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "holiday_date",
				Message: "holiday_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HolidayDate string    `json:"holiday_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
