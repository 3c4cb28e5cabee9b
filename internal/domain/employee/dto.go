package employee

import (
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

type SaveEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	FingerID   int    `json:"finger_id"`
}

func (r *SaveEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.FingerID < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "finger_id",
			Message: "finger_id must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	FingerID   int    `json:"finger_id"`
	CreatedAt  string `json:"created_at,omitempty"`
}
