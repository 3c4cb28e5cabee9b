package punch

import (
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type CreatePunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateString(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid yyyy-MM-dd date",
		})
	}

	if !validator.IsValidTimeString(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be a valid zero-padded HH:mm time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FingerID   int    `json:"finger_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Synced     bool   `json:"synced"`
}

// SyncResponse reports the outcome of one reconciliation run.
type SyncResponse struct {
	DeviceReachable bool            `json:"device_reachable"`
	FetchedCount    int             `json:"fetched_count"`
	InsertedCount   int             `json:"inserted_count"`
	Punches         []PunchResponse `json:"punches"`
}
