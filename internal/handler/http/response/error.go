package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
