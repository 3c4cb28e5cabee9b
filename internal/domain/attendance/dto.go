package attendance

import (
	"fmt"
	"time"

	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// CALCULATION DTOs
// ========================================

type DailyRequest struct {
	Date string `json:"date"`
}

func (r *DailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDateString(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid yyyy-MM-dd date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDateString(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid yyyy-MM-dd date",
		})
	}

	end, endOK := validator.IsValidDateString(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid yyyy-MM-dd date",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeRangeRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *EmployeeRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	rangeReq := RangeRequest{StartDate: r.StartDate, EndDate: r.EndDate}
	if err := rangeReq.Validate(); err != nil {
		if rangeErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, rangeErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	FirstPunch   string  `json:"first_punch"`
	LastPunch    string  `json:"last_punch"`
	Status       Status  `json:"status"`
	WorkingHours *string `json:"working_hours,omitempty"`
}

type DailyResponse struct {
	Date    string           `json:"date"`
	Stats   DailyStatsDTO    `json:"stats"`
	Records []RecordResponse `json:"records"`
}

type DailyStatsDTO struct {
	TotalEmployees  int `json:"total_employees"`
	Present         int `json:"present"`
	Absent          int `json:"absent"`
	MissingCheckout int `json:"missing_checkout"`
}

type RangeResponse struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Stats     RangeStatsDTO    `json:"stats"`
	Records   []RecordResponse `json:"records"`
}

type RangeStatsDTO struct {
	TotalDays       int `json:"total_days"`
	TotalRecords    int `json:"total_records"`
	Present         int `json:"present"`
	Absent          int `json:"absent"`
	MissingCheckout int `json:"missing_checkout"`
}

type EmployeeRangeResponse struct {
	EmployeeID   string                `json:"employee_id"`
	EmployeeName string                `json:"employee_name"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Stats        EmployeeRangeStatsDTO `json:"stats"`
	Records      []RecordResponse      `json:"records"`
}

type EmployeeRangeStatsDTO struct {
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	MissingCheckoutDays  int     `json:"missing_checkout_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	TotalWorkingHours    string  `json:"total_working_hours"`
}

// SummaryResponse is the dashboard headline: distinct employees with at
// least one punch today count as present.
type SummaryResponse struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	PresentToday   int    `json:"present_today"`
	AbsentToday    int    `json:"absent_today"`
}

// FormatWorkingHours renders a duration as HH:mm, the display form used
// for working-hours figures.
func FormatWorkingHours(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MapRecordToResponse converts a derived DailyRecord to its wire form.
func MapRecordToResponse(rec DailyRecord) RecordResponse {
	var workingHours *string
	if rec.WorkingHours != nil {
		formatted := FormatWorkingHours(*rec.WorkingHours)
		workingHours = &formatted
	}

	return RecordResponse{
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date,
		FirstPunch:   rec.FirstPunch,
		LastPunch:    rec.LastPunch,
		Status:       rec.Status,
		WorkingHours: workingHours,
	}
}
