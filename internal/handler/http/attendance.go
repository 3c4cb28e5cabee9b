package http

import (
	"net/http"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-id/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	calculationService attendance.CalculationService
}

func NewAttendanceHandler(calculationService attendance.CalculationService) AttendanceHandler {
	return &attendanceHandlerImpl{
		calculationService: calculationService,
	}
}

// Daily implements AttendanceHandler
func (h *attendanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := attendance.DailyRequest{
		Date: r.URL.Query().Get("date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calculationService.CalculateForDate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Range implements AttendanceHandler
func (h *attendanceHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	req := attendance.RangeRequest{
		StartDate: r.URL.Query().Get("start"),
		EndDate:   r.URL.Query().Get("end"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calculationService.CalculateForRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Employee implements AttendanceHandler - one employee over a range
func (h *attendanceHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	req := attendance.EmployeeRangeRequest{
		EmployeeID: chi.URLParam(r, "id"),
		StartDate:  r.URL.Query().Get("start"),
		EndDate:    r.URL.Query().Get("end"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calculationService.CalculateForEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler - today's headline numbers
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.calculationService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
