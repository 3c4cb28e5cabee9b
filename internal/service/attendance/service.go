package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

type CalculationServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	punchRepo    punch.PunchRepository
}

func NewCalculationService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
) attendance.CalculationService {
	return &CalculationServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
	}
}

// CalculateForDate implements attendance.CalculationService.
func (s *CalculationServiceImpl) CalculateForDate(ctx context.Context, req attendance.DailyRequest) (attendance.DailyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.DailyResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	punches, err := s.punchRepo.ListByDate(ctx, req.Date)
	if err != nil {
		return attendance.DailyResponse{}, fmt.Errorf("failed to list punches for date: %w", err)
	}

	records := ClassifyDay(req.Date, employees, punches)
	stats := ComputeDailyStats(records)

	return attendance.DailyResponse{
		Date: req.Date,
		Stats: attendance.DailyStatsDTO{
			TotalEmployees:  stats.TotalEmployees,
			Present:         stats.Present,
			Absent:          stats.Absent,
			MissingCheckout: stats.MissingCheckout,
		},
		Records: mapRecords(records),
	}, nil
}

// CalculateForRange implements attendance.CalculationService.
func (s *CalculationServiceImpl) CalculateForRange(ctx context.Context, req attendance.RangeRequest) (attendance.RangeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RangeResponse{}, err
	}

	start, _ := validator.IsValidDateString(req.StartDate)
	end, _ := validator.IsValidDateString(req.EndDate)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.RangeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var allRecords []attendance.DailyRecord
	totalDays := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dateStr := date.Format(validator.DateLayout)

		punches, err := s.punchRepo.ListByDate(ctx, dateStr)
		if err != nil {
			return attendance.RangeResponse{}, fmt.Errorf("failed to list punches for %s: %w", dateStr, err)
		}

		allRecords = append(allRecords, ClassifyDay(dateStr, employees, punches)...)
		totalDays++
	}

	stats := ComputeRangeStats(totalDays, allRecords)

	return attendance.RangeResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Stats: attendance.RangeStatsDTO{
			TotalDays:       stats.TotalDays,
			TotalRecords:    stats.TotalRecords,
			Present:         stats.Present,
			Absent:          stats.Absent,
			MissingCheckout: stats.MissingCheckout,
		},
		Records: mapRecords(allRecords),
	}, nil
}

// CalculateForEmployee implements attendance.CalculationService.
func (s *CalculationServiceImpl) CalculateForEmployee(ctx context.Context, req attendance.EmployeeRangeRequest) (attendance.EmployeeRangeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EmployeeRangeResponse{}, err
	}

	start, _ := validator.IsValidDateString(req.StartDate)
	end, _ := validator.IsValidDateString(req.EndDate)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.EmployeeRangeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var emp *employee.Employee
	for i := range employees {
		if strings.EqualFold(employees[i].EmployeeID, req.EmployeeID) {
			emp = &employees[i]
			break
		}
	}
	if emp == nil {
		return attendance.EmployeeRangeResponse{}, employee.ErrEmployeeNotFound
	}

	// The full punch set is filtered per date in memory, matching the
	// single-employee search of the desktop application this replaces.
	allPunches, err := s.punchRepo.List(ctx)
	if err != nil {
		return attendance.EmployeeRangeResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	var employeePunches []punch.PunchEvent
	for _, p := range allPunches {
		if p.EmployeeID == emp.EmployeeID {
			employeePunches = append(employeePunches, p)
		}
	}

	var records []attendance.DailyRecord
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dateStr := date.Format(validator.DateLayout)
		records = append(records, ClassifyDay(dateStr, []employee.Employee{*emp}, employeePunches)...)
	}

	stats := ComputeEmployeeRangeStats(records)

	return attendance.EmployeeRangeResponse{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Stats: attendance.EmployeeRangeStatsDTO{
			TotalDays:            stats.TotalDays,
			PresentDays:          stats.PresentDays,
			AbsentDays:           stats.AbsentDays,
			MissingCheckoutDays:  stats.MissingCheckoutDays,
			AttendancePercentage: stats.AttendancePercentage,
			TotalWorkingHours:    attendance.FormatWorkingHours(stats.TotalWorkingHours),
		},
		Records: mapRecords(records),
	}, nil
}

// Summary implements attendance.CalculationService.
func (s *CalculationServiceImpl) Summary(ctx context.Context) (attendance.SummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	today := time.Now().Format(validator.DateLayout)
	punches, err := s.punchRepo.ListByDate(ctx, today)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list punches for today: %w", err)
	}

	seen := make(map[string]struct{})
	for _, p := range punches {
		seen[p.EmployeeID] = struct{}{}
	}

	// Punches from employees deleted since can exceed the roster; absent
	// never goes negative.
	present := 0
	for _, emp := range employees {
		if _, ok := seen[emp.EmployeeID]; ok {
			present++
		}
	}

	return attendance.SummaryResponse{
		Date:           today,
		TotalEmployees: len(employees),
		PresentToday:   present,
		AbsentToday:    len(employees) - present,
	}, nil
}

func mapRecords(records []attendance.DailyRecord) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.MapRecordToResponse(rec))
	}
	return responses
}
