package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

// ClassifyDay derives one attendance record per employee, in input order,
// from that day's punch events. It is total: malformed time values on a
// record leave that employee's working hours undefined without affecting
// the rest of the batch, and no input produces an error.
func ClassifyDay(date string, employees []employee.Employee, punches []punch.PunchEvent) []attendance.DailyRecord {
	byEmployee := make(map[string][]string, len(employees))
	for _, p := range punches {
		if p.Date != date {
			continue
		}
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p.Time)
	}

	records := make([]attendance.DailyRecord, 0, len(employees))
	for _, emp := range employees {
		records = append(records, classifyEmployeeDay(date, emp, byEmployee[emp.EmployeeID]))
	}

	return records
}

// ComputeDailyStats tallies one day's records.
func ComputeDailyStats(records []attendance.DailyRecord) attendance.DailyStats {
	counts := countStatuses(records)
	return attendance.DailyStats{
		TotalEmployees:  len(records),
		Present:         counts[attendance.StatusPresent],
		Absent:          counts[attendance.StatusAbsent],
		MissingCheckout: counts[attendance.StatusMissingCheckout],
	}
}

// ComputeRangeStats tallies all records of a day-by-day range run.
func ComputeRangeStats(totalDays int, records []attendance.DailyRecord) attendance.RangeStats {
	counts := countStatuses(records)
	return attendance.RangeStats{
		TotalDays:       totalDays,
		TotalRecords:    len(records),
		Present:         counts[attendance.StatusPresent],
		Absent:          counts[attendance.StatusAbsent],
		MissingCheckout: counts[attendance.StatusMissingCheckout],
	}
}

// ComputeEmployeeRangeStats tallies a single employee's range, one record
// per day. Present and Missing Check-out days both count as attended;
// the percentage is rounded to two decimals and zero for an empty range.
func ComputeEmployeeRangeStats(records []attendance.DailyRecord) attendance.EmployeeRangeStats {
	counts := countStatuses(records)
	totalDays := len(records)
	attended := counts[attendance.StatusPresent] + counts[attendance.StatusMissingCheckout]

	percentage := 0.0
	if totalDays > 0 {
		percentage = math.Round(float64(attended)/float64(totalDays)*100*100) / 100
	}

	var totalWorking time.Duration
	for _, rec := range records {
		if rec.WorkingHours != nil {
			totalWorking += *rec.WorkingHours
		}
	}

	return attendance.EmployeeRangeStats{
		TotalDays:            totalDays,
		PresentDays:          counts[attendance.StatusPresent],
		AbsentDays:           counts[attendance.StatusAbsent],
		MissingCheckoutDays:  counts[attendance.StatusMissingCheckout],
		AttendancePercentage: percentage,
		TotalWorkingHours:    totalWorking,
	}
}

func countStatuses(records []attendance.DailyRecord) map[attendance.Status]int {
	counts := make(map[attendance.Status]int)
	for _, rec := range records {
		counts[rec.Status]++
	}
	return counts
}

func classifyEmployeeDay(date string, emp employee.Employee, times []string) attendance.DailyRecord {
	record := attendance.DailyRecord{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.Name,
		Date:         date,
	}

	// Lexical ascending order of HH:mm equals chronological order
	// within a single day.
	sort.Strings(times)

	switch {
	case len(times) == 0:
		record.Status = attendance.StatusAbsent
		record.FirstPunch = attendance.NoPunch
		record.LastPunch = attendance.NoPunch

	case len(times) == 1:
		record.Status = attendance.StatusMissingCheckout
		record.FirstPunch = times[0]
		record.LastPunch = attendance.NoPunch

	default:
		record.Status = attendance.StatusPresent
		record.FirstPunch = times[0]
		record.LastPunch = times[len(times)-1]

		first, firstOK := validator.ParseTimeOfDay(record.FirstPunch)
		last, lastOK := validator.ParseTimeOfDay(record.LastPunch)
		if firstOK && lastOK && last >= first {
			hours := last - first
			record.WorkingHours = &hours
		}
	}

	return record
}
