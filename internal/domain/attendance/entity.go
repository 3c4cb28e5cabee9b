package attendance

import "time"

// Status classifies one employee's day from their punch count.
type Status string

const (
	StatusAbsent          Status = "Absent"
	StatusMissingCheckout Status = "Missing Check-out"
	StatusPresent         Status = "Present"
)

// NoPunch is the sentinel shown where an employee has no punch to report.
const NoPunch = "-"

// DailyRecord is the derived attendance of one employee on one date. It is
// never persisted; given the same employee and punch set for a date the
// classification always produces the same record.
//
// WorkingHours is set only when the day has at least two parseable punches
// and the last does not precede the first in time-of-day terms. A pair that
// straddles midnight under the same date would otherwise yield a negative
// duration; it is reported as undefined instead.
type DailyRecord struct {
	EmployeeID   string
	EmployeeName string
	Date         string
	FirstPunch   string
	LastPunch    string
	Status       Status
	WorkingHours *time.Duration
}

// DailyStats summarises one day's classification across all employees.
type DailyStats struct {
	TotalEmployees  int
	Present         int
	Absent          int
	MissingCheckout int
}

// RangeStats summarises an all-employee classification over a date range.
type RangeStats struct {
	TotalDays       int
	TotalRecords    int
	Present         int
	Absent          int
	MissingCheckout int
}

// EmployeeRangeStats summarises one employee's attendance over a date range.
// AttendancePercentage counts Present and Missing Check-out days as attended,
// rounded to two decimals, zero when the range is empty.
type EmployeeRangeStats struct {
	TotalDays            int
	PresentDays          int
	AbsentDays           int
	MissingCheckoutDays  int
	AttendancePercentage float64
	TotalWorkingHours    time.Duration
}
