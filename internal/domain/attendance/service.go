package attendance

import "context"

// CalculationService derives attendance records and statistics from the
// employee and punch stores.
type CalculationService interface {
	// CalculateForDate classifies every employee for one date
	CalculateForDate(ctx context.Context, req DailyRequest) (DailyResponse, error)

	// CalculateForRange classifies every employee for each date in
	// [start, end] inclusive
	CalculateForRange(ctx context.Context, req RangeRequest) (RangeResponse, error)

	// CalculateForEmployee classifies a single employee, resolved
	// case-insensitively, for each date in [start, end] inclusive
	CalculateForEmployee(ctx context.Context, req EmployeeRangeRequest) (EmployeeRangeResponse, error)

	// Summary reports today's headline numbers for the dashboard
	Summary(ctx context.Context) (SummaryResponse, error)
}
