package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Save(ctx context.Context, emp employee.Employee) error { return f.err }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, employeeID string) error { return f.err }

type fakePunchRepo struct {
	punches []punch.PunchEvent
	err     error
}

func (f *fakePunchRepo) List(ctx context.Context) ([]punch.PunchEvent, error) {
	return f.punches, f.err
}

func (f *fakePunchRepo) ListByDate(ctx context.Context, date string) ([]punch.PunchEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []punch.PunchEvent
	for _, p := range f.punches {
		if p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) Save(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	return event, f.err
}

func (f *fakePunchRepo) SaveBulk(ctx context.Context, events []punch.PunchEvent) (int, error) {
	return 0, f.err
}

func (f *fakePunchRepo) Delete(ctx context.Context, id int64) error { return f.err }

func testRoster() []employee.Employee {
	return []employee.Employee{
		{EmployeeID: "EMP-001", Name: "Ayu"},
		{EmployeeID: "EMP-002", Name: "Budi"},
	}
}

// ===== CALCULATION SERVICE TESTS =====

func TestCalculateForDate_Stats(t *testing.T) {
	svc := NewCalculationService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.PunchEvent{
			punchAt("EMP-001", "2024-06-10", "09:00"),
			punchAt("EMP-001", "2024-06-10", "13:05"),
			punchAt("EMP-001", "2024-06-10", "17:30"),
			punchAt("EMP-002", "2024-06-10", "08:50"),
		}},
	)

	resp, err := svc.CalculateForDate(context.Background(), attendance.DailyRequest{Date: "2024-06-10"})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stats.TotalEmployees)
	assert.Equal(t, 1, resp.Stats.Present)
	assert.Equal(t, 0, resp.Stats.Absent)
	assert.Equal(t, 1, resp.Stats.MissingCheckout)

	require.Len(t, resp.Records, 2)
	assert.Equal(t, "09:00", resp.Records[0].FirstPunch)
	assert.Equal(t, "17:30", resp.Records[0].LastPunch)
	require.NotNil(t, resp.Records[0].WorkingHours)
	assert.Equal(t, "08:30", *resp.Records[0].WorkingHours)
}

func TestCalculateForDate_InvalidDate(t *testing.T) {
	svc := NewCalculationService(&fakeEmployeeRepo{}, &fakePunchRepo{})

	_, err := svc.CalculateForDate(context.Background(), attendance.DailyRequest{Date: "10-06-2024"})

	assert.Error(t, err)
}

func TestCalculateForRange_RecordCountAndStatusSums(t *testing.T) {
	svc := NewCalculationService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.PunchEvent{
			punchAt("EMP-001", "2024-06-10", "09:00"),
			punchAt("EMP-001", "2024-06-10", "17:00"),
			punchAt("EMP-002", "2024-06-11", "09:05"),
			punchAt("EMP-002", "2024-06-11", "18:00"),
			punchAt("EMP-001", "2024-06-12", "08:30"),
		}},
	)

	resp, err := svc.CalculateForRange(context.Background(), attendance.RangeRequest{
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Stats.TotalDays)
	// days x employees
	assert.Equal(t, 6, resp.Stats.TotalRecords)
	require.Len(t, resp.Records, 6)
	assert.Equal(t, 2, resp.Stats.Present)
	assert.Equal(t, 1, resp.Stats.MissingCheckout)
	assert.Equal(t, 3, resp.Stats.Absent)
	assert.Equal(t, resp.Stats.TotalRecords,
		resp.Stats.Present+resp.Stats.Absent+resp.Stats.MissingCheckout)
}

func TestCalculateForRange_StartAfterEnd(t *testing.T) {
	svc := NewCalculationService(&fakeEmployeeRepo{employees: testRoster()}, &fakePunchRepo{})

	_, err := svc.CalculateForRange(context.Background(), attendance.RangeRequest{
		StartDate: "2024-06-12",
		EndDate:   "2024-06-10",
	})

	assert.Error(t, err)
}

func TestCalculateForEmployee_PercentageAndTotals(t *testing.T) {
	// 5 days: 3 Present, 1 Missing Check-out, 1 Absent -> 80.00%.
	svc := NewCalculationService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{punches: []punch.PunchEvent{
			punchAt("EMP-001", "2024-06-10", "09:00"),
			punchAt("EMP-001", "2024-06-10", "17:00"),
			punchAt("EMP-001", "2024-06-11", "09:00"),
			punchAt("EMP-001", "2024-06-11", "18:30"),
			punchAt("EMP-001", "2024-06-12", "09:00"),
			punchAt("EMP-001", "2024-06-12", "17:00"),
			punchAt("EMP-001", "2024-06-13", "09:15"),
			// 2024-06-14 has no punches
			// other employees never leak into the result
			punchAt("EMP-002", "2024-06-12", "08:00"),
			punchAt("EMP-002", "2024-06-12", "16:00"),
		}},
	)

	resp, err := svc.CalculateForEmployee(context.Background(), attendance.EmployeeRangeRequest{
		EmployeeID: "EMP-001",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-14",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Stats.TotalDays)
	assert.Equal(t, 3, resp.Stats.PresentDays)
	assert.Equal(t, 1, resp.Stats.MissingCheckoutDays)
	assert.Equal(t, 1, resp.Stats.AbsentDays)
	assert.Equal(t, 80.00, resp.Stats.AttendancePercentage)
	// 8h + 9h30m + 8h
	assert.Equal(t, "25:30", resp.Stats.TotalWorkingHours)
	require.Len(t, resp.Records, 5)
}

func TestCalculateForEmployee_CaseInsensitiveLookup(t *testing.T) {
	svc := NewCalculationService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{},
	)

	resp, err := svc.CalculateForEmployee(context.Background(), attendance.EmployeeRangeRequest{
		EmployeeID: "emp-001",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-10",
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP-001", resp.EmployeeID)
	assert.Equal(t, "Ayu", resp.EmployeeName)
}

func TestCalculateForEmployee_NotFound(t *testing.T) {
	svc := NewCalculationService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{},
	)

	_, err := svc.CalculateForEmployee(context.Background(), attendance.EmployeeRangeRequest{
		EmployeeID: "EMP-999",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-14",
	})

	// Distinct from an existing employee with no punches, which yields
	// an empty-but-successful result.
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCalculateForEmployee_KnownEmployeeNoPunches(t *testing.T) {
	svc := NewCalculationService(
		&fakeEmployeeRepo{employees: testRoster()},
		&fakePunchRepo{},
	)

	resp, err := svc.CalculateForEmployee(context.Background(), attendance.EmployeeRangeRequest{
		EmployeeID: "EMP-002",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-11",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stats.TotalDays)
	assert.Equal(t, 2, resp.Stats.AbsentDays)
	assert.Equal(t, 0.0, resp.Stats.AttendancePercentage)
	assert.Equal(t, "00:00", resp.Stats.TotalWorkingHours)
}

func TestCalculateForDate_StoreFailure(t *testing.T) {
	svc := NewCalculationService(
		&fakeEmployeeRepo{err: errors.New("connection refused")},
		&fakePunchRepo{},
	)

	_, err := svc.CalculateForDate(context.Background(), attendance.DailyRequest{Date: "2024-06-10"})

	assert.Error(t, err)
}
