package employee

import "context"

// EmployeeService exposes roster operations to the transport layer.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// SaveEmployee upserts by employee_id; an existing record is fully replaced
	SaveEmployee(ctx context.Context, req SaveEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the roster record; punch history is kept
	DeleteEmployee(ctx context.Context, employeeID string) error
}
