package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// List retrieves all employees ordered by employee_id ascending
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves a single employee by its exact employee_id
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// Save upserts an employee by employee_id (full replace)
	Save(ctx context.Context, emp Employee) error

	// Delete removes the employee row only; punch events are kept
	Delete(ctx context.Context, employeeID string) error
}
