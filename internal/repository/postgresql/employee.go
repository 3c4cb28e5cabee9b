package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, email, finger_id, created_at
		FROM employees
		ORDER BY employee_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.EmployeeID, &emp.Name, &emp.Email, &emp.FingerID, &emp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, email, finger_id, created_at
		FROM employees
		WHERE employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&emp.EmployeeID, &emp.Name, &emp.Email, &emp.FingerID, &emp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// Save implements employee.EmployeeRepository.
func (r *employeeRepository) Save(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_id, name, email, finger_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, finger_id = EXCLUDED.finger_id
	`

	if _, err := q.Exec(ctx, query, emp.EmployeeID, emp.Name, emp.Email, emp.FingerID); err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository. Punch events referencing
// the employee are deliberately left in place.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE employee_id = $1`

	commandTag, err := q.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
