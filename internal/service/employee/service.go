package employee

import (
	"context"
	"time"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToResponse(emp))
	}

	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

// SaveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SaveEmployee(ctx context.Context, req employee.SaveEmployeeRequest) (employee.EmployeeResponse, error) {
	emp := employee.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		FingerID:   req.FingerID,
	}

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Re-read so the response carries the stored created_at.
	saved, err := s.employeeRepo.GetByID(ctx, emp.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(saved), nil
}

// DeleteEmployee implements employee.EmployeeService. Punch events for the
// employee are left in place.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.employeeRepo.Delete(ctx, employeeID)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	var createdAt string
	if !emp.CreatedAt.IsZero() {
		createdAt = emp.CreatedAt.Format(time.RFC3339)
	}

	return employee.EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Email:      emp.Email,
		FingerID:   emp.FingerID,
		CreatedAt:  createdAt,
	}
}
