package punch

import (
	"context"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewPunchService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
	}
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context) ([]punch.PunchResponse, error) {
	events, err := s.punchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return mapToResponses(events), nil
}

// ListPunchesByDate implements punch.PunchService.
func (s *PunchServiceImpl) ListPunchesByDate(ctx context.Context, date string) ([]punch.PunchResponse, error) {
	events, err := s.punchRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return mapToResponses(events), nil
}

// CreatePunch implements punch.PunchService. The entry must reference a
// known employee; the insert itself is unconditional, duplicates included.
func (s *PunchServiceImpl) CreatePunch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	event := punch.PunchEvent{
		EmployeeID: emp.EmployeeID,
		FingerID:   emp.FingerID,
		Date:       req.Date,
		Time:       req.Time,
		Synced:     false,
	}

	saved, err := s.punchRepo.Save(ctx, event)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return mapToResponse(saved), nil
}

// DeletePunch implements punch.PunchService.
func (s *PunchServiceImpl) DeletePunch(ctx context.Context, id int64) error {
	return s.punchRepo.Delete(ctx, id)
}

func mapToResponse(event punch.PunchEvent) punch.PunchResponse {
	return punch.PunchResponse{
		ID:         event.ID,
		EmployeeID: event.EmployeeID,
		FingerID:   event.FingerID,
		Date:       event.Date,
		Time:       event.Time,
		Synced:     event.Synced,
	}
}

func mapToResponses(events []punch.PunchEvent) []punch.PunchResponse {
	responses := make([]punch.PunchResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, mapToResponse(event))
	}
	return responses
}
