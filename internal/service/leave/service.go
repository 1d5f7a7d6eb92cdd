package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(repo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRequestRepository: repo}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, employeeID string) (leave.ListLeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) (leave.ListLeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		// The guarded update misses both unknown IDs and requests that
		// are no longer PENDING; a lookup tells them apart.
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := s.LeaveRequestRepository.GetByID(ctx, req.ID); getErr != nil {
				if errors.Is(getErr, pgx.ErrNoRows) {
					return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
				}
				return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", getErr)
			}
			return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toResponse(updated), nil
}

func toResponse(l leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Department:   l.Department,
		Designation:  l.Designation,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Reason:       l.Reason,
		Status:       l.Status,
		AppliedAt:    l.AppliedAt.Format(time.RFC3339),
	}
}

func toListResponse(requests []leave.LeaveRequest) leave.ListLeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return leave.ListLeaveResponse{
		TotalCount: len(responses),
		Leaves:     responses,
	}
}
