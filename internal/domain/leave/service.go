package leave

import (
	"context"
)

type LeaveService interface {
	// Create files a PENDING request for the acting employee.
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)

	// GetMyLeaves returns the employee's requests, newest applied first.
	GetMyLeaves(ctx context.Context, employeeID string) (ListLeaveResponse, error)

	// ListAll returns every request with employee details (admin).
	ListAll(ctx context.Context) (ListLeaveResponse, error)

	// Decide approves or rejects a PENDING request; a request can be
	// decided exactly once.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
}
