package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee returns the employee's requests, newest applied first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListAll returns all requests joined with employee details.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// UpdateStatus transitions PENDING to the decision. It must affect no
	// row when the request is no longer PENDING, so a concurrent second
	// decision loses.
	UpdateStatus(ctx context.Context, id string, status string) (LeaveRequest, error)
}
