package employee

import (
	"context"
)

// EmployeeService defines directory operations. Create issues the login
// identity alongside the profile; Delete cascades to it.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	GetMyProfile(ctx context.Context, userID string) (EmployeeResponse, error)
	List(ctx context.Context) (ListEmployeesResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
