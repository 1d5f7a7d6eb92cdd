package salary

import (
	"context"
)

type SalaryService interface {
	// GetByEmployee returns the wage structure with computed component
	// amounts and gross/net breakdown.
	GetByEmployee(ctx context.Context, employeeID string) (SalaryResponse, error)

	// Upsert creates or replaces the employee's wage structure and
	// rederives monthly/yearly CTC.
	Upsert(ctx context.Context, req UpsertSalaryRequest) (SalaryResponse, error)

	UpsertComponent(ctx context.Context, req UpsertComponentRequest) (SalaryResponse, error)
	DeleteComponent(ctx context.Context, employeeID string, componentName string) (SalaryResponse, error)

	// Payroll lists every employee with their salary summary (admin).
	Payroll(ctx context.Context) (PayrollResponse, error)
}
