package salary

import (
	"context"
)

type SalaryRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Salary, error)

	// Upsert creates or replaces the employee's wage structure.
	Upsert(ctx context.Context, s Salary) (Salary, error)

	ListComponents(ctx context.Context, salaryID string) ([]SalaryComponent, error)

	// UpsertComponent creates or replaces one named component of a salary.
	UpsertComponent(ctx context.Context, c SalaryComponent) (SalaryComponent, error)

	DeleteComponent(ctx context.Context, salaryID string, componentName string) error

	// ListAllWithEmployees returns every employee's salary for payroll,
	// including employees with no salary record yet.
	ListAllWithEmployees(ctx context.Context) ([]PayrollRow, error)
}

// PayrollRow is the flattened employee+salary join used by the payroll
// listing.
type PayrollRow struct {
	EmployeeID  string
	FirstName   string
	LastName    string
	Designation *string
	Department  *string
	Salary      *Salary
}
