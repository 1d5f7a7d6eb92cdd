package salary

import (
	"context"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/salary"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	salary.SalaryRepository
	records    map[string]salary.Salary
	components map[string][]salary.SalaryComponent
	payroll    []salary.PayrollRow
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		records:    map[string]salary.Salary{},
		components: map[string][]salary.SalaryComponent{},
	}
}

func (f *fakeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	record, ok := f.records[employeeID]
	if !ok {
		return salary.Salary{}, pgx.ErrNoRows
	}
	return record, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	if existing, ok := f.records[s.EmployeeID]; ok {
		s.ID = existing.ID
	} else {
		s.ID = uuid.New().String()
	}
	f.records[s.EmployeeID] = s
	return s, nil
}

func (f *fakeRepo) ListComponents(ctx context.Context, salaryID string) ([]salary.SalaryComponent, error) {
	return f.components[salaryID], nil
}

func (f *fakeRepo) UpsertComponent(ctx context.Context, c salary.SalaryComponent) (salary.SalaryComponent, error) {
	existing := f.components[c.SalaryID]
	for i := range existing {
		if existing[i].ComponentName == c.ComponentName {
			existing[i].CalculationType = c.CalculationType
			existing[i].Value = c.Value
			return existing[i], nil
		}
	}
	c.ID = uuid.New().String()
	f.components[c.SalaryID] = append(existing, c)
	return c, nil
}

func (f *fakeRepo) DeleteComponent(ctx context.Context, salaryID string, componentName string) error {
	existing := f.components[salaryID]
	for i := range existing {
		if existing[i].ComponentName == componentName {
			f.components[salaryID] = append(existing[:i], existing[i+1:]...)
			return nil
		}
	}
	return salary.ErrComponentNotFound
}

func (f *fakeRepo) ListAllWithEmployees(ctx context.Context) ([]salary.PayrollRow, error) {
	return f.payroll, nil
}

func TestUpsert_DerivesCTC(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSalaryService(repo)
	employeeID := uuid.New().String()

	resp, err := svc.Upsert(context.Background(), salary.UpsertSalaryRequest{
		EmployeeID:  employeeID,
		WageType:    salary.WageTypeFixed,
		BaseWage:    50000,
		WorkingDays: 22,
	})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, resp.MonthlyCTC)
	assert.Equal(t, 600000.0, resp.YearlyCTC)
	assert.Equal(t, 50000.0, resp.NetPay)
}

func TestUpsertComponent_PercentageAndFixed(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSalaryService(repo)
	employeeID := uuid.New().String()

	_, err := svc.Upsert(context.Background(), salary.UpsertSalaryRequest{
		EmployeeID:  employeeID,
		WageType:    salary.WageTypeFixed,
		BaseWage:    50000,
		WorkingDays: 22,
	})
	require.NoError(t, err)

	// HRA at 40% of base is an earning.
	resp, err := svc.UpsertComponent(context.Background(), salary.UpsertComponentRequest{
		EmployeeID:      employeeID,
		ComponentName:   salary.ComponentHRA,
		CalculationType: salary.CalcPercentage,
		Value:           40,
	})
	require.NoError(t, err)
	assert.Equal(t, 70000.0, resp.GrossPay)
	assert.Equal(t, 70000.0, resp.MonthlyCTC)

	// Professional tax is a flat deduction.
	resp, err = svc.UpsertComponent(context.Background(), salary.UpsertComponentRequest{
		EmployeeID:      employeeID,
		ComponentName:   salary.ComponentProfessionalTax,
		CalculationType: salary.CalcFixed,
		Value:           200,
	})
	require.NoError(t, err)
	assert.Equal(t, 70000.0, resp.GrossPay)
	assert.Equal(t, 200.0, resp.Deductions)
	assert.Equal(t, 69800.0, resp.NetPay)
	// Deductions do not grow the CTC.
	assert.Equal(t, 70000.0, resp.MonthlyCTC)
}

func TestDeleteComponent_RecomputesCTC(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSalaryService(repo)
	employeeID := uuid.New().String()

	_, err := svc.Upsert(context.Background(), salary.UpsertSalaryRequest{
		EmployeeID:  employeeID,
		WageType:    salary.WageTypeFixed,
		BaseWage:    50000,
		WorkingDays: 22,
	})
	require.NoError(t, err)

	_, err = svc.UpsertComponent(context.Background(), salary.UpsertComponentRequest{
		EmployeeID:      employeeID,
		ComponentName:   salary.ComponentBonus,
		CalculationType: salary.CalcFixed,
		Value:           5000,
	})
	require.NoError(t, err)

	resp, err := svc.DeleteComponent(context.Background(), employeeID, salary.ComponentBonus)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, resp.MonthlyCTC)
	assert.Empty(t, resp.Components)
}

func TestDeleteComponent_Unknown(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSalaryService(repo)
	employeeID := uuid.New().String()

	_, err := svc.Upsert(context.Background(), salary.UpsertSalaryRequest{
		EmployeeID:  employeeID,
		WageType:    salary.WageTypeFixed,
		BaseWage:    50000,
		WorkingDays: 22,
	})
	require.NoError(t, err)

	_, err = svc.DeleteComponent(context.Background(), employeeID, salary.ComponentHRA)
	assert.ErrorIs(t, err, salary.ErrComponentNotFound)
}

func TestGetByEmployee_NoRecord(t *testing.T) {
	svc := NewSalaryService(newFakeRepo())
	_, err := svc.GetByEmployee(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestPayroll_IncludesEmployeesWithoutSalary(t *testing.T) {
	repo := newFakeRepo()
	withSalary := salary.Salary{ID: uuid.New().String(), WageType: salary.WageTypeFixed, BaseWage: 40000, MonthlyCTC: 40000, YearlyCTC: 480000}
	repo.payroll = []salary.PayrollRow{
		{EmployeeID: uuid.New().String(), FirstName: "John", LastName: "Doe", Salary: &withSalary},
		{EmployeeID: uuid.New().String(), FirstName: "New", LastName: "Hire"},
	}
	svc := NewSalaryService(repo)

	resp, err := svc.Payroll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.NotNil(t, resp.Entries[0].MonthlyCTC)
	assert.Nil(t, resp.Entries[1].MonthlyCTC)
	assert.Equal(t, "New Hire", resp.Entries[1].EmployeeName)
}
