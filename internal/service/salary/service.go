package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/salary"
	"github.com/jackc/pgx/v5"
)

// monthsPerYear converts monthly CTC to yearly.
const monthsPerYear = 12

type SalaryServiceImpl struct {
	salary.SalaryRepository
}

func NewSalaryService(repo salary.SalaryRepository) salary.SalaryService {
	return &SalaryServiceImpl{SalaryRepository: repo}
}

// GetByEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) GetByEmployee(ctx context.Context, employeeID string) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
	}
	return s.buildResponse(ctx, record)
}

// Upsert implements salary.SalaryService.
func (s *SalaryServiceImpl) Upsert(ctx context.Context, req salary.UpsertSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	// CTC is derived, never taken from the request. Components may exist
	// from a previous structure of this employee.
	var components []salary.SalaryComponent
	existing, err := s.SalaryRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err == nil {
		components, err = s.SalaryRepository.ListComponents(ctx, existing.ID)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to list salary components: %w", err)
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
	}

	monthlyCTC := grossPay(req.BaseWage, components)

	record, err := s.SalaryRepository.Upsert(ctx, salary.Salary{
		EmployeeID:  req.EmployeeID,
		WageType:    req.WageType,
		BaseWage:    req.BaseWage,
		WorkingDays: req.WorkingDays,
		MonthlyCTC:  monthlyCTC,
		YearlyCTC:   monthlyCTC * monthsPerYear,
	})
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to upsert salary: %w", err)
	}
	return s.buildResponse(ctx, record)
}

// UpsertComponent implements salary.SalaryService.
func (s *SalaryServiceImpl) UpsertComponent(ctx context.Context, req salary.UpsertComponentRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	record, err := s.SalaryRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
	}

	_, err = s.SalaryRepository.UpsertComponent(ctx, salary.SalaryComponent{
		SalaryID:        record.ID,
		ComponentName:   req.ComponentName,
		CalculationType: req.CalculationType,
		Value:           req.Value,
	})
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to upsert salary component: %w", err)
	}

	return s.recomputeCTC(ctx, record)
}

// DeleteComponent implements salary.SalaryService.
func (s *SalaryServiceImpl) DeleteComponent(ctx context.Context, employeeID string, componentName string) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
	}

	if err := s.SalaryRepository.DeleteComponent(ctx, record.ID, componentName); err != nil {
		if errors.Is(err, salary.ErrComponentNotFound) {
			return salary.SalaryResponse{}, err
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to delete salary component: %w", err)
	}

	return s.recomputeCTC(ctx, record)
}

// Payroll implements salary.SalaryService.
func (s *SalaryServiceImpl) Payroll(ctx context.Context) (salary.PayrollResponse, error) {
	rows, err := s.SalaryRepository.ListAllWithEmployees(ctx)
	if err != nil {
		return salary.PayrollResponse{}, fmt.Errorf("failed to list payroll: %w", err)
	}

	entries := make([]salary.PayrollEntry, 0, len(rows))
	for _, row := range rows {
		entry := salary.PayrollEntry{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.FirstName + " " + row.LastName,
			Designation:  row.Designation,
			Department:   row.Department,
		}
		if row.Salary != nil {
			entry.WageType = &row.Salary.WageType
			entry.BaseWage = &row.Salary.BaseWage
			entry.MonthlyCTC = &row.Salary.MonthlyCTC
			entry.YearlyCTC = &row.Salary.YearlyCTC
		}
		entries = append(entries, entry)
	}
	return salary.PayrollResponse{
		TotalCount: len(entries),
		Entries:    entries,
	}, nil
}

// recomputeCTC rederives the stored CTC after a component change and
// returns the fresh breakdown.
func (s *SalaryServiceImpl) recomputeCTC(ctx context.Context, record salary.Salary) (salary.SalaryResponse, error) {
	components, err := s.SalaryRepository.ListComponents(ctx, record.ID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to list salary components: %w", err)
	}

	monthlyCTC := grossPay(record.BaseWage, components)
	if monthlyCTC != record.MonthlyCTC {
		record, err = s.SalaryRepository.Upsert(ctx, salary.Salary{
			EmployeeID:  record.EmployeeID,
			WageType:    record.WageType,
			BaseWage:    record.BaseWage,
			WorkingDays: record.WorkingDays,
			MonthlyCTC:  monthlyCTC,
			YearlyCTC:   monthlyCTC * monthsPerYear,
		})
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to update salary ctc: %w", err)
		}
	}

	return toResponse(record, components), nil
}

func (s *SalaryServiceImpl) buildResponse(ctx context.Context, record salary.Salary) (salary.SalaryResponse, error) {
	components, err := s.SalaryRepository.ListComponents(ctx, record.ID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to list salary components: %w", err)
	}
	return toResponse(record, components), nil
}

// grossPay is the base wage plus all earning components.
func grossPay(baseWage float64, components []salary.SalaryComponent) float64 {
	gross := baseWage
	for i := range components {
		if !components[i].IsDeduction() {
			gross += components[i].Amount(baseWage)
		}
	}
	return gross
}

func toResponse(record salary.Salary, components []salary.SalaryComponent) salary.SalaryResponse {
	resp := salary.SalaryResponse{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		WageType:    record.WageType,
		BaseWage:    record.BaseWage,
		WorkingDays: record.WorkingDays,
		MonthlyCTC:  record.MonthlyCTC,
		YearlyCTC:   record.YearlyCTC,
		Components:  make([]salary.ComponentResponse, 0, len(components)),
		GrossPay:    record.BaseWage,
	}
	for i := range components {
		c := &components[i]
		amount := c.Amount(record.BaseWage)
		resp.Components = append(resp.Components, salary.ComponentResponse{
			ComponentName:   c.ComponentName,
			CalculationType: c.CalculationType,
			Value:           c.Value,
			Amount:          amount,
			IsDeduction:     c.IsDeduction(),
		})
		if c.IsDeduction() {
			resp.Deductions += amount
		} else {
			resp.GrossPay += amount
		}
	}
	resp.NetPay = resp.GrossPay - resp.Deductions
	return resp
}
