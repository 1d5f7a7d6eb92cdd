package postgresql

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `id, employee_id, wage_type, base_wage, working_days,
	monthly_ctc, yearly_ctc, created_at, updated_at`

func scanSalary(row interface{ Scan(dest ...any) error }) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.WageType,
		&s.BaseWage,
		&s.WorkingDays,
		&s.MonthlyCTC,
		&s.YearlyCTC,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// GetByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE employee_id = $1`
	return scanSalary(q.QueryRow(ctx, query, employeeID))
}

// Upsert implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (id, employee_id, wage_type, base_wage, working_days, monthly_ctc, yearly_ctc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE SET
			wage_type = EXCLUDED.wage_type,
			base_wage = EXCLUDED.base_wage,
			working_days = EXCLUDED.working_days,
			monthly_ctc = EXCLUDED.monthly_ctc,
			yearly_ctc = EXCLUDED.yearly_ctc,
			updated_at = NOW()
		RETURNING ` + salaryColumns

	return scanSalary(q.QueryRow(ctx, query,
		uuid.NewString(),
		s.EmployeeID,
		s.WageType,
		s.BaseWage,
		s.WorkingDays,
		s.MonthlyCTC,
		s.YearlyCTC,
	))
}

const componentColumns = `id, salary_id, component_name, calculation_type, value, created_at`

func scanComponent(row interface{ Scan(dest ...any) error }) (salary.SalaryComponent, error) {
	var c salary.SalaryComponent
	err := row.Scan(
		&c.ID,
		&c.SalaryID,
		&c.ComponentName,
		&c.CalculationType,
		&c.Value,
		&c.CreatedAt,
	)
	return c, err
}

// ListComponents implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListComponents(ctx context.Context, salaryID string) ([]salary.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM salary_components WHERE salary_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, salaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	components := []salary.SalaryComponent{}
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, rows.Err()
}

// UpsertComponent implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) UpsertComponent(ctx context.Context, c salary.SalaryComponent) (salary.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (id, salary_id, component_name, calculation_type, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (salary_id, component_name) DO UPDATE SET
			calculation_type = EXCLUDED.calculation_type,
			value = EXCLUDED.value
		RETURNING ` + componentColumns

	return scanComponent(q.QueryRow(ctx, query,
		uuid.NewString(),
		c.SalaryID,
		c.ComponentName,
		c.CalculationType,
		c.Value,
	))
}

// DeleteComponent implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) DeleteComponent(ctx context.Context, salaryID string, componentName string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM salary_components WHERE salary_id = $1 AND component_name = $2`,
		salaryID, componentName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrComponentNotFound
	}
	return nil
}

// ListAllWithEmployees implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListAllWithEmployees(ctx context.Context) ([]salary.PayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.first_name, e.last_name, e.designation, e.department,
			s.id, s.employee_id, s.wage_type, s.base_wage, s.working_days,
			s.monthly_ctc, s.yearly_ctc, s.created_at, s.updated_at
		FROM employees e
		LEFT JOIN salaries s ON s.employee_id = e.id
		ORDER BY e.first_name, e.last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payroll := []salary.PayrollRow{}
	for rows.Next() {
		var row salary.PayrollRow
		var (
			salaryID    *string
			employeeID  *string
			wageType    *string
			baseWage    *float64
			workingDays *int
			monthlyCTC  *float64
			yearlyCTC   *float64
			createdAt   *time.Time
			updatedAt   *time.Time
		)
		err := rows.Scan(
			&row.EmployeeID,
			&row.FirstName,
			&row.LastName,
			&row.Designation,
			&row.Department,
			&salaryID,
			&employeeID,
			&wageType,
			&baseWage,
			&workingDays,
			&monthlyCTC,
			&yearlyCTC,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if salaryID != nil {
			row.Salary = &salary.Salary{
				ID:          *salaryID,
				EmployeeID:  *employeeID,
				WageType:    *wageType,
				BaseWage:    *baseWage,
				WorkingDays: *workingDays,
				MonthlyCTC:  *monthlyCTC,
				YearlyCTC:   *yearlyCTC,
				CreatedAt:   *createdAt,
				UpdatedAt:   *updatedAt,
			}
		}
		payroll = append(payroll, row)
	}
	return payroll, rows.Err()
}
