package postgresql

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.id, e.user_id, e.first_name, e.last_name, e.phone, e.date_of_birth,
	e.address, e.designation, e.department, e.date_of_joining, e.profile_image,
	e.created_at, e.updated_at`

const employeeReturning = `id, user_id, first_name, last_name, phone, date_of_birth,
	address, designation, department, date_of_joining, profile_image,
	created_at, updated_at`

func scanEmployee(row interface{ Scan(dest ...any) error }, withUser bool) (employee.Employee, error) {
	var e employee.Employee
	dest := []any{
		&e.ID,
		&e.UserID,
		&e.FirstName,
		&e.LastName,
		&e.Phone,
		&e.DateOfBirth,
		&e.Address,
		&e.Designation,
		&e.Department,
		&e.DateOfJoining,
		&e.ProfileImage,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
	if withUser {
		dest = append(dest, &e.Email, &e.LoginID, &e.IsActive)
	}
	err := row.Scan(dest...)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, first_name, last_name, phone, date_of_birth,
			address, designation, department, date_of_joining, profile_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeReturning

	return scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.UserID,
		emp.FirstName,
		emp.LastName,
		emp.Phone,
		emp.DateOfBirth,
		emp.Address,
		emp.Designation,
		emp.Department,
		emp.DateOfJoining,
		emp.ProfileImage,
	), false)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, u.email, u.login_id, u.is_active
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`
	return scanEmployee(q.QueryRow(ctx, query, id), true)
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, u.email, u.login_id, u.is_active
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`
	return scanEmployee(q.QueryRow(ctx, query, userID), true)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, u.email, u.login_id, u.is_active
		FROM employees e
		JOIN users u ON u.id = e.user_id
		ORDER BY e.date_of_joining DESC, e.last_name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows, true)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, phone = $4, date_of_birth = $5,
			address = $6, designation = $7, department = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeReturning

	return scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.FirstName,
		emp.LastName,
		emp.Phone,
		emp.DateOfBirth,
		emp.Address,
		emp.Designation,
		emp.Department,
	), false)
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// CountByJoiningYear implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByJoiningYear(ctx context.Context, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE date_of_joining >= $1 AND date_of_joining < $2`,
		from, to,
	).Scan(&count)
	return count, err
}
