package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.status, a.work_hours, a.created_at, a.updated_at`

const attendanceReturning = `id, employee_id, date, check_in, check_out,
	status, work_hours, created_at, updated_at`

func scanAttendance(row interface{ Scan(dest ...any) error }, withEmployee bool) (attendance.Attendance, error) {
	var a attendance.Attendance
	dest := []any{
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.WorkHours,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &a.EmployeeName, &a.Department, &a.Designation)
	}
	err := row.Scan(dest...)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendanceReturning

	return scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(),
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.Status,
	), false)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceReturning + ` FROM attendance WHERE id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id), false)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceReturning + ` FROM attendance WHERE employee_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// Close implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Close(ctx context.Context, id string, checkOut time.Time, workHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out = $1, work_hours = $2, updated_at = NOW()
		WHERE id = $3 AND check_out IS NULL
		RETURNING ` + attendanceReturning

	return scanAttendance(q.QueryRow(ctx, query, checkOut, workHours, id), false)
}

// UpdateStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceReturning

	return scanAttendance(q.QueryRow(ctx, query, status, id), false)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceReturning + ` FROM attendance WHERE employee_id = $1 ORDER BY date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.department, e.designation
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, a.check_in DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
