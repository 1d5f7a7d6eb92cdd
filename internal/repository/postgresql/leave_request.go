package postgresql

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
	l.reason, l.status, l.applied_at`

const leaveReturning = `id, employee_id, leave_type, start_date, end_date,
	reason, status, applied_at`

func scanLeaveRequest(row interface{ Scan(dest ...any) error }, withEmployee bool) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	dest := []any{
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.AppliedAt,
	}
	if withEmployee {
		dest = append(dest, &l.EmployeeName, &l.Department, &l.Designation)
	}
	err := row.Scan(dest...)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveReturning

	return scanLeaveRequest(q.QueryRow(ctx, query,
		uuid.NewString(),
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	), false)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveReturning + ` FROM leave_requests WHERE id = $1`
	return scanLeaveRequest(q.QueryRow(ctx, query, id), false)
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveReturning + ` FROM leave_requests WHERE employee_id = $1 ORDER BY applied_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		req, err := scanLeaveRequest(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.department, e.designation
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		ORDER BY l.applied_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		req, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository. The PENDING guard
// in the WHERE clause makes a second decision a no-row update.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1
		WHERE id = $2 AND status = 'PENDING'
		RETURNING ` + leaveReturning

	return scanLeaveRequest(q.QueryRow(ctx, query, status, id), false)
}
