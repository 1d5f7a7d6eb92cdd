package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// store enforces UNIQUE(employee_id, date); Create surfaces that
// violation so the service can map it to ErrAlreadyCheckedIn.
type AttendanceRepository interface {
	// Create inserts the day's record. Fails with a unique-violation
	// error if a record for (employee, date) already exists.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil (no error) when no record exists;
	// it never creates one.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Close sets check-out time and work hours on an open record.
	Close(ctx context.Context, id string, checkOut time.Time, workHours float64) (Attendance, error)

	// UpdateStatus applies an admin status override.
	UpdateStatus(ctx context.Context, id string, status string) (Attendance, error)

	// ListByEmployee returns the employee's history, newest date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListAll returns all records joined with employee details, newest
	// date first.
	ListAll(ctx context.Context) ([]Attendance, error)
}
