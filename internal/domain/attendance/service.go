package attendance

import (
	"context"
)

// AttendanceService governs the per-(employee, date) check-in/check-out
// lifecycle. Callers pass the acting employee's ID explicitly; the service
// holds no session state.
type AttendanceService interface {
	// CheckIn opens today's record, deriving PRESENT or LATE from the
	// configured cutoff. Fails with ErrAlreadyCheckedIn if today's record
	// exists.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes the record: sets check-out time and computed work
	// hours. Fails with ErrAlreadyCheckedOut on a second call.
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)

	// GetToday returns today's record, or nil when the employee has not
	// checked in. Pure read.
	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)

	// GetMyAttendance returns the employee's history, newest first.
	GetMyAttendance(ctx context.Context, employeeID string) (ListAttendanceResponse, error)

	// ListAll returns every record with employee details (admin).
	ListAll(ctx context.Context) (ListAttendanceResponse, error)

	// OverrideStatus applies an admin correction, e.g. marking HALF_DAY.
	OverrideStatus(ctx context.Context, req UpdateStatusRequest) (AttendanceResponse, error)
}
