package leave

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Leave types accepted from employees.
const (
	TypeCasual    = "CASUAL"
	TypeSick      = "SICK"
	TypeEarned    = "EARNED"
	TypeUnpaid    = "UNPAID"
	TypeMaternity = "MATERNITY"
)

// LeaveRequest is an employee's request for time off. Status is
// transitioned exactly once by an admin decision and the record is
// immutable afterwards.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     string
	AppliedAt  time.Time

	// DTO / Join
	EmployeeName *string
	Department   *string
	Designation  *string
}

// Days counts the calendar days the request spans, inclusive of both
// endpoints.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
