package attendance

import (
	"time"
)

// Attendance status values. PRESENT and LATE are derived at check-in.
// ABSENT is never written by the lifecycle engine; it is only inferable
// retroactively for past dates with no record. HALF_DAY is an admin-set
// override with no automatic trigger.
const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
)

// Attendance is the single ledger entry for one employee on one calendar
// date. Created by check-in, mutated exactly once by check-out, immutable
// after that (save for the admin status override).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	Status     string
	WorkHours  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	Department   *string
	Designation  *string
}
