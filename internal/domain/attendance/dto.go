package attendance

import "github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"

type CheckOutRequest struct {
	AttendanceID string `json:"attendance_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest is the admin override; it is the only path that may
// set HALF_DAY or ABSENT.
type UpdateStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{StatusPresent, StatusLate, StatusAbsent, StatusHalfDay}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, LATE, ABSENT, HALF_DAY",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Department   *string  `json:"department,omitempty"`
	Designation  *string  `json:"designation,omitempty"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out"`
	Status       string   `json:"status"`
	WorkHours    *float64 `json:"work_hours"`
}

type ListAttendanceResponse struct {
	TotalCount  int                  `json:"total_count"`
	Attendances []AttendanceResponse `json:"attendances"`
}
