package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out lifecycle errors
	ErrAlreadyCheckedIn       = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut      = errors.New("you have already checked out")
	ErrNotCheckedIn           = errors.New("you have not checked in yet")
	ErrCheckOutBeforeCheckIn  = errors.New("check-out time is before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
