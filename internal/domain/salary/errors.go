package salary

import "errors"

var (
	ErrSalaryNotFound    = errors.New("no salary record for this employee")
	ErrComponentNotFound = errors.New("salary component not found")
	ErrInvalidComponent  = errors.New("invalid salary component")
)
