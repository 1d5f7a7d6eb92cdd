package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrProfileNotFound  = errors.New("no employee profile for this account")
)
