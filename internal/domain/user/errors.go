package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrLoginIDExists    = errors.New("login ID already taken")
	ErrUserInactive     = errors.New("user account is deactivated")
	ErrAdminPrivilege   = errors.New("admin privilege required")
	ErrEmployeeRequired = errors.New("employee account required")
)
