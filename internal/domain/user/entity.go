package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Organization administrator - full access
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

// User is a login-capable identity: credential plus role. For employee
// accounts it is bound one-to-one to an Employee profile; admin accounts
// stand alone.
type User struct {
	ID           string
	LoginID      string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is an organization administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
