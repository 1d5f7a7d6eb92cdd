package employee

import "time"

// Employee is the profile record for a person employed by the
// organization, linked one-to-one to its login identity.
type Employee struct {
	ID            string
	UserID        string
	FirstName     string
	LastName      string
	Phone         *string
	DateOfBirth   *time.Time
	Address       *string
	Designation   *string
	Department    *string
	DateOfJoining time.Time
	ProfileImage  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	Email    *string
	LoginID  *string
	IsActive *bool
}
