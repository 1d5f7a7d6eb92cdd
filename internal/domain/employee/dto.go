package employee

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Phone         *string  `json:"phone"`
	DateOfBirth   *string  `json:"date_of_birth"`
	Address       *string  `json:"address"`
	Designation   *string  `json:"designation"`
	Department    *string  `json:"department"`
	DateOfJoining string   `json:"date_of_joining"`
	BaseSalary    *float64 `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	} else if !validator.IsValidName(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name may only contain letters, spaces, apostrophes, and hyphens",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	} else if !validator.IsValidName(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name may only contain letters, spaces, apostrophes, and hyphens",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining is required",
		})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.BaseSalary != nil && *r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	Designation *string `json:"designation"`
	Department  *string `json:"department"`
	// IsActive toggles the linked login account. A deactivated account
	// can no longer authenticate.
	IsActive *bool `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FirstName != nil && !validator.IsValidName(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name may only contain letters, spaces, apostrophes, and hyphens",
		})
	}
	if r.LastName != nil && !validator.IsValidName(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name may only contain letters, spaces, apostrophes, and hyphens",
		})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         *string `json:"email,omitempty"`
	LoginID       *string `json:"login_id,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	Address       *string `json:"address,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	Department    *string `json:"department,omitempty"`
	DateOfJoining string  `json:"date_of_joining"`
	ProfileImage  *string `json:"profile_image,omitempty"`
}

// IssuedCredentials carries the one-time plaintext credential returned
// from employee creation. It is never persisted.
type IssuedCredentials struct {
	LoginID          string `json:"login_id"`
	InitialPassword  string `json:"initial_password"`
	MustResetOnLogin bool   `json:"must_reset_on_login"`
}

type CreateEmployeeResponse struct {
	Employee    EmployeeResponse  `json:"employee"`
	Credentials IssuedCredentials `json:"credentials"`
}

type ListEmployeesResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

// FormatDate renders a date column the way the API exposes it.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
