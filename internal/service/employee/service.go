package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/password"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// maxLoginIDAttempts bounds the retry on login-ID serial collisions.
// Each attempt recomputes the serial; the unique index on users.login_id
// is the arbiter.
const maxLoginIDAttempts = 3

// defaultWorkingDays seeds a new salary record created alongside the
// employee.
const defaultWorkingDays = 22

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	salary.SalaryRepository
	issuer credential.Issuer
	logger *slog.Logger
	withTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	salaryRepository salary.SalaryRepository,
	issuer credential.Issuer,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		SalaryRepository:   salaryRepository,
		issuer:             issuer,
		logger:             logger,
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Create implements employee.EmployeeService. It provisions the login
// identity, the profile, and optionally the initial salary record in one
// transaction, and returns the one-time plaintext credential.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("invalid date_of_joining: %w", err)
	}
	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.CreateEmployeeResponse{}, fmt.Errorf("invalid date_of_birth: %w", err)
		}
		dateOfBirth = &parsed
	}

	initialPassword, err := s.issuer.GenerateInitialPassword()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate initial password: %w", err)
	}
	passwordHash, err := password.Hash(initialPassword)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash initial password: %w", err)
	}

	var created employee.Employee
	var loginID string

	for attempt := 1; attempt <= maxLoginIDAttempts; attempt++ {
		loginID, err = s.issuer.GenerateLoginID(ctx, req.FirstName, req.LastName, dateOfJoining)
		if err != nil {
			return employee.CreateEmployeeResponse{}, err
		}

		err = s.withTx(ctx, func(txCtx context.Context) error {
			newUser, err := s.UserRepository.Create(txCtx, user.User{
				LoginID:      loginID,
				Email:        req.Email,
				PasswordHash: passwordHash,
				Role:         user.RoleEmployee,
				IsActive:     true,
			})
			if err != nil {
				return err
			}

			created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
				UserID:        newUser.ID,
				FirstName:     req.FirstName,
				LastName:      req.LastName,
				Phone:         req.Phone,
				DateOfBirth:   dateOfBirth,
				Address:       req.Address,
				Designation:   req.Designation,
				Department:    req.Department,
				DateOfJoining: dateOfJoining,
			})
			if err != nil {
				return err
			}

			if req.BaseSalary != nil {
				_, err = s.SalaryRepository.Upsert(txCtx, salary.Salary{
					EmployeeID:  created.ID,
					WageType:    salary.WageTypeFixed,
					BaseWage:    *req.BaseSalary,
					WorkingDays: defaultWorkingDays,
					MonthlyCTC:  *req.BaseSalary,
					YearlyCTC:   *req.BaseSalary * 12,
				})
				if err != nil {
					return fmt.Errorf("failed to create salary: %w", err)
				}
			}
			return nil
		})
		if err == nil {
			break
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_login_id_key":
				// Serial raced with a concurrent create; recompute.
				continue
			case "users_email_key":
				return employee.CreateEmployeeResponse{}, user.ErrEmailExists
			}
		}
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	if err != nil {
		return employee.CreateEmployeeResponse{}, credential.ErrLoginIDGenerationFailed
	}

	email := req.Email
	isActive := true
	created.Email = &email
	created.LoginID = &loginID
	created.IsActive = &isActive

	return employee.CreateEmployeeResponse{
		Employee: toResponse(created),
		Credentials: employee.IssuedCredentials{
			LoginID:          loginID,
			InitialPassword:  initialPassword,
			MustResetOnLogin: true,
		},
	}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return toResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrProfileNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return employee.ListEmployeesResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid date_of_birth: %w", err)
		}
		current.DateOfBirth = &parsed
	}
	if req.Address != nil {
		current.Address = req.Address
	}
	if req.Designation != nil {
		current.Designation = req.Designation
	}
	if req.Department != nil {
		current.Department = req.Department
	}

	updated, err := s.EmployeeRepository.Update(ctx, current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	if req.IsActive != nil {
		if err := s.UserRepository.SetActive(ctx, current.UserID, *req.IsActive); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to update account status: %w", err)
		}
		updated.IsActive = req.IsActive
	}

	return toResponse(updated), nil
}

// Delete implements employee.EmployeeService. The login identity is
// removed after the profile; a failure there leaves an orphaned user,
// which is logged rather than rolled into the caller's error.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if err := s.UserRepository.Delete(ctx, emp.UserID); err != nil {
		s.logger.Warn("orphaned user left after employee delete",
			"user_id", emp.UserID,
			"employee_id", id,
			"error", err,
		)
	}
	return nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:            emp.ID,
		UserID:        emp.UserID,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		Email:         emp.Email,
		LoginID:       emp.LoginID,
		IsActive:      emp.IsActive,
		Phone:         emp.Phone,
		Address:       emp.Address,
		Designation:   emp.Designation,
		Department:    emp.Department,
		DateOfJoining: employee.FormatDate(emp.DateOfJoining),
		ProfileImage:  emp.ProfileImage,
	}
	if emp.DateOfBirth != nil {
		dob := employee.FormatDate(*emp.DateOfBirth)
		resp.DateOfBirth = &dob
	}
	return resp
}
