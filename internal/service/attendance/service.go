package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AttendanceServiceImpl derives PRESENT/LATE from the configured cutoff
// and closes records with rounded work hours. All day boundaries are
// evaluated in the configured timezone.
type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	cutoffHour   int
	cutoffMinute int
	loc          *time.Location
	nowFn        func() time.Time
}

func NewAttendanceService(repo attendance.AttendanceRepository, cfg config.AttendanceConfig) (attendance.AttendanceService, error) {
	cutoff, err := time.Parse("15:04", cfg.LateCutoff)
	if err != nil {
		return nil, fmt.Errorf("invalid late cutoff %q: %w", cfg.LateCutoff, err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		cutoffHour:           cutoff.Hour(),
		cutoffMinute:         cutoff.Minute(),
		loc:                  loc,
		nowFn:                time.Now,
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.nowFn().In(s.loc)
	today := dateOf(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.StatusPresent
	if s.isLate(now) {
		status = attendance.StatusLate
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    now,
		Status:     status,
	})
	if err != nil {
		// The precheck races with concurrent check-ins; the unique
		// constraint on (employee_id, date) is the source of truth.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return toResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if record.EmployeeID != employeeID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := s.nowFn().In(s.loc)
	if now.Before(record.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	workHours := roundHours(now.Sub(record.CheckIn))

	closed, err := s.AttendanceRepository.Close(ctx, record.ID, now, workHours)
	if err != nil {
		// A concurrent check-out already closed the record.
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance: %w", err)
	}

	return toResponse(closed), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	today := dateOf(s.nowFn().In(s.loc))

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := toResponse(*record)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string) (attendance.ListAttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toListResponse(records), nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListAll(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toListResponse(records), nil
}

// OverrideStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) OverrideStatus(ctx context.Context, req attendance.UpdateStatusRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance status: %w", err)
	}

	return toResponse(record), nil
}

func (s *AttendanceServiceImpl) isLate(now time.Time) bool {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), s.cutoffHour, s.cutoffMinute, 0, 0, s.loc)
	return now.After(cutoff)
}

// dateOf truncates a local timestamp to its calendar date, stored at
// UTC midnight so the date column compares cleanly.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// roundHours converts a duration to hours at two decimal places.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Department:   a.Department,
		Designation:  a.Designation,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      a.CheckIn.Format(time.RFC3339),
		Status:       a.Status,
		WorkHours:    a.WorkHours,
	}
	if a.CheckOut != nil {
		checkOut := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}

func toListResponse(records []attendance.Attendance) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  len(responses),
		Attendances: responses,
	}
}
