package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn               func(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error)
	getByIDFn              func(ctx context.Context, id string) (attendance.Attendance, error)
	getByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error)
	closeFn                func(ctx context.Context, id string, checkOut time.Time, workHours float64) (attendance.Attendance, error)
	updateStatusFn         func(ctx context.Context, id string, status string) (attendance.Attendance, error)
	listByEmployeeFn       func(ctx context.Context, employeeID string) ([]attendance.Attendance, error)
	listAllFn              func(ctx context.Context) ([]attendance.Attendance, error)
}

func (f *fakeRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return f.createFn(ctx, att)
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return f.getByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) Close(ctx context.Context, id string, checkOut time.Time, workHours float64) (attendance.Attendance, error) {
	return f.closeFn(ctx, id, checkOut, workHours)
}
func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status string) (attendance.Attendance, error) {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return f.listByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.listAllFn(ctx)
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		cutoffHour:           9,
		cutoffMinute:         30,
		loc:                  time.UTC,
		nowFn:                func() time.Time { return now },
	}
}

func TestNewAttendanceService_RejectsBadPolicy(t *testing.T) {
	_, err := NewAttendanceService(&fakeRepo{}, config.AttendanceConfig{LateCutoff: "9h30", Timezone: "UTC"})
	assert.Error(t, err)

	_, err = NewAttendanceService(&fakeRepo{}, config.AttendanceConfig{LateCutoff: "09:30", Timezone: "Not/AZone"})
	assert.Error(t, err)

	_, err = NewAttendanceService(&fakeRepo{}, config.AttendanceConfig{LateCutoff: "09:30", Timezone: "Asia/Kolkata"})
	assert.NoError(t, err)
}

func TestCheckIn_BeforeCutoffIsPresent(t *testing.T) {
	employeeID := uuid.New().String()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	repo := &fakeRepo{}
	repo.getByEmployeeAndDateFn = func(ctx context.Context, empID string, date time.Time) (*attendance.Attendance, error) {
		return nil, nil
	}
	repo.createFn = func(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
		att.ID = uuid.New().String()
		return att, nil
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckIn(context.Background(), employeeID)
	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
}

func TestCheckIn_AfterCutoffIsLate(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 31, 0, 0, time.UTC)

	repo := &fakeRepo{}
	repo.getByEmployeeAndDateFn = func(ctx context.Context, empID string, date time.Time) (*attendance.Attendance, error) {
		return nil, nil
	}
	repo.createFn = func(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
		att.ID = uuid.New().String()
		return att, nil
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckIn(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestCheckIn_ExactlyAtCutoffIsPresent(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	repo := &fakeRepo{}
	repo.getByEmployeeAndDateFn = func(ctx context.Context, empID string, date time.Time) (*attendance.Attendance, error) {
		return nil, nil
	}
	repo.createFn = func(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
		return att, nil
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckIn(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestCheckIn_TwiceSameDayFails(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	existing := attendance.Attendance{ID: uuid.New().String(), CheckIn: now}

	repo := &fakeRepo{}
	repo.getByEmployeeAndDateFn = func(ctx context.Context, empID string, date time.Time) (*attendance.Attendance, error) {
		return &existing, nil
	}

	svc := newTestService(repo, now)
	_, err := svc.CheckIn(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_ConcurrentDuplicateMapsUniqueViolation(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	repo := &fakeRepo{}
	repo.getByEmployeeAndDateFn = func(ctx context.Context, empID string, date time.Time) (*attendance.Attendance, error) {
		return nil, nil
	}
	repo.createFn = func(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
		return attendance.Attendance{}, &pgconn.PgError{Code: "23505", ConstraintName: "attendance_employee_id_date_key"}
	}

	svc := newTestService(repo, now)
	_, err := svc.CheckIn(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOut_ComputesRoundedWorkHours(t *testing.T) {
	employeeID := uuid.New().String()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)

	record := attendance.Attendance{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CheckIn:    checkIn,
		Status:     attendance.StatusPresent,
	}

	repo := &fakeRepo{}
	repo.getByIDFn = func(ctx context.Context, id string) (attendance.Attendance, error) {
		return record, nil
	}
	var gotHours float64
	repo.closeFn = func(ctx context.Context, id string, checkOut time.Time, workHours float64) (attendance.Attendance, error) {
		gotHours = workHours
		record.CheckOut = &checkOut
		record.WorkHours = &workHours
		return record, nil
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckOut(context.Background(), employeeID, attendance.CheckOutRequest{AttendanceID: record.ID})
	assert.NoError(t, err)
	assert.Equal(t, 8.5, gotHours)
	assert.NotNil(t, resp.CheckOut)
}

func TestCheckOut_BeforeCheckInRejected(t *testing.T) {
	employeeID := uuid.New().String()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	now := checkIn.Add(-time.Minute)

	repo := &fakeRepo{}
	repo.getByIDFn = func(ctx context.Context, id string) (attendance.Attendance, error) {
		return attendance.Attendance{ID: id, EmployeeID: employeeID, CheckIn: checkIn}, nil
	}

	svc := newTestService(repo, now)
	_, err := svc.CheckOut(context.Background(), employeeID, attendance.CheckOutRequest{AttendanceID: uuid.New().String()})
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestCheckOut_TwiceFails(t *testing.T) {
	employeeID := uuid.New().String()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)

	repo := &fakeRepo{}
	repo.getByIDFn = func(ctx context.Context, id string) (attendance.Attendance, error) {
		return attendance.Attendance{ID: id, EmployeeID: employeeID, CheckIn: checkIn, CheckOut: &checkOut}, nil
	}

	svc := newTestService(repo, checkOut.Add(time.Hour))
	_, err := svc.CheckOut(context.Background(), employeeID, attendance.CheckOutRequest{AttendanceID: uuid.New().String()})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_OtherEmployeesRecordRejected(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	repo := &fakeRepo{}
	repo.getByIDFn = func(ctx context.Context, id string) (attendance.Attendance, error) {
		return attendance.Attendance{ID: id, EmployeeID: uuid.New().String(), CheckIn: checkIn}, nil
	}

	svc := newTestService(repo, checkIn.Add(8*time.Hour))
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), attendance.CheckOutRequest{AttendanceID: uuid.New().String()})
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestCheckOut_NotFound(t *testing.T) {
	repo := &fakeRepo{}
	repo.getByIDFn = func(ctx context.Context, id string) (attendance.Attendance, error) {
		return attendance.Attendance{}, pgx.ErrNoRows
	}

	svc := newTestService(repo, time.Now())
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), attendance.CheckOutRequest{AttendanceID: uuid.New().String()})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestGetToday_NoRecordReturnsNil(t *testing.T) {
	repo := &fakeRepo{}
	repo.getByEmployeeAndDateFn = func(ctx context.Context, empID string, date time.Time) (*attendance.Attendance, error) {
		return nil, nil
	}

	svc := newTestService(repo, time.Now())
	resp, err := svc.GetToday(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestOverrideStatus_HalfDay(t *testing.T) {
	id := uuid.New().String()

	repo := &fakeRepo{}
	repo.updateStatusFn = func(ctx context.Context, recordID string, status string) (attendance.Attendance, error) {
		return attendance.Attendance{ID: recordID, Status: status, CheckIn: time.Now()}, nil
	}

	svc := newTestService(repo, time.Now())
	resp, err := svc.OverrideStatus(context.Background(), attendance.UpdateStatusRequest{ID: id, Status: attendance.StatusHalfDay})
	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
}

func TestOverrideStatus_InvalidStatusRejected(t *testing.T) {
	svc := newTestService(&fakeRepo{}, time.Now())
	_, err := svc.OverrideStatus(context.Background(), attendance.UpdateStatusRequest{ID: uuid.New().String(), Status: "ON_TIME"})
	assert.Error(t, err)
}

func TestWorkHoursRounding(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"full day", 8*time.Hour + 30*time.Minute, 8.5},
		{"uneven minutes", 7*time.Hour + 47*time.Minute, 7.78},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, roundHours(tc.d))
		})
	}
}
