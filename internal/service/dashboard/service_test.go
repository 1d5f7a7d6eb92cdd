package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	employees     int64
	counts        dashboard.AttendanceCounts
	pending       int64
	monthlyCTC    float64
	presence      map[string]int64
	summary       dashboard.MonthlySummary
	pendingByEmp  int64
	presenceFrom  time.Time
	presenceTo    time.Time
	summaryMonth  time.Time
	attendanceDay time.Time
}

func (f *fakeRepo) CountEmployees(ctx context.Context) (int64, error) { return f.employees, nil }
func (f *fakeRepo) CountAttendanceByDate(ctx context.Context, date time.Time) (dashboard.AttendanceCounts, error) {
	f.attendanceDay = date
	return f.counts, nil
}
func (f *fakeRepo) CountPendingLeaves(ctx context.Context) (int64, error) { return f.pending, nil }
func (f *fakeRepo) SumMonthlyCTC(ctx context.Context) (float64, error)    { return f.monthlyCTC, nil }
func (f *fakeRepo) DailyPresence(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	f.presenceFrom, f.presenceTo = from, to
	return f.presence, nil
}
func (f *fakeRepo) EmployeeMonthlySummary(ctx context.Context, employeeID string, monthStart time.Time) (dashboard.MonthlySummary, error) {
	f.summaryMonth = monthStart
	return f.summary, nil
}
func (f *fakeRepo) CountEmployeePendingLeaves(ctx context.Context, employeeID string) (int64, error) {
	return f.pendingByEmp, nil
}

func newTestService(repo *fakeRepo, now time.Time) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 time.UTC,
		nowFn:               func() time.Time { return now },
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 3, 6, 11, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		employees:  10,
		counts:     dashboard.AttendanceCounts{Present: 6, Late: 2},
		pending:    3,
		monthlyCTC: 420000,
		presence: map[string]int64{
			"2026-03-05": 9,
			"2026-03-06": 8,
		},
	}
	svc := newTestService(repo, now)

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.TotalEmployees)
	assert.Equal(t, int64(6), resp.PresentToday)
	assert.Equal(t, int64(2), resp.LateToday)
	assert.Equal(t, int64(2), resp.AbsentToday)
	assert.Equal(t, int64(3), resp.PendingLeaves)
	assert.Equal(t, 420000.0, resp.SalaryProcessed)

	require.Len(t, resp.WeeklyStats, 7)
	assert.Equal(t, "2026-02-28", resp.WeeklyStats[0].Date)
	assert.Equal(t, "2026-03-06", resp.WeeklyStats[6].Date)
	assert.Equal(t, int64(8), resp.WeeklyStats[6].Present)
	assert.Equal(t, int64(2), resp.WeeklyStats[6].Absent)
	// Days with no record at all count everyone absent.
	assert.Equal(t, int64(0), resp.WeeklyStats[0].Present)
	assert.Equal(t, int64(10), resp.WeeklyStats[0].Absent)
}

func TestMyStats(t *testing.T) {
	now := time.Date(2026, 3, 6, 11, 0, 0, 0, time.UTC)
	hours := 42.5
	repo := &fakeRepo{
		summary:      dashboard.MonthlySummary{DaysPresent: 4, DaysLate: 1, WorkHours: &hours},
		pendingByEmp: 1,
	}
	svc := newTestService(repo, now)

	resp, err := svc.MyStats(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.DaysPresent)
	assert.Equal(t, int64(1), resp.DaysLate)
	assert.Equal(t, int64(1), resp.LeavesPending)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, 42.5, *resp.WorkHours)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.summaryMonth)
}
