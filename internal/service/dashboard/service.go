package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
)

// weeklyWindowDays is the span of the attendance chart, today included.
const weeklyWindowDays = 7

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	loc   *time.Location
	nowFn func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 loc,
		nowFn:               time.Now,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := s.nowFn().In(s.loc)
	today := dateOf(now)

	total, err := s.DashboardRepository.CountEmployees(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	counts, err := s.DashboardRepository.CountAttendanceByDate(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	pendingLeaves, err := s.DashboardRepository.CountPendingLeaves(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	salaryProcessed, err := s.DashboardRepository.SumMonthlyCTC(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	from := today.AddDate(0, 0, -(weeklyWindowDays - 1))
	presence, err := s.DashboardRepository.DailyPresence(ctx, from, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get weekly presence: %w", err)
	}

	weekly := make([]dashboard.DailyStat, 0, weeklyWindowDays)
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		present := presence[key]
		absent := total - present
		if absent < 0 {
			absent = 0
		}
		weekly = append(weekly, dashboard.DailyStat{
			Date:    key,
			Present: present,
			Absent:  absent,
		})
	}

	absentToday := total - counts.Present - counts.Late
	if absentToday < 0 {
		absentToday = 0
	}

	return dashboard.StatsResponse{
		TotalEmployees:  total,
		PresentToday:    counts.Present,
		LateToday:       counts.Late,
		AbsentToday:     absentToday,
		PendingLeaves:   pendingLeaves,
		SalaryProcessed: salaryProcessed,
		WeeklyStats:     weekly,
	}, nil
}

// MyStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) MyStats(ctx context.Context, employeeID string) (dashboard.MyStatsResponse, error) {
	now := s.nowFn().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	summary, err := s.DashboardRepository.EmployeeMonthlySummary(ctx, employeeID, monthStart)
	if err != nil {
		return dashboard.MyStatsResponse{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	pending, err := s.DashboardRepository.CountEmployeePendingLeaves(ctx, employeeID)
	if err != nil {
		return dashboard.MyStatsResponse{}, err
	}

	return dashboard.MyStatsResponse{
		DaysPresent:   summary.DaysPresent,
		DaysLate:      summary.DaysLate,
		LeavesPending: pending,
		WorkHours:     summary.WorkHours,
	}, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
