package dashboard

import (
	"context"
	"time"
)

// AttendanceCounts holds per-status totals for one date.
type AttendanceCounts struct {
	Present int64
	Late    int64
}

// MonthlySummary aggregates an employee's attendance over one month.
type MonthlySummary struct {
	DaysPresent int64
	DaysLate    int64
	WorkHours   *float64
}

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendanceByDate(ctx context.Context, date time.Time) (AttendanceCounts, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	SumMonthlyCTC(ctx context.Context) (float64, error)

	// DailyPresence returns present(+late) counts per day over [from, to].
	DailyPresence(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// EmployeeMonthlySummary aggregates one employee's month.
	EmployeeMonthlySummary(ctx context.Context, employeeID string, monthStart time.Time) (MonthlySummary, error)
	CountEmployeePendingLeaves(ctx context.Context, employeeID string) (int64, error)
}
