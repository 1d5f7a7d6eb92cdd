package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountAttendanceByDate implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendanceByDate(ctx context.Context, date time.Time) (dashboard.AttendanceCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status IN ('PRESENT', 'HALF_DAY') THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN status = 'LATE' THEN 1 ELSE 0 END), 0) as late_count
		FROM attendance
		WHERE date = $1
	`

	var counts dashboard.AttendanceCounts
	err := q.QueryRow(ctx, query, date).Scan(&counts.Present, &counts.Late)
	if err != nil {
		return dashboard.AttendanceCounts{}, fmt.Errorf("failed to count attendance: %w", err)
	}
	return counts, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// SumMonthlyCTC implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) SumMonthlyCTC(ctx context.Context) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var total float64
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(monthly_ctc), 0) FROM salaries`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum monthly ctc: %w", err)
	}
	return total, nil
}

// DailyPresence implements dashboard.DashboardRepository. Keys are
// formatted as YYYY-MM-DD.
func (r *dashboardRepositoryImpl) DailyPresence(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, COUNT(*)
		FROM attendance
		WHERE date >= $1 AND date <= $2 AND status IN ('PRESENT', 'LATE', 'HALF_DAY')
		GROUP BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily presence: %w", err)
	}
	defer rows.Close()

	presence := map[string]int64{}
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		presence[day.Format("2006-01-02")] = count
	}
	return presence, rows.Err()
}

// EmployeeMonthlySummary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) EmployeeMonthlySummary(ctx context.Context, employeeID string, monthStart time.Time) (dashboard.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status IN ('PRESENT', 'HALF_DAY') THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN status = 'LATE' THEN 1 ELSE 0 END), 0) as late_count,
			SUM(work_hours) as work_hours
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date < $3
	`

	var summary dashboard.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, monthStart, monthEnd).Scan(
		&summary.DaysPresent, &summary.DaysLate, &summary.WorkHours,
	)
	if err != nil {
		return dashboard.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return summary, nil
}

// CountEmployeePendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployeePendingLeaves(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1 AND status = 'PENDING'`,
		employeeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}
