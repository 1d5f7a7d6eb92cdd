package dashboard

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	TotalEmployees  int64       `json:"total_employees"`
	PresentToday    int64       `json:"present_today"`
	LateToday       int64       `json:"late_today"`
	AbsentToday     int64       `json:"absent_today"` // total - present - late
	PendingLeaves   int64       `json:"pending_leaves"`
	SalaryProcessed float64     `json:"salary_processed"` // sum of monthly CTC
	WeeklyStats     []DailyStat `json:"weekly_stats"`     // last 7 days
}

// DailyStat is one day of the weekly attendance chart.
type DailyStat struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}

// MyStatsResponse is the employee self-dashboard summary for the current
// month.
type MyStatsResponse struct {
	DaysPresent   int64    `json:"days_present"`
	DaysLate      int64    `json:"days_late"`
	LeavesPending int64    `json:"leaves_pending"`
	WorkHours     *float64 `json:"work_hours_this_month,omitempty"`
}
