package dashboard

import (
	"context"
)

type DashboardService interface {
	// Stats returns the organization-wide summary (admin).
	Stats(ctx context.Context) (StatsResponse, error)

	// MyStats returns the acting employee's current-month summary.
	MyStats(ctx context.Context, employeeID string) (MyStatsResponse, error)
}
