package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	MyStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// MyStats implements DashboardHandler.
func (h *DashboardHandlerImpl) MyStats(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.dashboardService.MyStats(r.Context(), employeeID)
	if err != nil {
		slog.Error("Dashboard my-stats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
