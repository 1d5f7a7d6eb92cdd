package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	UpsertComponent(w http.ResponseWriter, r *http.Request)
	DeleteComponent(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Get implements SalaryHandler.
func (h *SalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.salaryService.GetByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// Upsert implements SalaryHandler.
func (h *SalaryHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req salary.UpsertSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	record, err := h.salaryService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Upsert salary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// UpsertComponent implements SalaryHandler.
func (h *SalaryHandlerImpl) UpsertComponent(w http.ResponseWriter, r *http.Request) {
	var req salary.UpsertComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.ComponentName = chi.URLParam(r, "name")

	record, err := h.salaryService.UpsertComponent(r.Context(), req)
	if err != nil {
		slog.Error("UpsertComponent service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// DeleteComponent implements SalaryHandler.
func (h *SalaryHandlerImpl) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	record, err := h.salaryService.DeleteComponent(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "name"))
	if err != nil {
		slog.Error("DeleteComponent service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// Payroll implements SalaryHandler.
func (h *SalaryHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	payroll, err := h.salaryService.Payroll(r.Context())
	if err != nil {
		slog.Error("Payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll)
}
