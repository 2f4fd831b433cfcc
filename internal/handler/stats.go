package handler

import (
	"net/http"

	"github.com/rishav75way-bit/tracker/internal/middleware"
	"github.com/rishav75way-bit/tracker/internal/service"
)

// StatsHandler handles HTTP requests for expense statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleSummary handles GET /api/expenses/summary requests.
func (h *StatsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	filter, errs := expenseFilterFromQuery(r)
	if !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.service.Summary(r.Context(), userID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "")
}

// HandleCategoryStats handles GET /api/expenses/stats/categories requests.
func (h *StatsHandler) HandleCategoryStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	filter, errs := expenseFilterFromQuery(r)
	if !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.service.ByCategory(r.Context(), userID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "")
}

// HandleMonthlyStats handles GET /api/expenses/stats/monthly requests.
func (h *StatsHandler) HandleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	resp, err := h.service.ByMonth(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "")
}
