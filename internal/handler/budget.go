package handler

import (
	"net/http"

	"github.com/rishav75way-bit/tracker/internal/middleware"
	"github.com/rishav75way-bit/tracker/internal/model"
	"github.com/rishav75way-bit/tracker/internal/service"
	"github.com/rishav75way-bit/tracker/internal/validation"
)

// BudgetHandler handles HTTP requests for monthly budgets.
type BudgetHandler struct {
	service *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(svc *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: svc}
}

// HandleGet handles GET /api/expenses/budget requests. An unset budget
// returns 0 rather than an error.
func (h *BudgetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	limit, err := h.service.Get(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, limit, "")
}

// HandleSet handles POST /api/expenses/budget requests.
func (h *BudgetHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req model.SetBudgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := validation.SetBudget(req); !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	limit, err := h.service.Set(r.Context(), userID, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, limit, "Budget set successfully")
}
