package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishav75way-bit/tracker/internal/middleware"
	"github.com/rishav75way-bit/tracker/internal/model"
	"github.com/rishav75way-bit/tracker/internal/service"
	"github.com/rishav75way-bit/tracker/internal/validation"
)

// ExpenseHandler handles HTTP requests for expense CRUD operations.
type ExpenseHandler struct {
	service *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: svc}
}

// HandleCreate handles POST /api/expenses requests.
func (h *ExpenseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req model.CreateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, errs := validation.CreateExpense(req)
	if !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusCreated, resp, "Expense created successfully")
}

// HandleList handles GET /api/expenses requests.
func (h *ExpenseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "")
}

// HandleGet handles GET /api/expenses/{id} requests.
func (h *ExpenseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	resp, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		}
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "")
}

// HandleUpdate handles PUT /api/expenses/{id} requests.
func (h *ExpenseHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req model.UpdateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, errs := validation.UpdateExpense(req)
	if !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), req, date)
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		}
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "Expense updated successfully")
}

// HandleDelete handles DELETE /api/expenses/{id} requests.
func (h *ExpenseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		}
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, nil, "Expense deleted successfully")
}

// expenseFilterFromQuery validates and composes the shared list/stats filter
// from query parameters.
func expenseFilterFromQuery(r *http.Request) (model.ExpenseFilter, validation.FieldErrors) {
	q := r.URL.Query()
	return validation.ExpenseQuery(q.Get("category"), q.Get("startDate"), q.Get("endDate"))
}
