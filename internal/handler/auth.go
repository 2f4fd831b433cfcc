package handler

import (
	"errors"
	"net/http"

	"github.com/rishav75way-bit/tracker/internal/middleware"
	"github.com/rishav75way-bit/tracker/internal/model"
	"github.com/rishav75way-bit/tracker/internal/service"
	"github.com/rishav75way-bit/tracker/internal/validation"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := validation.Register(req); !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusCreated, resp, "User registered successfully")
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := validation.Login(req); !errs.Empty() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "Login successful")
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "")
}
