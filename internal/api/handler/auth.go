package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okarpov/boardbanker/internal/api/apierr"
	"github.com/okarpov/boardbanker/internal/api/request"
	"github.com/okarpov/boardbanker/internal/api/response"
	"github.com/okarpov/boardbanker/internal/services/auth"
)

// AuthHandler handles banker authentication endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Passcode == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("passcode is required"))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Passcode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFrom(token))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if err := h.authService.Logout(r.Context(), strings.TrimPrefix(authHeader, "Bearer ")); err != nil {
			apierr.WriteError(w, err)
			return
		}
	}
	response.NoContent(w)
}
