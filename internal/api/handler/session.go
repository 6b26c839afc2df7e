package handler

import (
	"net/http"

	"github.com/okarpov/boardbanker/internal/api/apierr"
	"github.com/okarpov/boardbanker/internal/api/response"
	"github.com/okarpov/boardbanker/internal/services/session"
)

// SessionHandler handles session-level endpoints
type SessionHandler struct {
	sessions *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Controller) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Current(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponseFrom(sess))
}

// Reset handles DELETE /api/v1/session
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Reset(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponseFrom(sess))
}
