package handler

import (
	"encoding/json"
	"net/http"

	"github.com/okarpov/boardbanker/internal/api/apierr"
	"github.com/okarpov/boardbanker/internal/api/request"
	"github.com/okarpov/boardbanker/internal/api/response"
	"github.com/okarpov/boardbanker/internal/services/session"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	sessions *session.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(sessions *session.Controller) *PlayerHandler {
	return &PlayerHandler{sessions: sessions}
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	sess, err := h.sessions.AddPlayer(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionResponseFrom(sess))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Current(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	players := make([]response.PlayerResponse, 0, len(sess.Players))
	for _, p := range sess.Players {
		players = append(players, response.PlayerResponseFrom(p))
	}

	response.JSON(w, http.StatusOK, players)
}
