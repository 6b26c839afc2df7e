package handler

import (
	"encoding/json"
	"net/http"

	"github.com/okarpov/boardbanker/internal/api/apierr"
	"github.com/okarpov/boardbanker/internal/api/request"
	"github.com/okarpov/boardbanker/internal/api/response"
	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/services/session"
)

// TransactionHandler handles ledger operation endpoints
type TransactionHandler struct {
	sessions *session.Controller
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(sessions *session.Controller) *TransactionHandler {
	return &TransactionHandler{sessions: sessions}
}

// Apply handles POST /api/v1/transactions
func (h *TransactionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req request.ApplyTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	kind := model.TransactionType(req.Type)
	if !kind.Valid() || kind == model.TransactionPlayerAdded {
		apierr.WriteError(w, model.ErrInvalidType)
		return
	}

	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("playerId is required"))
		return
	}

	sess, err := h.sessions.ApplyTransaction(r.Context(), kind, req.Amount,
		model.PlayerID(req.PlayerID), model.PlayerID(req.TargetPlayerID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponseFrom(sess))
}
