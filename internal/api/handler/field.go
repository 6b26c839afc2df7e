package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/okarpov/boardbanker/internal/api/apierr"
	"github.com/okarpov/boardbanker/internal/api/response"
	"github.com/okarpov/boardbanker/internal/services/board"
)

// FieldHandler handles board mini-game endpoints
type FieldHandler struct {
	board *board.Service
}

// NewFieldHandler creates a new field handler
func NewFieldHandler(board *board.Service) *FieldHandler {
	return &FieldHandler{board: board}
}

// List handles GET /api/v1/fields
func (h *FieldHandler) List(w http.ResponseWriter, r *http.Request) {
	fields := h.board.Fields()

	resp := make([]response.FieldResponse, 0, len(fields))
	for _, f := range fields {
		resp = append(resp, response.FieldResponseFrom(f))
	}

	response.JSON(w, http.StatusOK, resp)
}

// Trigger handles POST /api/v1/fields/{id}/trigger
func (h *FieldHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("field id must be an integer"))
		return
	}

	outcome, err := h.board.Trigger(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OutcomeResponseFrom(outcome))
}
