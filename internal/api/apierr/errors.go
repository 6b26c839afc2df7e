package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidName     = "INVALID_NAME"
	CodeNameTaken       = "NAME_TAKEN"
	CodeInvalidAmount   = "INVALID_AMOUNT"
	CodeInvalidType     = "INVALID_TYPE"
	CodeMissingTarget   = "MISSING_TARGET"
	CodeSelfTransfer    = "SELF_TRANSFER"
	CodeLowBalance      = "LOW_BALANCE"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeFieldNotFound   = "FIELD_NOT_FOUND"
	CodeNoActivePlayers = "NO_ACTIVE_PLAYERS"
	CodeInvalidPasscode = "INVALID_PASSCODE"
	CodeAuthDisabled    = "AUTH_DISABLED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Player name must be 2-20 characters"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "A player with this name already exists"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount must be a positive integer"}}
	case errors.Is(err, model.ErrInvalidType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidType, "Transaction type must be income, expense or transfer"}}
	case errors.Is(err, model.ErrMissingTarget):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingTarget, "Transfer requires a target player"}}
	case errors.Is(err, model.ErrSelfTransfer):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfTransfer, "Sender and recipient must be different players"}}
	case errors.Is(err, model.ErrTransferLimit):
		return &httpError{http.StatusBadRequest, APIError{CodeLowBalance, "The sender must keep at least 1 after the transfer"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrFieldNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeFieldNotFound, "Board field not found"}}
	case errors.Is(err, model.ErrNoActivePlayers):
		return &httpError{http.StatusConflict, APIError{CodeNoActivePlayers, "No active players to interact with the board"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidPasscode):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidPasscode, "Invalid banker passcode"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, auth.ErrDisabled):
		return &httpError{http.StatusConflict, APIError{CodeAuthDisabled, "Banker auth is not enabled on this server"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
