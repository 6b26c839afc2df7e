package request

// AddPlayerRequest is the body for POST /players
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// ApplyTransactionRequest is the body for POST /transactions
type ApplyTransactionRequest struct {
	Type           string `json:"type"`
	Amount         int64  `json:"amount"`
	PlayerID       string `json:"playerId"`
	TargetPlayerID string `json:"targetPlayerId,omitempty"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Passcode string `json:"passcode"`
}
