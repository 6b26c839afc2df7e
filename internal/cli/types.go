package cli

import "time"

// API response shapes used by the CLI

// Player mirrors the API player view
type Player struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Balance          int64  `json:"balance"`
	FormattedBalance string `json:"formattedBalance"`
	IsActive         bool   `json:"isActive"`
}

// Transaction mirrors the API ledger entry view
type Transaction struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	FromPlayerID string    `json:"fromPlayerId,omitempty"`
	ToPlayerID   string    `json:"toPlayerId,omitempty"`
	Description  string    `json:"description"`
}

// Session mirrors the API session view
type Session struct {
	Players      []Player      `json:"players"`
	Transactions []Transaction `json:"transactions"`
	GameID       string        `json:"gameId"`
}

// Field mirrors the API board field view
type Field struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Effect          string `json:"effect"`
	Amount          int64  `json:"amount"`
	FormattedAmount string `json:"formattedAmount"`
}

// Outcome mirrors the API field trigger result
type Outcome struct {
	Field    Field   `json:"field"`
	PlayerID string  `json:"playerId"`
	Player   string  `json:"player"`
	Amount   int64   `json:"amount"`
	Session  Session `json:"session"`
}

// Auth mirrors the API login response
type Auth struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
